package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

const (
	// BlackjackTotal is the hand total that wins outright
	BlackjackTotal = 21

	// aceDowngrade is the difference between an ace counted high (11) and low (1)
	aceDowngrade = 10
)

// Hand is an append-only sequence of cards owned by one participant
type Hand struct {
	cards []deck.Card
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{cards: make([]deck.Card, 0, 4)}
}

// AddCard appends a card and returns the new total
func (h *Hand) AddCard(card deck.Card) int {
	h.cards = append(h.cards, card)
	return h.TotalValue()
}

// Cards returns a copy of the cards in the order they were received
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// TotalValue returns the hand total. It is derived from the cards on every call.
func (h *Hand) TotalValue() int {
	return Score(h.cards)
}

// IsBlackjack returns true when the hand totals exactly 21
func (h *Hand) IsBlackjack() bool {
	return h.TotalValue() == BlackjackTotal
}

// IsBusted returns true when the hand totals more than 21
func (h *Hand) IsBusted() bool {
	return h.TotalValue() > BlackjackTotal
}

// String returns the hand in compact notation (e.g., "AH KS")
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, card := range h.cards {
		parts[i] = card.Short()
	}
	return strings.Join(parts, " ")
}

// CardValue returns the scoring value of a single card with aces counted as 11
func CardValue(card deck.Card) int {
	switch {
	case card.IsAce():
		return 11
	case card.Rank.IsFace():
		return 10
	default:
		return int(card.Rank)
	}
}

// Score totals a set of cards. Aces count 11; if the sum is over 21 and at least one
// ace is held, 10 is subtracted once. Only one ace is ever downgraded, so A+A+K
// scores 22.
func Score(cards []deck.Card) int {
	sum := 0
	aces := 0
	for _, card := range cards {
		sum += CardValue(card)
		if card.IsAce() {
			aces++
		}
	}

	if sum > BlackjackTotal && aces >= 1 {
		sum -= aceDowngrade
	}

	return sum
}
