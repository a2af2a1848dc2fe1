package deck

import (
	"errors"
	rand "math/rand/v2"

	"github.com/lox/blackjack/internal/randutil"
)

// Size is the number of cards in a full deck
const Size = 52

// ErrEmptyDeck is returned when a card is requested from a deck with no cards left
var ErrEmptyDeck = errors.New("deck is empty")

// Deck represents a deck of playing cards. The top of the deck is the end of the
// underlying slice; dealing pops from there.
type Deck struct {
	cards   []Card
	rng     *rand.Rand
	stacked bool
}

// NewDeck creates a standard 52-card deck in construction order: suit-major
// (Hearts, Diamonds, Spades, Clubs) and rank-minor (2 through Ace). The deck is not
// shuffled. A nil rng falls back to a time-seeded source.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = randutil.NewTimeSeeded()
	}

	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}

	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	return d
}

// NewStackedDeck creates a deck that deals the given cards in argument order and
// ignores Shuffle. It is used to replay a known deal.
func NewStackedDeck(dealOrder ...Card) *Deck {
	cards := make([]Card, len(dealOrder))
	for i, card := range dealOrder {
		cards[len(dealOrder)-1-i] = card
	}
	return &Deck{cards: cards, stacked: true}
}

// Shuffle randomizes the order of the remaining cards in place
func (d *Deck) Shuffle() {
	if d.stacked {
		return
	}
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// DealOne removes and returns the top card from the deck
func (d *Deck) DealOne() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	top := len(d.cards) - 1
	card := d.cards[top]
	d.cards = d.cards[:top]
	return card, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// IsStacked reports whether the deck was built with NewStackedDeck
func (d *Deck) IsStacked() bool {
	return d.stacked
}

// Cards returns a copy of the remaining cards, bottom first and top last
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Contains reports whether the card is still in the deck
func (d *Deck) Contains(card Card) bool {
	for _, c := range d.cards {
		if c == card {
			return true
		}
	}
	return false
}
