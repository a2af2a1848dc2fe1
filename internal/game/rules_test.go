package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/deck"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		cards     string
		expected  int
		blackjack bool
		busted    bool
	}{
		{"ten and five", "10H 5D", 15, false, false},
		{"ace king", "AH KS", 21, true, false},
		{"two aces and a king downgrade once", "AH AD KS", 22, false, true},
		{"four fives", "5H 5D 5S 5C", 20, false, false},
		{"ten ten five", "10H 10D 5S", 25, false, true},
		{"pair of aces", "AH AS", 12, false, false},
		{"soft seventeen", "AH 6C", 17, false, false},
		{"ace rescues a bust", "AH 5D 8C", 14, false, false},
		{"three aces", "AH AD AS", 23, false, true},
		{"face cards count ten", "JH QD", 20, false, false},
		{"three card twenty one", "7H 7D 7S", 21, true, false},
		{"empty hand", "", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := deck.MustParseCards(tt.cards)
			assert.Equal(t, tt.expected, Score(cards))

			h := NewHand()
			for _, c := range cards {
				h.AddCard(c)
			}
			assert.Equal(t, tt.expected, h.TotalValue())
			assert.Equal(t, tt.blackjack, h.IsBlackjack())
			assert.Equal(t, tt.busted, h.IsBusted())
		})
	}
}

func TestCardValue(t *testing.T) {
	for _, rank := range deck.Ranks {
		card := deck.NewCard(deck.Spades, rank)
		got := CardValue(card)
		switch {
		case rank == deck.Ace:
			assert.Equal(t, 11, got)
		case rank >= deck.Ten:
			assert.Equal(t, 10, got, "rank %s", rank)
		default:
			assert.Equal(t, int(rank), got, "rank %s", rank)
		}
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input string
		want  Choice
		ok    bool
	}{
		{"1", Hit, true},
		{"2", Stay, true},
		{"hit", Hit, true},
		{" HIT\n", Hit, true},
		{"h", Hit, true},
		{"stay", Stay, true},
		{"Stand", Stay, true},
		{"s", Stay, true},
		{"3", 0, false},
		{"", 0, false},
		{"12", 0, false},
		{"double", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseChoice(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutcomeMessage(t *testing.T) {
	base := RoundOutcome{PlayerName: "Player", DealerName: "Dealer"}

	tests := []struct {
		name    string
		winner  Winner
		reason  Reason
		endedIn State
		want    string
	}{
		{"player blackjack on deal", WinnerPlayer, ReasonPlayerBlackjack, StateBlackjackCheck, "Player has hit blackjack! You won!"},
		{"dealer blackjack on deal", WinnerDealer, ReasonDealerBlackjack, StateBlackjackCheck, "Dealer has hit blackjack! You lost!"},
		{"dealer blackjack on hit", WinnerDealer, ReasonDealerBlackjack, StateDealerTurn, "Dealer has hit blackjack! Sorry, you lost."},
		{"player bust", WinnerDealer, ReasonPlayerBusted, StatePlayerTurn, "You busted! Sorry, you lost."},
		{"dealer bust", WinnerPlayer, ReasonDealerBusted, StateDealerTurn, "Dealer has busted! Congrats, you won!"},
		{"tie", WinnerTie, ReasonPush, StateResolved, "It's a tie."},
		{"dealer better", WinnerDealer, ReasonHigherTotal, StateResolved, "Dealer has a better hand. Sorry, you lost."},
		{"player better", WinnerPlayer, ReasonHigherTotal, StateResolved, "You have the better hand. Yay! You won!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := base
			o.Winner = tt.winner
			o.Reason = tt.reason
			o.EndedIn = tt.endedIn
			assert.Equal(t, tt.want, o.Message())
			assert.Equal(t, tt.endedIn != StateResolved, o.IsEarlyEnd())
		})
	}
}
