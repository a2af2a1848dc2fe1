package game

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// Winner identifies who took the round
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerDealer
	WinnerTie
)

// String returns the string representation of a winner
func (w Winner) String() string {
	switch w {
	case WinnerPlayer:
		return "player"
	case WinnerDealer:
		return "dealer"
	case WinnerTie:
		return "tie"
	default:
		return "none"
	}
}

// Reason explains why the round ended
type Reason int

const (
	ReasonNone Reason = iota
	ReasonPlayerBlackjack
	ReasonDealerBlackjack
	ReasonPlayerBusted
	ReasonDealerBusted
	ReasonHigherTotal
	ReasonPush
)

// String returns the string representation of a reason
func (r Reason) String() string {
	switch r {
	case ReasonPlayerBlackjack:
		return "player_blackjack"
	case ReasonDealerBlackjack:
		return "dealer_blackjack"
	case ReasonPlayerBusted:
		return "player_busted"
	case ReasonDealerBusted:
		return "dealer_busted"
	case ReasonHigherTotal:
		return "higher_total"
	case ReasonPush:
		return "push"
	default:
		return "none"
	}
}

// RoundOutcome is the structured result of a finished round
type RoundOutcome struct {
	RoundID     string
	Winner      Winner
	Reason      Reason
	EndedIn     State // the state the round was in when the terminal condition hit
	PlayerName  string
	DealerName  string
	PlayerCards []deck.Card
	DealerCards []deck.Card
	PlayerTotal int
	DealerTotal int
}

// IsEarlyEnd reports whether the round stopped before totals were compared
func (o RoundOutcome) IsEarlyEnd() bool {
	return o.EndedIn != StateResolved
}

// Message returns the closing line shown to the player
func (o RoundOutcome) Message() string {
	switch o.Reason {
	case ReasonPlayerBlackjack:
		return fmt.Sprintf("%s has hit blackjack! You won!", o.PlayerName)
	case ReasonDealerBlackjack:
		if o.EndedIn == StateDealerTurn {
			return fmt.Sprintf("%s has hit blackjack! Sorry, you lost.", o.DealerName)
		}
		return fmt.Sprintf("%s has hit blackjack! You lost!", o.DealerName)
	case ReasonPlayerBusted:
		return "You busted! Sorry, you lost."
	case ReasonDealerBusted:
		return fmt.Sprintf("%s has busted! Congrats, you won!", o.DealerName)
	case ReasonPush:
		return "It's a tie."
	case ReasonHigherTotal:
		if o.Winner == WinnerDealer {
			return fmt.Sprintf("%s has a better hand. Sorry, you lost.", o.DealerName)
		}
		return "You have the better hand. Yay! You won!"
	default:
		return "The round ended without a result."
	}
}
