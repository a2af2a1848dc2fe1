package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
)

// ErrRoundFinished is returned when Play is called on a round that already ran
var ErrRoundFinished = errors.New("round already finished")

// State is a step of the round state machine
type State int

const (
	StateStart State = iota
	StateDealt
	StateBlackjackCheck
	StatePlayerTurn
	StateDealerTurn
	StateResolved
	StateEnded
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateDealt:
		return "dealt"
	case StateBlackjackCheck:
		return "blackjack_check"
	case StatePlayerTurn:
		return "player_turn"
	case StateDealerTurn:
		return "dealer_turn"
	case StateResolved:
		return "resolved"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Round runs a single game of blackjack between one player and the dealer.
// It owns the deck and both hands for its whole lifetime and is not safe for
// concurrent use.
type Round struct {
	id      string
	deck    *deck.Deck
	player  *Participant
	dealer  *Participant
	choices ChoiceSource
	bus     EventBus
	logger  *log.Logger
	clock   quartz.Clock

	state   State
	outcome *RoundOutcome
}

// NewRound creates a round that asks choices for the player's decisions.
//
// Example usage:
//
//	// Production - time-seeded shuffle
//	r := NewRound(console, WithSubscribers(console))
//
//	// Replay - fixed deal order
//	r := NewRound(script, WithDeck(deck.NewStackedDeck(cards...)))
func NewRound(choices ChoiceSource, opts ...RoundOption) *Round {
	if choices == nil {
		panic("choice source is required for round creation")
	}

	cfg := defaultRoundConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.finalize()

	return &Round{
		id:      cfg.roundID,
		deck:    cfg.deck,
		player:  NewPlayer(cfg.playerName),
		dealer:  NewDealer(cfg.dealerName),
		choices: choices,
		bus:     cfg.bus,
		logger:  cfg.logger.WithPrefix("round").With("round", cfg.roundID),
		clock:   cfg.clock,
		state:   StateStart,
	}
}

// ID returns the round identifier
func (r *Round) ID() string { return r.id }

// State returns the current state of the round
func (r *Round) State() State { return r.state }

// Player returns the player participant
func (r *Round) Player() *Participant { return r.player }

// Dealer returns the dealer participant
func (r *Round) Dealer() *Participant { return r.dealer }

// Deck returns the round's deck
func (r *Round) Deck() *deck.Deck { return r.deck }

// Outcome returns the result once the round has finished
func (r *Round) Outcome() (RoundOutcome, bool) {
	if r.outcome == nil {
		return RoundOutcome{}, false
	}
	return *r.outcome, true
}

// Play runs the round to a terminal state and returns its outcome. Blackjack, bust
// and tie are outcomes, not errors; an error means the round could not finish
// (empty deck, input failure or ctx cancelled while waiting for the player).
func (r *Round) Play(ctx context.Context) (RoundOutcome, error) {
	if r.state != StateStart {
		return RoundOutcome{}, ErrRoundFinished
	}

	outcome, err := r.play(ctx)
	if err != nil {
		r.logger.Error("Round aborted", "state", r.state, "error", err)
		r.state = StateEnded
		return RoundOutcome{}, err
	}
	return outcome, nil
}

func (r *Round) play(ctx context.Context) (RoundOutcome, error) {
	r.logger.Info("Starting round", "player", r.player.Name, "dealer", r.dealer.Name, "cards", r.deck.CardsRemaining())

	// Start → Dealt
	r.deck.Shuffle()
	if err := r.dealOpening(); err != nil {
		return RoundOutcome{}, err
	}
	r.transition(StateDealt)
	r.publish(NewHandDisplayedEvent(r.id, r.player, r.clock.Now()))
	r.publish(NewHandDisplayedEvent(r.id, r.dealer, r.clock.Now()))

	// Dealt → BlackjackCheck
	r.transition(StateBlackjackCheck)
	if r.player.Hand.IsBlackjack() {
		return r.end(WinnerPlayer, ReasonPlayerBlackjack), nil
	}
	if r.dealer.Hand.IsBlackjack() {
		return r.end(WinnerDealer, ReasonDealerBlackjack), nil
	}

	// BlackjackCheck → PlayerTurn
	r.transition(StatePlayerTurn)
	if outcome, done, err := r.playerTurn(ctx); err != nil || done {
		return outcome, err
	}

	// PlayerTurn → DealerTurn
	r.transition(StateDealerTurn)
	if outcome, done, err := r.dealerTurn(); err != nil || done {
		return outcome, err
	}

	// DealerTurn → Resolved
	r.transition(StateResolved)
	return r.resolve(), nil
}

// dealOpening gives two cards to the player, then two to the dealer
func (r *Round) dealOpening() error {
	for _, p := range []*Participant{r.player, r.dealer} {
		for i := 0; i < 2; i++ {
			if err := r.deal(p, true); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Round) playerTurn(ctx context.Context) (RoundOutcome, bool, error) {
	for {
		choice, err := r.requestChoice(ctx)
		if err != nil {
			return RoundOutcome{}, false, err
		}

		if choice == Stay {
			r.logger.Info("Player stays", "total", r.player.Hand.TotalValue())
			return RoundOutcome{}, false, nil
		}

		if err := r.deal(r.player, false); err != nil {
			return RoundOutcome{}, false, err
		}

		if r.player.Hand.IsBlackjack() {
			return r.end(WinnerPlayer, ReasonPlayerBlackjack), true, nil
		}
		if r.player.Hand.IsBusted() {
			return r.end(WinnerDealer, ReasonPlayerBusted), true, nil
		}
	}
}

// requestChoice asks until the input parses as a valid choice
func (r *Round) requestChoice(ctx context.Context) (Choice, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("waiting for player choice: %w", err)
		}

		raw, err := r.choices.RequestPlayerChoice(ctx)
		if err != nil {
			return 0, fmt.Errorf("requesting player choice: %w", err)
		}

		choice, ok := ParseChoice(raw)
		if !ok {
			r.logger.Debug("Ignoring invalid choice", "input", raw)
			continue
		}

		r.logger.Debug("Player choice", "choice", choice)
		return choice, nil
	}
}

func (r *Round) dealerTurn() (RoundOutcome, bool, error) {
	for r.dealer.MustHit() {
		if err := r.deal(r.dealer, false); err != nil {
			return RoundOutcome{}, false, err
		}

		if r.dealer.Hand.IsBlackjack() {
			return r.end(WinnerDealer, ReasonDealerBlackjack), true, nil
		}
		if r.dealer.Hand.IsBusted() {
			return r.end(WinnerPlayer, ReasonDealerBusted), true, nil
		}
	}

	r.logger.Info("Dealer stands", "total", r.dealer.Hand.TotalValue())
	return RoundOutcome{}, false, nil
}

func (r *Round) resolve() RoundOutcome {
	playerTotal := r.player.Hand.TotalValue()
	dealerTotal := r.dealer.Hand.TotalValue()

	switch {
	case playerTotal == dealerTotal:
		return r.end(WinnerTie, ReasonPush)
	case dealerTotal > playerTotal:
		return r.end(WinnerDealer, ReasonHigherTotal)
	default:
		return r.end(WinnerPlayer, ReasonHigherTotal)
	}
}

func (r *Round) deal(p *Participant, initial bool) error {
	card, err := r.deck.DealOne()
	if err != nil {
		return fmt.Errorf("dealing to %s: %w", p.Name, err)
	}

	total := p.Hand.AddCard(card)
	r.logger.Debug("Card dealt", "to", p.Name, "card", card.Short(), "total", total, "remaining", r.deck.CardsRemaining())
	r.publish(NewCardDealtEvent(r.id, p, card, initial, r.clock.Now()))
	return nil
}

// end records the terminal result in the current state and publishes it
func (r *Round) end(winner Winner, reason Reason) RoundOutcome {
	outcome := RoundOutcome{
		RoundID:     r.id,
		Winner:      winner,
		Reason:      reason,
		EndedIn:     r.state,
		PlayerName:  r.player.Name,
		DealerName:  r.dealer.Name,
		PlayerCards: r.player.Hand.Cards(),
		DealerCards: r.dealer.Hand.Cards(),
		PlayerTotal: r.player.Hand.TotalValue(),
		DealerTotal: r.dealer.Hand.TotalValue(),
	}

	if r.state != StateResolved {
		r.transition(StateEnded)
	}
	r.outcome = &outcome

	r.logger.Info("Round ended",
		"winner", winner,
		"reason", reason,
		"endedIn", outcome.EndedIn,
		"playerTotal", outcome.PlayerTotal,
		"dealerTotal", outcome.DealerTotal)
	r.publish(NewRoundEndedEvent(outcome, r.clock.Now()))

	return outcome
}

func (r *Round) transition(next State) {
	r.logger.Debug("State transition", "from", r.state, "to", next)
	r.state = next
}

func (r *Round) publish(event GameEvent) {
	r.bus.Publish(event)
}
