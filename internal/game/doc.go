// Package game implements the rules engine for a single round of blackjack.
//
// The main type is Round, which owns a deck and two participants (the player and
// the dealer) and walks the state machine
//
//	Start → Dealt → BlackjackCheck → PlayerTurn → DealerTurn → Resolved
//
// with an early Ended state for blackjacks and busts.
//
// # Basic Usage
//
// Create and play a round:
//
//	r := game.NewRound(choices, game.WithSubscribers(display))
//	outcome, err := r.Play(ctx)
//	if err != nil {
//	    // the deck ran out or the choice source failed
//	}
//	fmt.Println(outcome.Message())
//
// The ChoiceSource returns raw text; the round validates it and asks again until
// it reads a hit or a stay. Everything the player sees is delivered as events
// (CardDealtEvent, HandDisplayedEvent, RoundEndedEvent) through an EventBus, and
// EventFormatter turns those into the narrative lines.
//
// # Deterministic Testing
//
// Supply a stacked deck to fix the deal order:
//
//	d := deck.NewStackedDeck(deck.MustParseCards("10H 7D 9S 8C")...)
//	r := game.NewRound(game.NewScriptedChoices("2"), game.WithDeck(d))
//
// or a seeded random source to reproduce a shuffle:
//
//	r := game.NewRound(choices, game.WithRNG(randutil.New(42)))
//
// # Scoring
//
// Hand totals count aces as 11 and downgrade a single ace to 1 when the hand
// would otherwise bust. Only one downgrade is ever applied, so two aces and a
// king total 22.
package game
