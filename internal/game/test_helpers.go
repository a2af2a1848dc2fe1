package game

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
)

// ErrScriptExhausted is returned by ScriptedChoices when it runs out of inputs
var ErrScriptExhausted = errors.New("scripted choices exhausted")

// ScriptedChoices replays a fixed sequence of raw inputs as a ChoiceSource
type ScriptedChoices struct {
	inputs []string
	calls  int
}

// NewScriptedChoices creates a choice source that returns inputs in order
func NewScriptedChoices(inputs ...string) *ScriptedChoices {
	return &ScriptedChoices{inputs: inputs}
}

// RequestPlayerChoice returns the next scripted input
func (s *ScriptedChoices) RequestPlayerChoice(_ context.Context) (string, error) {
	if s.calls >= len(s.inputs) {
		return "", ErrScriptExhausted
	}
	input := s.inputs[s.calls]
	s.calls++
	return input, nil
}

// Calls returns how many times a choice was requested
func (s *ScriptedChoices) Calls() int {
	return s.calls
}

// EventRecorder captures every event it receives
type EventRecorder struct {
	Events []GameEvent
}

// OnEvent records the event
func (r *EventRecorder) OnEvent(event GameEvent) {
	r.Events = append(r.Events, event)
}

// Types returns the recorded event types in order
func (r *EventRecorder) Types() []EventType {
	types := make([]EventType, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.EventType()
	}
	return types
}

// CardsDealt returns the recorded card dealt events
func (r *EventRecorder) CardsDealt() []CardDealtEvent {
	var out []CardDealtEvent
	for _, e := range r.Events {
		if dealt, ok := e.(CardDealtEvent); ok {
			out = append(out, dealt)
		}
	}
	return out
}

// RoundEnded returns the recorded round ended events
func (r *EventRecorder) RoundEnded() []RoundEndedEvent {
	var out []RoundEndedEvent
	for _, e := range r.Events {
		if ended, ok := e.(RoundEndedEvent); ok {
			out = append(out, ended)
		}
	}
	return out
}

// NewTestRound creates a round that deals the given cards in order (player, player,
// dealer, dealer, then hits) and plays the scripted inputs.
func NewTestRound(cards string, inputs []string, opts ...RoundOption) (*Round, *ScriptedChoices, *EventRecorder) {
	script := NewScriptedChoices(inputs...)
	recorder := &EventRecorder{}

	base := []RoundOption{
		WithDeck(deck.NewStackedDeck(deck.MustParseCards(cards)...)),
		WithLogger(log.New(io.Discard)),
		WithRoundID("test-round"),
		WithSubscribers(recorder),
	}

	return NewRound(script, append(base, opts...)...), script, recorder
}
