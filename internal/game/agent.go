package game

import (
	"context"
	"strings"
)

// Choice is a validated player decision
type Choice int

const (
	Hit Choice = iota + 1
	Stay
)

// String returns the string representation of a choice
func (c Choice) String() string {
	switch c {
	case Hit:
		return "hit"
	case Stay:
		return "stay"
	default:
		return "unknown"
	}
}

// ChoicePrompt is the question shown to the player on every turn
const ChoicePrompt = "Would you like to hit or stay? 1) Hit 2) Stay"

// ParseChoice validates raw player input. It accepts the menu numbers as well as
// the words, case-insensitively.
func ParseChoice(raw string) (Choice, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "hit", "h":
		return Hit, true
	case "2", "stay", "s", "stand":
		return Stay, true
	default:
		return 0, false
	}
}

// ChoiceSource supplies raw player input. It may block until input is available;
// validation is done by the round, which asks again on anything unrecognised.
type ChoiceSource interface {
	RequestPlayerChoice(ctx context.Context) (string, error)
}

// ChoiceSourceFunc adapts a function to the ChoiceSource interface
type ChoiceSourceFunc func(ctx context.Context) (string, error)

// RequestPlayerChoice calls f(ctx)
func (f ChoiceSourceFunc) RequestPlayerChoice(ctx context.Context) (string, error) {
	return f(ctx)
}
