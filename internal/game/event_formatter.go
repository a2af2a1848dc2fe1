package game

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	CardFormatter func(deck.Card) string // Renders a single card; defaults to Card.String
}

// EventFormatter turns round events into the lines of the game narrative
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format returns the narrative lines for any event
func (ef *EventFormatter) Format(event GameEvent) []string {
	switch e := event.(type) {
	case CardDealtEvent:
		return ef.FormatCardDealt(e)
	case HandDisplayedEvent:
		return ef.FormatHandDisplayed(e)
	case RoundEndedEvent:
		return []string{ef.FormatRoundEnded(e)}
	default:
		return nil
	}
}

// FormatCardDealt announces the new card and, for hits, the new total
func (ef *EventFormatter) FormatCardDealt(event CardDealtEvent) []string {
	lines := []string{fmt.Sprintf("New card dealt for %s: %s", event.Participant, ef.card(event.Card))}
	if event.Initial {
		return lines
	}

	switch event.Role {
	case RolePlayer:
		lines = append(lines, fmt.Sprintf("Your new total is %d.", event.Total))
	case RoleDealer:
		lines = append(lines, fmt.Sprintf("%s's new total is %d.", event.Participant, event.Total))
	}
	return lines
}

// FormatHandDisplayed lists every card in a hand followed by its total
func (ef *EventFormatter) FormatHandDisplayed(event HandDisplayedEvent) []string {
	lines := make([]string, 0, len(event.Cards)+2)
	lines = append(lines, fmt.Sprintf("---- %s's Hand: ----", event.Participant))
	for _, card := range event.Cards {
		lines = append(lines, "=> "+ef.card(card))
	}
	lines = append(lines, fmt.Sprintf("=> Total value: %d", event.Total))
	return lines
}

// FormatRoundEnded returns the closing line for the round
func (ef *EventFormatter) FormatRoundEnded(event RoundEndedEvent) string {
	return event.Outcome.Message()
}

func (ef *EventFormatter) card(c deck.Card) string {
	if ef.opts.CardFormatter != nil {
		return ef.opts.CardFormatter(c)
	}
	return c.String()
}
