package game

import (
	"time"

	"github.com/lox/blackjack/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for round events
const (
	EventTypeCardDealt     EventType = "card_dealt"
	EventTypeHandDisplayed EventType = "hand_displayed"
	EventTypeRoundEnded    EventType = "round_ended"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// CardDealtEvent is published every time a card moves from the deck to a hand
type CardDealtEvent struct {
	RoundID     string
	Participant string
	Role        Role
	Card        deck.Card
	Total       int
	Initial     bool // part of the opening two-card deal
	timestamp   time.Time
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }
func (e CardDealtEvent) Timestamp() time.Time { return e.timestamp }

// NewCardDealtEvent creates a new card dealt event
func NewCardDealtEvent(roundID string, p *Participant, card deck.Card, initial bool, at time.Time) CardDealtEvent {
	return CardDealtEvent{
		RoundID:     roundID,
		Participant: p.Name,
		Role:        p.Role,
		Card:        card,
		Total:       p.Hand.TotalValue(),
		Initial:     initial,
		timestamp:   at,
	}
}

// HandDisplayedEvent carries a snapshot of a participant's hand for display
type HandDisplayedEvent struct {
	RoundID     string
	Participant string
	Role        Role
	Cards       []deck.Card
	Total       int
	timestamp   time.Time
}

func (e HandDisplayedEvent) EventType() EventType { return EventTypeHandDisplayed }
func (e HandDisplayedEvent) Timestamp() time.Time { return e.timestamp }

// NewHandDisplayedEvent creates a new hand displayed event
func NewHandDisplayedEvent(roundID string, p *Participant, at time.Time) HandDisplayedEvent {
	return HandDisplayedEvent{
		RoundID:     roundID,
		Participant: p.Name,
		Role:        p.Role,
		Cards:       p.Hand.Cards(),
		Total:       p.Hand.TotalValue(),
		timestamp:   at,
	}
}

// RoundEndedEvent is published once when the round reaches a terminal state
type RoundEndedEvent struct {
	Outcome   RoundOutcome
	timestamp time.Time
}

func (e RoundEndedEvent) EventType() EventType { return EventTypeRoundEnded }
func (e RoundEndedEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndedEvent creates a new round ended event
func NewRoundEndedEvent(outcome RoundOutcome, at time.Time) RoundEndedEvent {
	return RoundEndedEvent{
		Outcome:   outcome,
		timestamp: at,
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// SubscriberFunc adapts a function to the EventSubscriber interface.
// Function values are not comparable, so a SubscriberFunc cannot be unsubscribed.
type SubscriberFunc func(event GameEvent)

// OnEvent calls f(event)
func (f SubscriberFunc) OnEvent(event GameEvent) {
	f(event)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation. Delivery is
// synchronous and in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
