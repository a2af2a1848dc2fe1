package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/blackjack/internal/deck"
)

// RoundOption configures a Round during creation.
type RoundOption func(*roundConfig)

// roundConfig holds all configuration for creating a round.
type roundConfig struct {
	rng         *rand.Rand
	deck        *deck.Deck // If provided, used as-is (overrides rng)
	bus         EventBus
	subscribers []EventSubscriber
	logger      *log.Logger
	clock       quartz.Clock
	roundID     string
	playerName  string
	dealerName  string
}

// WithRNG sets the random source used to build and shuffle the deck
func WithRNG(rng *rand.Rand) RoundOption {
	return func(c *roundConfig) { c.rng = rng }
}

// WithDeck supplies the deck directly, e.g. a stacked deck for a replay
func WithDeck(d *deck.Deck) RoundOption {
	return func(c *roundConfig) { c.deck = d }
}

// WithEventBus sets the bus that receives round events
func WithEventBus(bus EventBus) RoundOption {
	return func(c *roundConfig) { c.bus = bus }
}

// WithSubscribers subscribes each subscriber to the round's event bus
func WithSubscribers(subscribers ...EventSubscriber) RoundOption {
	return func(c *roundConfig) { c.subscribers = append(c.subscribers, subscribers...) }
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *log.Logger) RoundOption {
	return func(c *roundConfig) { c.logger = logger }
}

// WithClock sets the clock used to timestamp events
func WithClock(clock quartz.Clock) RoundOption {
	return func(c *roundConfig) { c.clock = clock }
}

// WithRoundID overrides the generated round identifier
func WithRoundID(id string) RoundOption {
	return func(c *roundConfig) { c.roundID = id }
}

// WithPlayerName sets the player's display name
func WithPlayerName(name string) RoundOption {
	return func(c *roundConfig) { c.playerName = name }
}

// WithDealerName sets the dealer's display name
func WithDealerName(name string) RoundOption {
	return func(c *roundConfig) { c.dealerName = name }
}

func defaultRoundConfig() *roundConfig {
	return &roundConfig{
		logger:     log.New(io.Discard),
		clock:      quartz.NewReal(),
		playerName: DefaultPlayerName,
		dealerName: DefaultDealerName,
	}
}

func (c *roundConfig) finalize() {
	if c.bus == nil {
		c.bus = NewEventBus()
	}
	for _, s := range c.subscribers {
		c.bus.Subscribe(s)
	}
	if c.deck == nil {
		c.deck = deck.NewDeck(c.rng)
	}
	if c.roundID == "" {
		c.roundID = uuid.NewString()
	}
}
