package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck(randutil.New(42))

	require.Equal(t, Size, d.CardsRemaining())
	assert.False(t, d.IsEmpty())

	seen := make(map[Card]bool)
	for _, card := range d.Cards() {
		assert.False(t, seen[card], "duplicate card %s", card.Short())
		seen[card] = true
	}
	assert.Len(t, seen, 4*13)

	for _, suit := range Suits {
		for _, rank := range Ranks {
			assert.True(t, seen[NewCard(suit, rank)], "missing %s", NewCard(suit, rank).Short())
		}
	}
}

func TestNewDeckOrderIsDeterministic(t *testing.T) {
	a := NewDeck(randutil.New(1)).Cards()
	b := NewDeck(randutil.New(2)).Cards()
	assert.Equal(t, a, b, "unshuffled decks should not depend on the random source")

	// Suit-major, rank-minor
	assert.Equal(t, NewCard(Hearts, Two), a[0])
	assert.Equal(t, NewCard(Hearts, Ace), a[12])
	assert.Equal(t, NewCard(Diamonds, Two), a[13])
	assert.Equal(t, NewCard(Clubs, Ace), a[51])
}

func TestShufflePreservesCards(t *testing.T) {
	d := NewDeck(randutil.New(42))
	before := d.Cards()

	d.Shuffle()
	after := d.Cards()

	require.Len(t, after, Size)
	assert.NotEqual(t, before, after, "seeded shuffle should change the order")
	assert.Equal(t, sortedShort(before), sortedShort(after))
}

func TestShuffleIsReproducibleWithSeed(t *testing.T) {
	a := NewDeck(randutil.New(7))
	b := NewDeck(randutil.New(7))
	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.Cards(), b.Cards())
}

func TestDealOne(t *testing.T) {
	d := NewDeck(randutil.New(42))
	d.Shuffle()
	initial := d.CardsRemaining()
	top := d.Cards()[initial-1]

	card, err := d.DealOne()
	require.NoError(t, err)

	assert.Equal(t, top, card, "DealOne should take from the top (end) of the deck")
	assert.Equal(t, initial-1, d.CardsRemaining())
	assert.False(t, d.Contains(card), "dealt card must leave the deck")
}

func TestDealAllThenEmpty(t *testing.T) {
	d := NewDeck(randutil.New(42))

	for i := 0; i < Size; i++ {
		_, err := d.DealOne()
		require.NoError(t, err, "deal %d", i+1)
	}
	assert.True(t, d.IsEmpty())

	_, err := d.DealOne()
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Equal(t, 0, d.CardsRemaining())
}

func TestStackedDeck(t *testing.T) {
	cards := MustParseCards("10H 7D 9S 8C")
	d := NewStackedDeck(cards...)

	assert.True(t, d.IsStacked())
	d.Shuffle()

	for _, want := range cards {
		got, err := d.DealOne()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := d.DealOne()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestNilRNGFallsBack(t *testing.T) {
	d := NewDeck(nil)
	assert.NotPanics(t, d.Shuffle)
	assert.Equal(t, Size, d.CardsRemaining())
}

func sortedShort(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Short()
	}
	sort.Strings(out)
	return out
}
