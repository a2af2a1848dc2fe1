package deck

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "blackjack",
			input: "AH KS",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Spades, Rank: King},
			},
		},
		{
			name:  "tens in both notations",
			input: "10D TC",
			expected: []Card{
				{Suit: Diamonds, Rank: Ten},
				{Suit: Clubs, Rank: Ten},
			},
		},
		{
			name:  "comma separated",
			input: "5h,5d,5s,5c",
			expected: []Card{
				{Suit: Hearts, Rank: Five},
				{Suit: Diamonds, Rank: Five},
				{Suit: Spades, Rank: Five},
				{Suit: Clubs, Rank: Five},
			},
		},
		{
			name:  "case insensitive",
			input: "qd jc 2h",
			expected: []Card{
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
				{Suit: Hearts, Rank: Two},
			},
		},
		{
			name:    "invalid rank",
			input:   "XS KS",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AS KX",
			wantErr: true,
		},
		{
			name:    "one is not a rank",
			input:   "1H",
			wantErr: true,
		},
		{
			name:    "missing suit",
			input:   "A",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustParseCards(t *testing.T) {
	cards := MustParseCards("AS KS")
	expected := []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Spades, Rank: King},
	}
	if !cardsEqual(cards, expected) {
		t.Errorf("MustParseCards() = %v, want %v", cards, expected)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card      Card
		narrative string
		short     string
	}{
		{NewCard(Hearts, Ace), "The Ace of Hearts", "AH"},
		{NewCard(Spades, Queen), "The Queen of Spades", "QS"},
		{NewCard(Diamonds, Ten), "The 10 of Diamonds", "10D"},
		{NewCard(Clubs, Two), "The 2 of Clubs", "2C"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.narrative {
			t.Errorf("String() = %q, want %q", got, tt.narrative)
		}
		if got := tt.card.Short(); got != tt.short {
			t.Errorf("Short() = %q, want %q", got, tt.short)
		}
	}
}

func TestRoundTripShortNotation(t *testing.T) {
	for _, suit := range Suits {
		for _, rank := range Ranks {
			card := NewCard(suit, rank)
			parsed, err := ParseCard(card.Short())
			if err != nil {
				t.Fatalf("ParseCard(%q) failed: %v", card.Short(), err)
			}
			if parsed != card {
				t.Errorf("ParseCard(%q) = %v, want %v", card.Short(), parsed, card)
			}
		}
	}
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Rank != b[i].Rank || a[i].Suit != b[i].Suit {
			return false
		}
	}
	return true
}
