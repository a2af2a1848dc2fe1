package game

// Role distinguishes how a participant takes its turn
type Role int

const (
	// RolePlayer decides each turn through the ChoiceSource
	RolePlayer Role = iota
	// RoleDealer draws until reaching DealerStandsOn
	RoleDealer
)

const (
	DefaultPlayerName = "Player"
	DefaultDealerName = "Dealer"

	// DealerStandsOn is the lowest total at which the dealer stops drawing
	DealerStandsOn = 17
)

// String returns the string representation of a role
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleDealer:
		return "dealer"
	default:
		return "unknown"
	}
}

// Participant is a named seat at the table that owns a hand
type Participant struct {
	Name string
	Role Role
	Hand *Hand
}

// NewPlayer creates the human participant
func NewPlayer(name string) *Participant {
	if name == "" {
		name = DefaultPlayerName
	}
	return &Participant{Name: name, Role: RolePlayer, Hand: NewHand()}
}

// NewDealer creates the automated participant
func NewDealer(name string) *Participant {
	if name == "" {
		name = DefaultDealerName
	}
	return &Participant{Name: name, Role: RoleDealer, Hand: NewHand()}
}

// MustHit reports whether the dealer is required to draw another card.
// Players are never forced to hit.
func (p *Participant) MustHit() bool {
	return p.Role == RoleDealer && p.Hand.TotalValue() < DealerStandsOn
}
