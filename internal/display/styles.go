package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// ColorMode selects when styled output is emitted
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode name
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(s); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// NewRenderer creates a lipgloss renderer for w. Auto leaves profile detection to
// termenv, which honours NO_COLOR and non-terminal writers.
func NewRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Styles holds every style used to render the narrative
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Prompt    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Win       lipgloss.Style
	Loss      lipgloss.Style
	Tie       lipgloss.Style
	Info      lipgloss.Style
}

// NewStyles builds the styles against a renderer
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1E7B45")).
			Bold(true).
			Padding(0, 1),
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FAFAFA"}).
			Bold(true),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Loss: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Tie: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Card renders a card in its suit colour
func (s Styles) Card(c deck.Card) string {
	if c.IsRed() {
		return s.RedCard.Render(c.String())
	}
	return s.BlackCard.Render(c.String())
}

// Outcome renders the closing line in the colour of the result
func (s Styles) Outcome(o game.RoundOutcome) string {
	switch o.Winner {
	case game.WinnerPlayer:
		return s.Win.Render(o.Message())
	case game.WinnerDealer:
		return s.Loss.Render(o.Message())
	default:
		return s.Tie.Render(o.Message())
	}
}

// Formatter returns an event formatter that colours cards with these styles
func (s Styles) Formatter() *game.EventFormatter {
	return game.NewEventFormatter(game.FormattingOptions{CardFormatter: s.Card})
}
