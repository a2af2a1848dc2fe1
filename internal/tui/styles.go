package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for the window chrome. Card and outcome colours come from
// display.Styles so both boundaries render the narrative the same way.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1E7B45")).
			Bold(true)

	HandInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ActionsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	focusedBorder   = lipgloss.Color("#04B575")
	unfocusedBorder = lipgloss.Color("#626262")
)
