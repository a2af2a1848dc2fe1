package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
)

// TUIModel represents the Bubble Tea model for a blackjack round
type TUIModel struct {
	logger    *log.Logger
	styles    display.Styles
	formatter *game.EventFormatter

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	// State
	gameLog      []string
	actionResult chan ActionResult
	quitting     bool
	focusedPane  int // 0 = log, 1 = input

	// Round state, rebuilt from events
	playerName     string
	dealerName     string
	playerCards    []deck.Card
	dealerCards    []deck.Card
	playerTotal    int
	dealerTotal    int
	awaitingChoice bool
	outcome        *game.RoundOutcome

	// Dimensions
	width       int
	height      int
	initialized bool // Track if viewport has been properly sized

	// Test mode
	testMode    bool
	capturedLog []string // For test assertions
}

// ActionResult is a line submitted by the player, or a request to quit
type ActionResult struct {
	Input string
	Quit  bool
}

// roundEventMsg delivers a round event into the Bubble Tea loop
type roundEventMsg struct {
	event game.GameEvent
}

// promptMsg asks the player for a hit-or-stay decision
type promptMsg struct{}

// NewTUIModel creates a new TUI model rendering to the terminal
func NewTUIModel(logger *log.Logger, mode display.ColorMode) *TUIModel {
	return NewTUIModelWithOptions(logger, mode, false)
}

// NewTUIModelWithOptions creates a new TUI model with test mode option. Test mode
// renders without colour and captures log entries for assertions.
func NewTUIModelWithOptions(logger *log.Logger, mode display.ColorMode, testMode bool) *TUIModel {
	var renderer *lipgloss.Renderer
	if testMode {
		renderer = display.NewRenderer(io.Discard, display.ColorNever)
	} else {
		renderer = display.NewRenderer(os.Stdout, mode)
	}
	styles := display.NewStyles(renderer)

	// Create viewport for game log with minimal initial size
	// Will be properly sized when WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Waiting for the deal..."
	ti.Focus()
	ti.CharLimit = 20
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	return &TUIModel{
		logger:       logger.WithPrefix("tui"),
		styles:       styles,
		formatter:    styles.Formatter(),
		logViewport:  vp,
		actionInput:  ti,
		gameLog:      []string{},
		actionResult: make(chan ActionResult, 1),
		focusedPane:  1, // Start with input focused
		playerName:   game.DefaultPlayerName,
		dealerName:   game.DefaultDealerName,
		testMode:     testMode,
		capturedLog:  []string{},
	}
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case roundEventMsg:
		m.applyEvent(msg.event)

	case promptMsg:
		m.awaitingChoice = true
		m.AddLogEntry(m.styles.Prompt.Render(game.ChoicePrompt))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.submit(ActionResult{Quit: true})
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			// Switch focus between log and input
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.actionInput.Focus()
			} else {
				m.focusedPane = 0
				m.actionInput.Blur()
			}
		case "enter":
			if m.focusedPane != 1 {
				break
			}
			if m.outcome != nil {
				m.quitting = true
				return m, tea.Quit
			}
			if m.awaitingChoice {
				input := strings.TrimSpace(m.actionInput.Value())
				m.awaitingChoice = false
				m.AddLogEntry(m.styles.Info.Render("> " + input))
				m.submit(ActionResult{Input: input})
			}
			m.actionInput.SetValue("")
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup", "b":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown", "f":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd

	// Only update input if it's focused
	if m.focusedPane == 1 {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// applyEvent folds a round event into the display state and the log
func (m *TUIModel) applyEvent(event game.GameEvent) {
	lines := m.formatter.Format(event)

	switch e := event.(type) {
	case game.CardDealtEvent:
		switch e.Role {
		case game.RolePlayer:
			m.playerName = e.Participant
			m.playerCards = append(m.playerCards, e.Card)
			m.playerTotal = e.Total
		case game.RoleDealer:
			m.dealerName = e.Participant
			m.dealerCards = append(m.dealerCards, e.Card)
			m.dealerTotal = e.Total
		}
	case game.HandDisplayedEvent:
		if len(lines) > 0 {
			lines[0] = m.styles.Header.Render(lines[0])
		}
	case game.RoundEndedEvent:
		outcome := e.Outcome
		m.outcome = &outcome
		m.awaitingChoice = false
		m.playerTotal = outcome.PlayerTotal
		m.dealerTotal = outcome.DealerTotal
		lines = []string{m.styles.Outcome(outcome)}
	}

	for _, line := range lines {
		m.AddLogEntry(line)
	}
}

// submit hands a result to the waiting agent without blocking the UI loop
func (m *TUIModel) submit(result ActionResult) {
	select {
	case m.actionResult <- result:
	default:
		m.logger.Debug("Dropping action, previous one not consumed", "input", result.Input, "quit", result.Quit)
	}
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Action pane (bottom, full width)
	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)

	actionStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(unfocusedBorder).
		Width(max(m.width-2, 1)).
		Height(max(actionHeight, 1))
	if m.focusedPane == 1 {
		actionStyle = actionStyle.BorderForeground(focusedBorder)
	}
	actionPane := actionStyle.Render(actionContent)

	// Sidebar pane (right of the log, same height)
	sidebarContent := m.renderSidebarPane()
	sidebarWidth := max(lipgloss.Width(sidebarContent), 28)
	paneHeight := max(m.height-actionHeight-4, 1)

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(unfocusedBorder).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	// Log pane (top, fills the rest)
	logWidth := max(m.width-sidebarWidth-4, 1)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight

	// On first proper sizing, reset to top to avoid starting scrolled down
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.GotoTop()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(unfocusedBorder).
		Width(logWidth).
		Height(paneHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(focusedBorder)
	}
	logPane := logStyle.Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

// renderSidebarPane shows both hands and their totals
func (m *TUIModel) renderSidebarPane() string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render(" Blackjack "))
	content.WriteString("\n\n")

	content.WriteString(HandInfoStyle.Render(fmt.Sprintf("%s: %d", m.playerName, m.playerTotal)))
	content.WriteString("\n")
	content.WriteString(m.formatCards(m.playerCards))
	content.WriteString("\n\n")

	content.WriteString(HandInfoStyle.Render(fmt.Sprintf("%s: %d", m.dealerName, m.dealerTotal)))
	content.WriteString("\n")
	content.WriteString(m.formatCards(m.dealerCards))
	content.WriteString("\n")

	return content.String()
}

// renderActionPane renders the input pane
func (m *TUIModel) renderActionPane() string {
	var content strings.Builder

	switch {
	case m.outcome != nil:
		content.WriteString(m.styles.Outcome(*m.outcome))
		m.actionInput.Placeholder = "Enter to exit"
	case m.awaitingChoice:
		content.WriteString(ActionsStyle.Render("Actions: [1] hit  [2] stay"))
		m.actionInput.Placeholder = "hit or stay"
	default:
		content.WriteString(HandInfoStyle.Render("Dealing..."))
		m.actionInput.Placeholder = "Waiting for the deal..."
	}
	content.WriteString("\n")

	content.WriteString(m.actionInput.View())
	content.WriteString("\n")

	if m.focusedPane == 0 {
		content.WriteString(InfoStyle.Render("Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		content.WriteString(InfoStyle.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}

	return content.String()
}

// formatCards renders a hand in compact notation with suit colours
func (m *TUIModel) formatCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return InfoStyle.Render("(no cards)")
	}

	formatted := make([]string, 0, len(cards))
	for _, card := range cards {
		label := card.Rank.String() + card.Suit.Symbol()
		if card.IsRed() {
			formatted = append(formatted, m.styles.RedCard.Render(label))
		} else {
			formatted = append(formatted, m.styles.BlackCard.Render(label))
		}
	}

	return "[" + strings.Join(formatted, " ") + "]"
}

// AddLogEntry adds an entry to the game log
func (m *TUIModel) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	// In test mode, also capture the log entry
	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return // Skip UI updates in test mode
	}

	// Update content and auto-scroll to bottom
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	// Only call GotoBottom if viewport has valid dimensions
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Outcome returns the round result once the round ended event has arrived
func (m *TUIModel) Outcome() (game.RoundOutcome, bool) {
	if m.outcome == nil {
		return game.RoundOutcome{}, false
	}
	return *m.outcome, true
}

// IsAwaitingChoice reports whether a prompt is open
func (m *TUIModel) IsAwaitingChoice() bool {
	return m.awaitingChoice
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *TUIModel) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	// Return a copy to prevent modification
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// InjectAction programmatically injects a line of input (test mode only)
func (m *TUIModel) InjectAction(input string) error {
	if !m.testMode {
		return fmt.Errorf("action injection only available in test mode")
	}

	select {
	case m.actionResult <- ActionResult{Input: input}:
		return nil
	default:
		return fmt.Errorf("action channel full")
	}
}

// IsTestMode returns whether the TUI is in test mode
func (m *TUIModel) IsTestMode() bool {
	return m.testMode
}
