package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
)

// ErrPlayerQuit is returned when the player closes the TUI while a prompt is open
var ErrPlayerQuit = errors.New("player quit")

// TUIAgent connects a round to the Bubble Tea program. It is the round's
// ChoiceSource and an EventSubscriber; all model mutation happens on the
// program's goroutine via messages.
type TUIAgent struct {
	model   *TUIModel
	program *tea.Program
	send    func(tea.Msg)
	done    chan struct{}
	logger  *log.Logger
}

// NewTUIAgent creates a new TUI-based agent. The program stops when ctx is done.
func NewTUIAgent(ctx context.Context, logger *log.Logger, mode display.ColorMode) *TUIAgent {
	model := NewTUIModel(logger, mode)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	return &TUIAgent{
		model:   model,
		program: program,
		send:    program.Send,
		done:    make(chan struct{}),
		logger:  logger.WithPrefix("ui"),
	}
}

// NewTestTUIAgent creates an agent around a test-mode model with no running
// program. Messages are applied to the model synchronously.
func NewTestTUIAgent(logger *log.Logger) *TUIAgent {
	model := NewTUIModelWithOptions(logger, display.ColorNever, true)

	return &TUIAgent{
		model:  model,
		send:   func(msg tea.Msg) { model.Update(msg) },
		done:   make(chan struct{}),
		logger: logger.WithPrefix("ui"),
	}
}

// Model returns the underlying Bubble Tea model
func (ti *TUIAgent) Model() *TUIModel {
	return ti.model
}

// Run runs the program until the player exits or the context ends
func (ti *TUIAgent) Run() error {
	defer close(ti.done)

	if ti.program == nil {
		return errors.New("tui program not available in test mode")
	}

	if _, err := ti.program.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

// Quit asks the program to exit
func (ti *TUIAgent) Quit() {
	if ti.program != nil {
		ti.program.Quit()
	}
}

// RequestPlayerChoice opens the prompt and waits for the player's line
func (ti *TUIAgent) RequestPlayerChoice(ctx context.Context) (string, error) {
	ti.logger.Debug("Waiting for user action")
	ti.send(promptMsg{})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-ti.done:
		return "", ErrPlayerQuit
	case result := <-ti.model.actionResult:
		if result.Quit {
			ti.logger.Info("User chose to quit")
			return "", ErrPlayerQuit
		}
		ti.logger.Debug("Received user action", "input", result.Input)
		return result.Input, nil
	}
}

// OnEvent forwards a round event to the program
func (ti *TUIAgent) OnEvent(event game.GameEvent) {
	ti.send(roundEventMsg{event: event})
}
