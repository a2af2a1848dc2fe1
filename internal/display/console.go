package display

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

// ErrInputClosed is returned when the input stream ends before the player answers
var ErrInputClosed = errors.New("input closed")

type readResult struct {
	line string
	err  error
}

// Console is the line-based terminal boundary. It prints the round narrative as
// events arrive and reads the player's choices one line at a time.
type Console struct {
	in        *bufio.Reader
	out       io.Writer
	styles    Styles
	formatter *game.EventFormatter
	logger    *log.Logger

	// pending holds a read that outlived a cancelled request so that the next
	// request picks up its result instead of racing a second reader.
	pending chan readResult
}

// ConsoleOption configures a Console
type ConsoleOption func(*consoleConfig)

type consoleConfig struct {
	color  ColorMode
	logger *log.Logger
}

// WithColorMode sets when ANSI styling is emitted
func WithColorMode(mode ColorMode) ConsoleOption {
	return func(c *consoleConfig) { c.color = mode }
}

// WithConsoleLogger sets the diagnostic logger
func WithConsoleLogger(logger *log.Logger) ConsoleOption {
	return func(c *consoleConfig) { c.logger = logger }
}

// NewConsole creates a console reading choices from in and writing the narrative
// to out
func NewConsole(in io.Reader, out io.Writer, opts ...ConsoleOption) *Console {
	cfg := &consoleConfig{
		color:  ColorAuto,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	styles := NewStyles(NewRenderer(out, cfg.color))
	return &Console{
		in:        bufio.NewReader(in),
		out:       out,
		styles:    styles,
		formatter: styles.Formatter(),
		logger:    cfg.logger.WithPrefix("console"),
	}
}

// Styles returns the styles the console renders with
func (c *Console) Styles() Styles {
	return c.styles
}

// PrintTitle writes the banner shown before the first card is dealt
func (c *Console) PrintTitle(title string) {
	c.println(c.styles.Title.Render(title))
	c.println("")
}

// RequestPlayerChoice prints the hit-or-stay prompt and returns the next line of
// input without its line ending. Validation is left to the round.
func (c *Console) RequestPlayerChoice(ctx context.Context) (string, error) {
	c.println(c.styles.Prompt.Render(game.ChoicePrompt))

	if c.pending == nil {
		ch := make(chan readResult, 1)
		c.pending = ch
		go func() {
			line, err := c.in.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-c.pending:
		c.pending = nil
		line := strings.TrimRight(res.line, "\r\n")

		if res.err != nil {
			// A final line without a newline still counts as an answer
			if errors.Is(res.err, io.EOF) && line != "" {
				c.logger.Debug("Read final line", "input", line)
				return line, nil
			}
			if errors.Is(res.err, io.EOF) {
				return "", fmt.Errorf("%w: %w", ErrInputClosed, res.err)
			}
			return "", fmt.Errorf("reading input: %w", res.err)
		}

		c.logger.Debug("Read line", "input", line)
		return line, nil
	}
}

// OnEvent prints the narrative lines for a round event
func (c *Console) OnEvent(event game.GameEvent) {
	lines := c.formatter.Format(event)
	if len(lines) == 0 {
		return
	}

	switch e := event.(type) {
	case game.HandDisplayedEvent:
		lines[0] = c.styles.Header.Render(lines[0])
	case game.RoundEndedEvent:
		lines = []string{c.styles.Outcome(e.Outcome)}
	}

	for _, line := range lines {
		c.println(line)
	}
}

func (c *Console) println(s string) {
	if _, err := fmt.Fprintln(c.out, s); err != nil {
		c.logger.Warn("Failed to write output", "error", err)
	}
}
