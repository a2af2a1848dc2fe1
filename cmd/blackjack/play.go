package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/tui"
)

const title = " ♠ ♥ Blackjack ♦ ♣ "

// errAbandoned marks a round the player walked away from (Ctrl+C or quit)
var errAbandoned = errors.New("round abandoned")

// Run plays one round with the resolved configuration
func (c *CLI) Run() error {
	cfg, err := c.config()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mode, err := display.ParseColorMode(cfg.UI.Color)
	if err != nil {
		return err
	}

	logger.Info("Starting blackjack", "version", version, "mode", cfg.UI.Mode, "seed", cfg.Table.Seed)

	opts := []game.RoundOption{
		game.WithRNG(randutil.FromSeed(cfg.Table.Seed)),
		game.WithLogger(logger),
		game.WithPlayerName(cfg.Table.PlayerName),
		game.WithDealerName(cfg.Table.DealerName),
	}

	var outcome game.RoundOutcome
	if cfg.IsTUI() {
		outcome, err = playTUI(ctx, logger, mode, opts)
	} else {
		outcome, err = playConsole(ctx, os.Stdin, os.Stdout, logger, mode, opts)
	}

	if isAbandoned(err) {
		logger.Info("Round abandoned", "error", err)
		fmt.Fprintln(os.Stderr, "Round abandoned.")
		return errAbandoned
	}
	if err != nil {
		return err
	}

	logger.Info("Round complete", "round", outcome.RoundID, "winner", outcome.Winner, "reason", outcome.Reason)
	return nil
}

// config resolves defaults < HCL file < environment < flags
func (c *CLI) config() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.LoadEnv(".env"); err != nil {
		return nil, err
	}

	cfg.ApplyOverrides(config.Overrides{
		PlayerName: c.PlayerName,
		Seed:       c.Seed,
		TUI:        c.TUI,
		Color:      c.Color,
		LogLevel:   c.LogLevel,
		LogFile:    c.LogFile,
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger opens the debug log so diagnostics never interleave with the game
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeLog := func() {}

	if cfg.UI.LogFile != "-" {
		f, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create debug log: %w", err)
		}
		w = f
		closeLog = func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close debug log", "error", err)
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
		Level:           cfg.Level(),
	})
	return logger, closeLog, nil
}

func playConsole(ctx context.Context, in io.Reader, out io.Writer, logger *log.Logger, mode display.ColorMode, opts []game.RoundOption) (game.RoundOutcome, error) {
	console := display.NewConsole(in, out,
		display.WithColorMode(mode),
		display.WithConsoleLogger(logger),
	)
	console.PrintTitle(title)

	round := game.NewRound(console, append(opts, game.WithSubscribers(console))...)
	return round.Play(ctx)
}

// playTUI runs the Bubble Tea program and the round side by side. The round
// goroutine stops the program if it fails; the program stops the round by
// answering a pending prompt with a quit.
func playTUI(ctx context.Context, logger *log.Logger, mode display.ColorMode, opts []game.RoundOption) (game.RoundOutcome, error) {
	g, gctx := errgroup.WithContext(ctx)

	agent := tui.NewTUIAgent(gctx, logger, mode)
	round := game.NewRound(agent, append(opts, game.WithSubscribers(agent))...)

	var outcome game.RoundOutcome
	g.Go(agent.Run)
	g.Go(func() error {
		o, err := round.Play(gctx)
		if err != nil {
			agent.Quit()
			return err
		}
		outcome = o
		return nil
	})

	if err := g.Wait(); err != nil {
		return game.RoundOutcome{}, err
	}

	// The alt screen is gone once the program exits; repeat the result.
	styles := display.NewStyles(display.NewRenderer(os.Stdout, mode))
	fmt.Println(styles.Outcome(outcome))
	return outcome, nil
}

func isAbandoned(err error) bool {
	return errors.Is(err, tui.ErrPlayerQuit) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, tea.ErrProgramKilled)
}
