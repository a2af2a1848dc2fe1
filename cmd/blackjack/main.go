package main

import (
	"errors"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Config     string           `short:"c" help:"Path to the HCL config file" default:"blackjack.hcl"`
	Seed       int64            `help:"Shuffle seed for a reproducible deal (0 = time-seeded)"`
	TUI        bool             `help:"Play in the full-screen interface"`
	PlayerName string           `help:"Player display name"`
	Color      string           `help:"Colour output: auto, always or never"`
	LogLevel   string           `help:"Log level: debug, info, warn or error"`
	LogFile    string           `help:"Debug log file, - for stderr"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Play a round of blackjack against the dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	err := cli.Run()
	if errors.Is(err, errAbandoned) {
		ctx.Exit(130)
	}
	ctx.FatalIfErrorf(err)
}
