package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable the config reads
const EnvPrefix = "BLACKJACK_"

// UI modes
const (
	ModeConsole = "console"
	ModeTUI     = "tui"
)

// Config represents the complete game configuration
type Config struct {
	Table TableSettings
	UI    UISettings
}

// TableSettings contains the participants and the shuffle seed
type TableSettings struct {
	PlayerName string `hcl:"player_name,optional" env:"PLAYER_NAME"`
	DealerName string `hcl:"dealer_name,optional" env:"DEALER_NAME"`
	Seed       int64  `hcl:"seed,optional" env:"SEED"` // 0 = time-seeded
}

// UISettings contains the terminal and logging configuration
type UISettings struct {
	Mode     string `hcl:"mode,optional" env:"UI_MODE"`
	Color    string `hcl:"color,optional" env:"COLOR"`
	LogLevel string `hcl:"log_level,optional" env:"LOG_LEVEL"`
	LogFile  string `hcl:"log_file,optional" env:"LOG_FILE"`
}

// fileConfig mirrors the HCL layout; both blocks are optional
type fileConfig struct {
	Table *TableSettings `hcl:"table,block"`
	UI    *UISettings    `hcl:"ui,block"`
}

// Overrides holds values set on the command line. Zero values are ignored.
type Overrides struct {
	PlayerName string
	Seed       int64
	TUI        bool
	Color      string
	LogLevel   string
	LogFile    string
}

// DefaultConfig returns default game configuration
func DefaultConfig() *Config {
	return &Config{
		Table: TableSettings{
			PlayerName: "Player",
			DealerName: "Dealer",
		},
		UI: UISettings{
			Mode:     ModeConsole,
			Color:    "auto",
			LogLevel: "info",
			LogFile:  "blackjack.log",
		},
	}
}

// Load loads configuration from an HCL file. A missing file, or an empty
// filename, yields the defaults.
func Load(filename string) (*Config, error) {
	config := DefaultConfig()
	if filename == "" {
		return config, nil
	}

	// Check if file exists
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return config, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var parsed fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if parsed.Table != nil {
		config.Table.merge(*parsed.Table)
	}
	if parsed.UI != nil {
		config.UI.merge(*parsed.UI)
	}

	return config, nil
}

// LoadEnv applies BLACKJACK_* environment overrides, first loading any of the
// given .env files that exist. Variables already set in the environment win
// over the files.
func (c *Config) LoadEnv(envFiles ...string) error {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}

	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}

// ApplyOverrides applies command-line values on top of file and environment
func (c *Config) ApplyOverrides(o Overrides) {
	c.Table.merge(TableSettings{PlayerName: o.PlayerName, Seed: o.Seed})
	c.UI.merge(UISettings{Color: o.Color, LogLevel: o.LogLevel, LogFile: o.LogFile})
	if o.TUI {
		c.UI.Mode = ModeTUI
	}
}

// Validate validates the game configuration
func (c *Config) Validate() error {
	if c.Table.PlayerName == "" {
		return fmt.Errorf("player name must not be empty")
	}
	if c.Table.DealerName == "" {
		return fmt.Errorf("dealer name must not be empty")
	}
	if c.Table.PlayerName == c.Table.DealerName {
		return fmt.Errorf("player and dealer must have different names, both are %q", c.Table.PlayerName)
	}

	switch c.UI.Mode {
	case ModeConsole, ModeTUI:
	default:
		return fmt.Errorf("invalid ui mode: %s", c.UI.Mode)
	}

	switch c.UI.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode: %s", c.UI.Color)
	}

	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	if c.UI.LogFile == "" {
		return fmt.Errorf("log file must not be empty (use - for stderr)")
	}

	return nil
}

// Level returns the parsed log level, defaulting to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// IsTUI reports whether the Bubble Tea interface was requested
func (c *Config) IsTUI() bool {
	return c.UI.Mode == ModeTUI
}

func (t *TableSettings) merge(o TableSettings) {
	if o.PlayerName != "" {
		t.PlayerName = o.PlayerName
	}
	if o.DealerName != "" {
		t.DealerName = o.DealerName
	}
	if o.Seed != 0 {
		t.Seed = o.Seed
	}
}

func (u *UISettings) merge(o UISettings) {
	if o.Mode != "" {
		u.Mode = o.Mode
	}
	if o.Color != "" {
		u.Color = o.Color
	}
	if o.LogLevel != "" {
		u.LogLevel = o.LogLevel
	}
	if o.LogFile != "" {
		u.LogFile = o.LogFile
	}
}
