package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/suite"
)

var envKeys = []string{
	"BLACKJACK_PLAYER_NAME",
	"BLACKJACK_DEALER_NAME",
	"BLACKJACK_SEED",
	"BLACKJACK_UI_MODE",
	"BLACKJACK_COLOR",
	"BLACKJACK_LOG_LEVEL",
	"BLACKJACK_LOG_FILE",
}

type ConfigSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) SetupTest() {
	s.dir = s.T().TempDir()

	// Setenv restores the original values on cleanup, including unsetting
	// variables godotenv adds during a test.
	for _, key := range envKeys {
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}
}

func (s *ConfigSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigSuite) TestDefaults() {
	cfg, err := Load("")
	s.Require().NoError(err)

	s.Equal(DefaultConfig(), cfg)
	s.Equal("Player", cfg.Table.PlayerName)
	s.Equal("Dealer", cfg.Table.DealerName)
	s.Equal(int64(0), cfg.Table.Seed)
	s.Equal(ModeConsole, cfg.UI.Mode)
	s.Equal("blackjack.log", cfg.UI.LogFile)
	s.NoError(cfg.Validate())
}

func (s *ConfigSuite) TestMissingFileUsesDefaults() {
	cfg, err := Load(filepath.Join(s.dir, "nope.hcl"))
	s.Require().NoError(err)
	s.Equal(DefaultConfig(), cfg)
}

func (s *ConfigSuite) TestLoadFile() {
	path := s.writeFile("blackjack.hcl", `
table {
  player_name = "Ada"
  seed        = 42
}

ui {
  mode      = "tui"
  log_level = "debug"
}
`)

	cfg, err := Load(path)
	s.Require().NoError(err)

	s.Equal("Ada", cfg.Table.PlayerName)
	s.Equal("Dealer", cfg.Table.DealerName, "unset fields keep defaults")
	s.Equal(int64(42), cfg.Table.Seed)
	s.Equal(ModeTUI, cfg.UI.Mode)
	s.True(cfg.IsTUI())
	s.Equal("auto", cfg.UI.Color)
	s.Equal(log.DebugLevel, cfg.Level())
	s.NoError(cfg.Validate())
}

func (s *ConfigSuite) TestLoadFileWithOnlyOneBlock() {
	path := s.writeFile("ui.hcl", `ui { color = "never" }`)

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal("never", cfg.UI.Color)
	s.Equal("Player", cfg.Table.PlayerName)
}

func (s *ConfigSuite) TestInvalidHCL() {
	path := s.writeFile("bad.hcl", `table {`)

	_, err := Load(path)
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to parse HCL file")
}

func (s *ConfigSuite) TestUnknownAttribute() {
	path := s.writeFile("unknown.hcl", `table { chips = 100 }`)

	_, err := Load(path)
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to decode HCL")
}

func (s *ConfigSuite) TestEnvironmentOverridesFile() {
	path := s.writeFile("blackjack.hcl", `table { player_name = "Ada" }`)
	s.T().Setenv("BLACKJACK_PLAYER_NAME", "Grace")
	s.T().Setenv("BLACKJACK_SEED", "7")

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Require().NoError(cfg.LoadEnv())

	s.Equal("Grace", cfg.Table.PlayerName)
	s.Equal(int64(7), cfg.Table.Seed)
	s.Equal("Dealer", cfg.Table.DealerName)
}

func (s *ConfigSuite) TestDotEnvFile() {
	envFile := s.writeFile(".env", "BLACKJACK_DEALER_NAME=House\nBLACKJACK_LOG_LEVEL=warn\n")

	cfg := DefaultConfig()
	s.Require().NoError(cfg.LoadEnv(envFile, filepath.Join(s.dir, "missing.env")))

	s.Equal("House", cfg.Table.DealerName)
	s.Equal(log.WarnLevel, cfg.Level())
}

func (s *ConfigSuite) TestProcessEnvironmentWinsOverDotEnv() {
	envFile := s.writeFile(".env", "BLACKJACK_DEALER_NAME=House\n")
	s.T().Setenv("BLACKJACK_DEALER_NAME", "Croupier")

	cfg := DefaultConfig()
	s.Require().NoError(cfg.LoadEnv(envFile))
	s.Equal("Croupier", cfg.Table.DealerName)
}

func (s *ConfigSuite) TestInvalidEnvironmentValue() {
	s.T().Setenv("BLACKJACK_SEED", "lots")

	cfg := DefaultConfig()
	err := cfg.LoadEnv()
	s.Require().Error(err)
	s.Contains(err.Error(), "parsing environment")
}

func (s *ConfigSuite) TestOverrides() {
	cfg := DefaultConfig()
	cfg.ApplyOverrides(Overrides{
		PlayerName: "Lin",
		Seed:       99,
		TUI:        true,
		LogFile:    "-",
	})

	s.Equal("Lin", cfg.Table.PlayerName)
	s.Equal(int64(99), cfg.Table.Seed)
	s.Equal(ModeTUI, cfg.UI.Mode)
	s.Equal("-", cfg.UI.LogFile)
	s.Equal("info", cfg.UI.LogLevel, "zero overrides are ignored")
}

func (s *ConfigSuite) TestValidate() {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"empty player", func(c *Config) { c.Table.PlayerName = "" }, "player name"},
		{"same names", func(c *Config) { c.Table.DealerName = "Player" }, "different names"},
		{"bad mode", func(c *Config) { c.UI.Mode = "gui" }, "invalid ui mode"},
		{"bad color", func(c *Config) { c.UI.Color = "rainbow" }, "invalid color mode"},
		{"bad level", func(c *Config) { c.UI.LogLevel = "loud" }, "invalid log level"},
		{"empty log file", func(c *Config) { c.UI.LogFile = "" }, "log file"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			s.Require().Error(err)
			s.Contains(err.Error(), tt.errMsg)
		})
	}
}
