package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	rules, err := cfg.Rules()
	require.NoError(t, err)

	assert.Equal(t, 1000, rules.StartingChips)
	assert.Equal(t, 25, rules.SmallBlind)
	assert.Equal(t, 50, rules.BigBlind)
	assert.Equal(t, 4, rules.RaiseCap)
	assert.InDelta(t, 0.90, rules.AllInCallThreshold, 1e-9)
	assert.Zero(t, rules.DecisionTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadHCL(t *testing.T) {
	path := writeFile(t, "headsup.hcl", `
game {
  starting_chips        = 500
  small_blind           = 10
  big_blind             = 20
  raise_cap             = 0
  all_in_call_threshold = 0.75
  decision_timeout      = "2s"
  seed                  = 42
  preflop_samples       = 5000
}

log {
  level      = "debug"
  timestamps = true
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.Equal(t, 500, rules.StartingChips)
	assert.Equal(t, 10, rules.SmallBlind)
	assert.Equal(t, 20, rules.BigBlind)
	assert.Equal(t, 0, rules.RaiseCap, "explicit zero means unlimited")
	assert.InDelta(t, 0.75, rules.AllInCallThreshold, 1e-9)
	assert.Equal(t, 2*time.Second, rules.DecisionTimeout)
	assert.Equal(t, int64(42), rules.Seed)
	assert.Equal(t, 5000, cfg.EstimatorOptions().PreflopSamples)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)
	assert.True(t, cfg.Log.Timestamps)
}

func TestLoadPartialHCLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "headsup.hcl", `
game {
  big_blind = 100
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Game.BigBlind)
	assert.Equal(t, 25, cfg.Game.SmallBlind)
	assert.Equal(t, 4, *cfg.Game.RaiseCap)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"Syntax", `game {`, "failed to parse"},
		{"Unknown attribute", "game {\n  jokers = 2\n}\n", "failed to decode"},
		{"Blinds inverted", "game {\n  small_blind = 50\n  big_blind = 25\n}\n", "big blind"},
		{"Bad timeout", "game {\n  decision_timeout = \"soon\"\n}\n", "decision timeout"},
		{"Bad log level", "log {\n  level = \"loud\"\n}\n", "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "bad.hcl", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("HEADSUP_GAME_STARTING_CHIPS", "2500")
	t.Setenv("HEADSUP_GAME_RAISE_CAP", "3")
	t.Setenv("HEADSUP_LOG_LEVEL", "warn")

	path := writeFile(t, "headsup.hcl", "game {\n  starting_chips = 500\n}\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2500, cfg.Game.StartingChips)
	assert.Equal(t, 3, *cfg.Game.RaiseCap)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadDotEnv(t *testing.T) {
	const key = "HEADSUP_DOTENV_TEST_SEED"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := writeFile(t, ".env", key+"=99\n")
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "99", os.Getenv(key))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
