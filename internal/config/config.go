// Package config loads game settings from an HCL file, a .env file and
// HEADSUP_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/internal/game"
)

// EnvPrefix prefixes every environment override, e.g. HEADSUP_GAME_BIG_BLIND.
const EnvPrefix = "headsup"

// Config is the complete configuration.
type Config struct {
	Game *GameSettings `hcl:"game,block"`
	Log  *LogSettings  `hcl:"log,block"`
}

// GameSettings holds the table rules and estimator tuning.
type GameSettings struct {
	StartingChips      int     `hcl:"starting_chips,optional" envconfig:"starting_chips"`
	SmallBlind         int     `hcl:"small_blind,optional" envconfig:"small_blind"`
	BigBlind           int     `hcl:"big_blind,optional" envconfig:"big_blind"`
	RaiseCap           *int    `hcl:"raise_cap,optional" envconfig:"raise_cap"`
	AllInCallThreshold float64 `hcl:"all_in_call_threshold,optional" envconfig:"all_in_call_threshold"`
	DecisionTimeout    string  `hcl:"decision_timeout,optional" envconfig:"decision_timeout"`
	Seed               int64   `hcl:"seed,optional" envconfig:"seed"`
	PreflopSamples     int     `hcl:"preflop_samples,optional" envconfig:"preflop_samples"`
	Workers            int     `hcl:"workers,optional" envconfig:"workers"`
}

// LogSettings controls logging.
type LogSettings struct {
	Level      string `hcl:"level,optional" envconfig:"level"`
	Timestamps bool   `hcl:"timestamps,optional" envconfig:"timestamps"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads filename if it exists, applies defaults and then environment
// overrides. A missing file is not an error.
func Load(filename string) (*Config, error) {
	var cfg Config

	if filename != "" {
		_, err := os.Stat(filename)
		switch {
		case err == nil:
			parser := hclparse.NewParser()
			file, diags := parser.ParseHCLFile(filename)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
			}
			if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg.applyDefaults()

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding ones already set. Missing files are skipped.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, f := range filenames {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	rules := game.DefaultConfig()

	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	g := c.Game
	if g.StartingChips == 0 {
		g.StartingChips = rules.StartingChips
	}
	if g.SmallBlind == 0 {
		g.SmallBlind = rules.SmallBlind
	}
	if g.BigBlind == 0 {
		g.BigBlind = rules.BigBlind
	}
	if g.RaiseCap == nil {
		raiseCap := rules.RaiseCap
		g.RaiseCap = &raiseCap
	}
	if g.AllInCallThreshold == 0 {
		g.AllInCallThreshold = rules.AllInCallThreshold
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks the rules and log level.
func (c *Config) Validate() error {
	rules, err := c.Rules()
	if err != nil {
		return err
	}
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("invalid game settings: %w", err)
	}
	if c.Game.PreflopSamples < 0 {
		return fmt.Errorf("preflop samples must not be negative, got %d", c.Game.PreflopSamples)
	}
	if c.Game.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Game.Workers)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// Rules converts the game block into engine rules.
func (c *Config) Rules() (game.Config, error) {
	g := c.Game
	rules := game.Config{
		StartingChips:      g.StartingChips,
		SmallBlind:         g.SmallBlind,
		BigBlind:           g.BigBlind,
		AllInCallThreshold: g.AllInCallThreshold,
		Seed:               g.Seed,
	}
	if g.RaiseCap != nil {
		rules.RaiseCap = *g.RaiseCap
	}
	if g.DecisionTimeout != "" {
		d, err := time.ParseDuration(g.DecisionTimeout)
		if err != nil {
			return game.Config{}, fmt.Errorf("invalid decision timeout %q: %w", g.DecisionTimeout, err)
		}
		rules.DecisionTimeout = d
	}
	return rules, nil
}

// EstimatorOptions returns the estimator tuning.
func (c *Config) EstimatorOptions() evaluator.Options {
	return evaluator.Options{
		Workers:        c.Game.Workers,
		PreflopSamples: c.Game.PreflopSamples,
	}
}

// LogLevel parses the configured level.
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
