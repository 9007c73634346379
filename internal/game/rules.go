package game

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the table rules for a game.
type Config struct {
	StartingChips int
	SmallBlind    int
	BigBlind      int
	// RaiseCap limits bets and raises per street. Zero means unlimited.
	RaiseCap int
	// AllInCallThreshold is the EHS (or pre-flop HS) above which the agent
	// calls an all-in.
	AllInCallThreshold float64
	// DecisionTimeout bounds a policy decision when wrapped in a
	// TimedPolicy. Zero means no bound.
	DecisionTimeout time.Duration
	// Seed for dealing. Zero seeds from the clock.
	Seed int64
}

// DefaultConfig returns the standard 1000 chip, 25/50 game.
func DefaultConfig() Config {
	return Config{
		StartingChips:      1000,
		SmallBlind:         25,
		BigBlind:           50,
		RaiseCap:           4,
		AllInCallThreshold: 0.90,
	}
}

// Validate checks the rules are playable.
func (c Config) Validate() error {
	var errs []error
	if c.StartingChips <= 0 {
		errs = append(errs, fmt.Errorf("starting chips must be positive, got %d", c.StartingChips))
	}
	if c.SmallBlind <= 0 {
		errs = append(errs, fmt.Errorf("small blind must be positive, got %d", c.SmallBlind))
	}
	if c.BigBlind < c.SmallBlind {
		errs = append(errs, fmt.Errorf("big blind %d below small blind %d", c.BigBlind, c.SmallBlind))
	}
	if c.RaiseCap < 0 {
		errs = append(errs, fmt.Errorf("raise cap must not be negative, got %d", c.RaiseCap))
	}
	if c.AllInCallThreshold < 0 || c.AllInCallThreshold > 1 {
		errs = append(errs, fmt.Errorf("all-in call threshold must be within [0, 1], got %v", c.AllInCallThreshold))
	}
	if c.DecisionTimeout < 0 {
		errs = append(errs, fmt.Errorf("decision timeout must not be negative, got %s", c.DecisionTimeout))
	}
	return errors.Join(errs...)
}
