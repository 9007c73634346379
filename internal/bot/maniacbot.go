package bot

import (
	"context"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/internal/game"
)

// ManiacBot bets or raises most of the time, calls often and rarely folds.
type ManiacBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

func NewManiacBot(rng *rand.Rand, logger *log.Logger) *ManiacBot {
	return &ManiacBot{rng: rng, logger: orDiscard(logger)}
}

func (m *ManiacBot) Decide(_ context.Context, view game.View, _ evaluator.Snapshot) (game.Action, error) {
	legal := view.Legal
	roll := m.rng.Float64()

	if legal.Check {
		if a, ok := legal.Aggressive(); ok && roll < 0.85 {
			m.logger.Debug("maniac betting", "action", a)
			return a, nil
		}
		return game.Action{Kind: game.Check}, nil
	}

	// Facing a bet: raise 40%, call 40%, fold 20%.
	if a, ok := legal.Aggressive(); ok && roll < 0.4 {
		m.logger.Debug("maniac raising", "action", a)
		return a, nil
	}
	if legal.Call && roll < 0.8 {
		return game.Action{Kind: game.Call}, nil
	}
	return checkOrFold(legal), nil
}

func (m *ManiacBot) Prompt(ctx context.Context, view game.View, legal game.Legal) (game.Action, error) {
	return prompt(ctx, m, view, legal)
}
