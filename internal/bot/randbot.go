package bot

import (
	"context"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/internal/game"
)

// RandBot picks uniformly among the legal actions. It never folds when
// checking is free.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: orDiscard(logger)}
}

func (r *RandBot) Decide(_ context.Context, view game.View, _ evaluator.Snapshot) (game.Action, error) {
	legal := view.Legal
	var options []game.Action
	if legal.Check {
		options = append(options, game.Action{Kind: game.Check})
	} else {
		if legal.Fold {
			options = append(options, game.Action{Kind: game.Fold})
		}
		if legal.Call {
			options = append(options, game.Action{Kind: game.Call})
		}
	}
	if a, ok := legal.Aggressive(); ok {
		options = append(options, a)
	}
	if len(options) == 0 {
		return legal.Passive(), nil
	}

	a := options[r.rng.IntN(len(options))]
	r.logger.Debug("rand-bot", "action", a, "options", len(options))
	return a, nil
}

func (r *RandBot) Prompt(ctx context.Context, view game.View, legal game.Legal) (game.Action, error) {
	return prompt(ctx, r, view, legal)
}
