// Package bot provides simple scripted opponents. Each bot is both a
// game.DecisionPolicy and a game.HumanInput, so it can sit in either seat.
// None of them need the estimator; when seated as the player they are
// handed an empty snapshot.
package bot

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/internal/game"
)

type decider interface {
	Decide(ctx context.Context, view game.View, snap evaluator.Snapshot) (game.Action, error)
}

// prompt seats a decider in the player seat.
func prompt(ctx context.Context, d decider, view game.View, legal game.Legal) (game.Action, error) {
	view.Legal = legal
	return d.Decide(ctx, view, evaluator.Snapshot{Stale: true})
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}

// checkOrFold checks when free and folds otherwise.
func checkOrFold(legal game.Legal) game.Action {
	if legal.Check {
		return game.Action{Kind: game.Check}
	}
	return game.Action{Kind: game.Fold}
}
