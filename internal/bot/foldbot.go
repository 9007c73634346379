package bot

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/internal/game"
)

// FoldBot checks when it can and folds otherwise.
type FoldBot struct {
	logger *log.Logger
}

func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: orDiscard(logger)}
}

func (f *FoldBot) Decide(_ context.Context, view game.View, _ evaluator.Snapshot) (game.Action, error) {
	a := checkOrFold(view.Legal)
	f.logger.Debug("fold-bot", "action", a)
	return a, nil
}

func (f *FoldBot) Prompt(ctx context.Context, view game.View, legal game.Legal) (game.Action, error) {
	return prompt(ctx, f, view, legal)
}
