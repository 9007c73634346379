package bot

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/internal/game"
	"github.com/lox/headsup/poker"
)

// ChartBot plays a fixed pre-flop chart by hole card category and checks or
// calls after the flop.
type ChartBot struct {
	logger *log.Logger
}

func NewChartBot(logger *log.Logger) *ChartBot {
	return &ChartBot{logger: orDiscard(logger)}
}

func (c *ChartBot) Decide(_ context.Context, view game.View, _ evaluator.Snapshot) (game.Action, error) {
	legal := view.Legal
	if view.Board != 0 {
		return legal.Passive(), nil
	}

	category := poker.CategorizeHand(view.Hole)
	switch category {
	case poker.CategoryPremium, poker.CategoryStrong:
		if a, ok := legal.Aggressive(); ok {
			c.logger.Debug("chart-bot raising", "category", category)
			return a, nil
		}
		return legal.Passive(), nil
	case poker.CategoryMedium:
		return legal.Passive(), nil
	}

	// Weak hands complete the small blind but fold to a raise.
	if legal.Check || (legal.Call && legal.ToCall <= view.SmallBlind && !view.PendingAllIn) {
		return legal.Passive(), nil
	}
	c.logger.Debug("chart-bot folding", "category", category, "to_call", legal.ToCall)
	return checkOrFold(legal), nil
}

func (c *ChartBot) Prompt(ctx context.Context, view game.View, legal game.Legal) (game.Action, error) {
	return prompt(ctx, c, view, legal)
}
