package game

import (
	"context"

	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/poker"
)

const (
	defaultRaiseAbove = 0.80
	defaultCallAbove  = 0.50
)

// ThresholdPolicy bets or raises with strong hands, calls with medium ones
// and otherwise checks or folds. Strength is EHS from the flop on and HS
// before it, where premium hole cards always count as strong.
type ThresholdPolicy struct {
	// RaiseAbove defaults to 0.80.
	RaiseAbove float64
	// CallAbove defaults to 0.50.
	CallAbove float64
}

func (p ThresholdPolicy) Decide(_ context.Context, view View, snap evaluator.Snapshot) (Action, error) {
	raiseAbove, callAbove := p.RaiseAbove, p.CallAbove
	if raiseAbove == 0 {
		raiseAbove = defaultRaiseAbove
	}
	if callAbove == 0 {
		callAbove = defaultCallAbove
	}

	strength := snap.EHS
	if snap.BoardSize < 3 {
		strength = snap.HS
		if poker.CategorizeHand(view.Hole) == poker.CategoryPremium {
			strength = max(strength, raiseAbove)
		}
	}

	l := view.Legal
	if view.PendingAllIn {
		if strength >= raiseAbove {
			return Action{Kind: Call}, nil
		}
		return Action{Kind: Fold}, nil
	}

	switch {
	case strength >= raiseAbove:
		if a, ok := l.Aggressive(); ok {
			return a, nil
		}
		return l.Passive(), nil
	case strength >= callAbove:
		return l.Passive(), nil
	case l.Check:
		return Action{Kind: Check}, nil
	}
	return Action{Kind: Fold}, nil
}
