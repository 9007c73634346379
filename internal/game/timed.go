package game

import (
	"context"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/headsup/internal/evaluator"
)

// TimedPolicy bounds how long Policy may take. A decision that is not made
// within Timeout becomes a Fold.
type TimedPolicy struct {
	Policy  DecisionPolicy
	Timeout time.Duration
	Clock   quartz.Clock
}

// NewTimedPolicy wraps p with the real clock.
func NewTimedPolicy(p DecisionPolicy, timeout time.Duration) *TimedPolicy {
	return &TimedPolicy{Policy: p, Timeout: timeout, Clock: quartz.NewReal()}
}

func (p *TimedPolicy) Decide(ctx context.Context, view View, snap evaluator.Snapshot) (Action, error) {
	if p.Timeout <= 0 {
		return p.Policy.Decide(ctx, view, snap)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	timeoutFired := make(chan struct{})
	timer := p.Clock.AfterFunc(p.Timeout, func() {
		close(timeoutFired)
	})
	defer timer.Stop()

	type decision struct {
		action Action
		err    error
	}
	done := make(chan decision, 1)
	go func() {
		a, err := p.Policy.Decide(ctx, view, snap)
		done <- decision{a, err}
	}()

	select {
	case d := <-done:
		return d.action, d.err
	case <-timeoutFired:
		return Action{Kind: Fold}, nil
	}
}
