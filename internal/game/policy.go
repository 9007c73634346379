package game

import (
	"context"
	"sync"

	"github.com/lox/headsup/internal/evaluator"
)

// DecisionPolicy chooses actions for the Agent seat.
type DecisionPolicy interface {
	Decide(ctx context.Context, view View, snap evaluator.Snapshot) (Action, error)
}

// HumanInput chooses actions for the Player seat.
type HumanInput interface {
	Prompt(ctx context.Context, view View, legal Legal) (Action, error)
}

// CallingPolicy checks when it can and calls otherwise.
type CallingPolicy struct{}

func (CallingPolicy) Decide(_ context.Context, view View, _ evaluator.Snapshot) (Action, error) {
	return view.Legal.Passive(), nil
}

func (CallingPolicy) Prompt(_ context.Context, _ View, legal Legal) (Action, error) {
	return legal.Passive(), nil
}

// ScriptedPolicy plays a fixed list of actions, then checks or calls.
// It serves either seat.
type ScriptedPolicy struct {
	mu      sync.Mutex
	actions []Action
}

func NewScriptedPolicy(actions ...Action) *ScriptedPolicy {
	return &ScriptedPolicy{actions: actions}
}

func (p *ScriptedPolicy) next(legal Legal) Action {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.actions) == 0 {
		return legal.Passive()
	}
	a := p.actions[0]
	p.actions = p.actions[1:]
	return a
}

// Remaining reports how many scripted actions are left.
func (p *ScriptedPolicy) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.actions)
}

func (p *ScriptedPolicy) Decide(_ context.Context, view View, _ evaluator.Snapshot) (Action, error) {
	return p.next(view.Legal), nil
}

func (p *ScriptedPolicy) Prompt(_ context.Context, _ View, legal Legal) (Action, error) {
	return p.next(legal), nil
}

// PolicyInput seats a DecisionPolicy in the Player seat, evaluating the
// player's own cards for it.
type PolicyInput struct {
	Policy    DecisionPolicy
	Estimator *evaluator.Estimator
}

func (p PolicyInput) Prompt(ctx context.Context, view View, _ Legal) (Action, error) {
	snap, err := p.Estimator.Evaluate(ctx, view.Hole, view.Board)
	if err != nil {
		return Action{}, err
	}
	return p.Policy.Decide(ctx, view, snap)
}
