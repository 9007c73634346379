package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/lox/headsup/internal/evaluator"
)

// PlayHand deals a hand if none is in progress and drives it to the end,
// asking the HumanInput for the Player seat and the DecisionPolicy for the
// Agent seat.
//
// An illegal human action is re-prompted. An illegal policy action is
// replaced by Check when that is free and Fold otherwise. If ctx ends or an
// input fails, the seat on turn folds and the cause is returned alongside
// the result.
func (e *Engine) PlayHand(ctx context.Context) (HandResult, error) {
	e.mu.Lock()
	if e.round == End {
		e.mu.Unlock()
		return HandResult{}, ErrGameOver
	}
	if e.round.canStartHand() {
		if err := e.newHand(ctx); err != nil {
			e.mu.Unlock()
			return HandResult{}, err
		}
	}
	e.mu.Unlock()

	for {
		e.mu.Lock()
		if !e.round.IsBetting() {
			res := e.result
			e.mu.Unlock()
			return res, nil
		}
		seat := e.turn
		var snap evaluator.Snapshot
		var err error
		if seat == Agent {
			snap, err = e.agentSnapshot(ctx)
		}
		view := e.viewFor(seat)
		e.mu.Unlock()

		if err == nil {
			err = ctx.Err()
		}
		if err == nil {
			if seat == Agent {
				err = e.agentTurn(ctx, view, snap)
			} else {
				err = e.playerTurn(ctx, view)
			}
		}
		if err == nil {
			continue
		}

		var inv *InvariantViolationError
		if errors.As(err, &inv) || errors.Is(err, ErrGameOver) {
			return e.Result(), err
		}
		return e.abort(seat, err)
	}
}

func (e *Engine) agentTurn(ctx context.Context, view View, snap evaluator.Snapshot) error {
	if e.policy == nil {
		return ErrNoDecisionPolicy
	}
	a, err := e.policy.Decide(ctx, view, snap)
	if err != nil {
		return fmt.Errorf("agent decision: %w", err)
	}

	err = e.ApplyContext(ctx, Agent, a)
	var ill *IllegalActionError
	if !errors.As(err, &ill) {
		return err
	}

	fallback := Action{Kind: Fold}
	if view.Legal.Check {
		fallback = Action{Kind: Check}
	}
	e.logger.Warn("replacing illegal policy action",
		"hand", view.HandID,
		"action", a,
		"reason", ill.Reason,
		"fallback", fallback)
	return e.ApplyContext(ctx, Agent, fallback)
}

func (e *Engine) playerTurn(ctx context.Context, view View) error {
	if e.human == nil {
		return ErrNoHumanInput
	}
	for {
		a, err := e.human.Prompt(ctx, view, view.Legal)
		if err != nil {
			return fmt.Errorf("player input: %w", err)
		}

		err = e.ApplyContext(ctx, Player, a)
		var ill *IllegalActionError
		if !errors.As(err, &ill) {
			return err
		}
		e.logger.Debug("re-prompting player", "hand", view.HandID, "action", a, "reason", ill.Reason)
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// abort folds seat after cause stopped the hand.
func (e *Engine) abort(seat Seat, cause error) (HandResult, error) {
	if err := e.Abort(seat); err != nil && !errors.Is(err, ErrNotBettingRound) {
		return e.Result(), errors.Join(cause, err)
	}
	return e.Result(), cause
}
