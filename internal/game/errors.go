package game

import (
	"errors"
	"fmt"
)

var (
	ErrGameOver         = errors.New("game over")
	ErrNotBettingRound  = errors.New("not a betting round")
	ErrHandInProgress   = errors.New("hand in progress")
	ErrNoDecisionPolicy = errors.New("no decision policy for agent seat")
	ErrNoHumanInput     = errors.New("no human input for player seat")
)

// IllegalActionError is returned when an action breaks the betting rules.
// The engine state is unchanged.
type IllegalActionError struct {
	Seat   Seat
	Action Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %s by %s: %s", e.Action, e.Seat, e.Reason)
}

func illegal(seat Seat, a Action, format string, args ...any) error {
	return &IllegalActionError{Seat: seat, Action: a, Reason: fmt.Sprintf(format, args...)}
}

// InvariantViolationError means chip or card accounting broke. It is fatal
// for the game.
type InvariantViolationError struct {
	Check  string
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant %s violated: %s", e.Check, e.Detail)
}
