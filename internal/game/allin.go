package game

import (
	"context"
	"fmt"
)

// shove commits the seat's whole stack.
func (e *Engine) shove(ctx context.Context, seat Seat) error {
	amount := e.chips[seat]
	if amount > e.currentBet {
		e.raises++
	}
	e.pay(seat, amount)
	e.allIn[seat] = true
	e.currentBet = 0
	e.prevBetOrCheck = true

	e.logger.Debug("all-in", "hand", e.handID, "seat", seat, "amount", amount, "pot", e.pot)
	return e.resolveAllIn(ctx, seat)
}

// resolveAllIn settles the pot after shover has committed its stack. The pot
// is capped at twice the shover's starting stack. If the opponent still owes
// chips it must answer immediately.
func (e *Engine) resolveAllIn(ctx context.Context, shover Seat) error {
	opp := shover.Opponent()
	e.capPot(shover)
	if e.allIn[opp] {
		e.capPot(opp)
		return e.runout()
	}

	owed := 2*e.startChips[shover] - e.pot
	if owed <= 0 {
		return e.runout()
	}

	e.currentBet = owed
	e.turn = opp
	if opp == Player {
		e.pendingAllIn = true
		return e.checkInvariants()
	}
	return e.agentAnswer(ctx)
}

// capPot returns anything in the pot beyond twice seat's starting stack to
// the opponent. seat must have committed its whole stack.
func (e *Engine) capPot(seat Seat) {
	limit := 2 * e.startChips[seat]
	if e.pot <= limit {
		return
	}
	refund := e.pot - limit
	e.pot = limit
	e.chips[seat.Opponent()] += refund
	e.logger.Debug("pot capped", "hand", e.handID, "seat", seat, "refund", refund, "pot", e.pot)
}

// answerAllIn calls an all-in for seat and runs the board out.
func (e *Engine) answerAllIn(seat Seat) error {
	e.pendingAllIn = false
	e.pay(seat, min(e.currentBet, e.chips[seat]))
	e.currentBet = 0
	if e.chips[seat] == 0 {
		e.allIn[seat] = true
		e.capPot(seat)
	}
	return e.runout()
}

// agentAnswer applies the fixed all-in rule for the Agent seat: call when
// EHS is above the threshold, or, before EHS exists, when HS is.
func (e *Engine) agentAnswer(ctx context.Context) error {
	snap, err := e.agentSnapshot(ctx)
	if err != nil {
		if ferr := e.fold(Agent); ferr != nil {
			return ferr
		}
		return fmt.Errorf("answering all-in: %w", err)
	}

	threshold := e.cfg.AllInCallThreshold
	call := snap.EHS > threshold || (snap.EHS == 0 && snap.HS > threshold)

	e.logger.Debug("agent answers all-in",
		"hand", e.handID,
		"call", call,
		"hs", snap.HS,
		"ehs", snap.EHS,
		"owed", e.currentBet)

	if !call {
		return e.fold(Agent)
	}
	return e.answerAllIn(Agent)
}
