package game

import (
	"context"
	"fmt"
)

// Apply performs one action for seat. An *IllegalActionError leaves the
// state unchanged.
func (e *Engine) Apply(seat Seat, a Action) error {
	return e.ApplyContext(context.Background(), seat, a)
}

// ApplyContext is Apply with a context for the agent's all-in evaluation.
func (e *Engine) ApplyContext(ctx context.Context, seat Seat, a Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.apply(ctx, seat, a)
}

func (e *Engine) apply(ctx context.Context, seat Seat, a Action) error {
	if err := e.validate(seat, a); err != nil {
		return err
	}

	e.logger.Debug("action",
		"hand", e.handID,
		"round", e.round,
		"seat", seat,
		"action", a,
		"to_call", e.currentBet,
		"pot", e.pot)

	if e.pendingAllIn {
		if a.Kind == Fold {
			return e.fold(seat)
		}
		return e.answerAllIn(seat)
	}

	toCall := e.currentBet
	switch a.Kind {
	case Fold:
		return e.fold(seat)
	case Check:
		return e.checkOrCall(seat)
	case Call:
		if toCall > 0 && toCall >= e.chips[seat] {
			return e.shove(ctx, seat)
		}
		return e.checkOrCall(seat)
	case Bet, Raise:
		if toCall+a.Amount >= e.chips[seat] {
			return e.shove(ctx, seat)
		}
		return e.raise(seat, a.Amount)
	case AllIn:
		return e.shove(ctx, seat)
	}
	return illegal(seat, a, "unknown action")
}

func (e *Engine) validate(seat Seat, a Action) error {
	if e.round == End {
		return ErrGameOver
	}
	if !e.round.IsBetting() {
		return fmt.Errorf("%w: %s", ErrNotBettingRound, e.round)
	}
	if seat != e.turn {
		return illegal(seat, a, "%s is on turn", e.turn)
	}
	if e.allIn[seat] {
		return illegal(seat, a, "seat is all-in")
	}

	l := e.legal()
	if !l.Allows(a.Kind) {
		if e.pendingAllIn {
			return illegal(seat, a, "facing an all-in, only call or fold")
		}
		if (a.Kind == Bet || a.Kind == Raise || a.Kind == AllIn) && e.raiseCapped() {
			return illegal(seat, a, "raise cap of %d reached", e.cfg.RaiseCap)
		}
		return illegal(seat, a, "%s not allowed with %d to call", a.Kind, l.ToCall)
	}

	if a.Kind == Bet || a.Kind == Raise {
		if a.Amount <= 0 {
			return illegal(seat, a, "increment must be positive")
		}
		if a.Amount < l.MinRaise && l.ToCall+a.Amount < e.chips[seat] {
			return illegal(seat, a, "increment below minimum %d", l.MinRaise)
		}
	}
	return nil
}

// Legal returns the actions open to the seat on turn.
func (e *Engine) Legal() Legal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.legal()
}

func (e *Engine) legal() Legal {
	if !e.round.IsBetting() || e.allIn[e.turn] {
		return Legal{}
	}

	toCall := e.currentBet
	stack := e.chips[e.turn]
	l := Legal{
		Fold:     true,
		Call:     true,
		ToCall:   toCall,
		MaxRaise: max(stack-toCall, 0),
	}
	if e.pendingAllIn {
		return l
	}

	l.Check = toCall == 0
	l.MinRaise = e.bigBlind
	if toCall > e.bigBlind {
		l.MinRaise = toCall
	}

	canRaise := !e.raiseCapped() && stack > toCall
	l.Bet = canRaise && toCall == 0
	l.Raise = canRaise && toCall > 0
	// Shoving for no more than the call is always open.
	l.AllIn = stack > 0 && (canRaise || stack <= toCall)
	return l
}

func (e *Engine) raiseCapped() bool {
	return e.cfg.RaiseCap > 0 && e.raises >= e.cfg.RaiseCap
}

// checkOrCall pays what is owed. The second consecutive check or call
// closes the street.
func (e *Engine) checkOrCall(seat Seat) error {
	e.pay(seat, e.currentBet)
	e.currentBet = 0
	if e.prevBetOrCheck {
		return e.closeStreet()
	}
	e.prevBetOrCheck = true
	e.turn = seat.Opponent()
	return e.checkInvariants()
}

// raise pays the call plus n and leaves n owed by the opponent.
func (e *Engine) raise(seat Seat, n int) error {
	e.pay(seat, e.currentBet+n)
	e.currentBet = n
	e.prevBetOrCheck = true
	e.raises++
	e.turn = seat.Opponent()
	return e.checkInvariants()
}

// fold gives the pot to the opponent.
func (e *Engine) fold(seat Seat) error {
	winner := seat.Opponent()
	res := HandResult{
		HandID: e.handID,
		Winner: winner,
		Pot:    e.pot,
		Reason: "fold",
		Board:  e.board,
		Hands:  e.hands,
	}
	e.chips[winner] += e.pot
	e.pot = 0
	e.currentBet = 0
	e.pendingAllIn = false
	e.round = NewHand
	e.finish(res)
	return e.checkInvariants()
}

// Abort folds seat. It is the cancellation path for a hand in progress.
func (e *Engine) Abort(seat Seat) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.round.IsBetting() {
		return fmt.Errorf("%w: %s", ErrNotBettingRound, e.round)
	}
	e.logger.Warn("hand aborted", "hand", e.handID, "seat", seat)
	return e.fold(seat)
}
