package game

import (
	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/poker"
)

// View is a read-only copy of the engine state. Hole holds only the cards
// of the seat the view was taken for.
type View struct {
	HandID string
	Round  Round
	Seat   Seat
	Hole   poker.Hand
	Board  poker.Hand

	Dealer Seat
	Turn   Seat

	Chips      [2]int
	StartChips [2]int
	Pot        int
	SmallBlind int
	BigBlind   int
	// CurrentBet is what the seat on turn owes.
	CurrentBet       int
	PrevBetOrCheck   bool
	AllIn            [2]bool
	PendingAllIn     bool
	RaisesThisStreet int
	HandsPlayed      int

	// Legal is set when Seat is on turn.
	Legal Legal
}

// PlayerChips is the Player seat's stack.
func (v View) PlayerChips() int { return v.Chips[Player] }

// AgentChips is the Agent seat's stack.
func (v View) AgentChips() int { return v.Chips[Agent] }

// View returns the public state, with no hole cards.
func (e *Engine) View() View {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v := e.viewFor(e.turn)
	v.Hole = 0
	return v
}

// ViewFor returns the state as seat sees it.
func (e *Engine) ViewFor(seat Seat) View {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.viewFor(seat)
}

func (e *Engine) viewFor(seat Seat) View {
	v := View{
		HandID:           e.handID,
		Round:            e.round,
		Seat:             seat,
		Hole:             e.hands[seat],
		Board:            e.board,
		Dealer:           e.dealer,
		Turn:             e.turn,
		Chips:            e.chips,
		StartChips:       e.startChips,
		Pot:              e.pot,
		SmallBlind:       e.smallBlind,
		BigBlind:         e.bigBlind,
		CurrentBet:       e.currentBet,
		PrevBetOrCheck:   e.prevBetOrCheck,
		AllIn:            e.allIn,
		PendingAllIn:     e.pendingAllIn,
		RaisesThisStreet: e.raises,
		HandsPlayed:      e.handsPlayed,
	}
	if seat == e.turn {
		v.Legal = e.legal()
	}
	return v
}

// Round returns the current round.
func (e *Engine) Round() Round {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.round
}

// Board returns the community cards.
func (e *Engine) Board() poker.Hand {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.board
}

// Hand returns seat's hole cards.
func (e *Engine) Hand(seat Seat) poker.Hand {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hands[seat]
}

// Snapshot returns the agent's last evaluation. It may be stale.
func (e *Engine) Snapshot() evaluator.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot
}

// Remaining returns the undealt cards.
func (e *Engine) Remaining() poker.Hand {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.deck == nil {
		return 0
	}
	return e.deck.Remaining()
}
