package game

import (
	"fmt"

	"github.com/lox/headsup/poker"
)

// checkInvariants runs after every state change. A violation ends the game.
func (e *Engine) checkInvariants() error {
	if v := e.verify(); v != nil {
		e.round = End
		e.logger.Error("invariant violated", "hand", e.handID, "check", v.Check, "detail", v.Detail)
		return v
	}
	return nil
}

func (e *Engine) verify() *InvariantViolationError {
	total := e.startChips[Player] + e.startChips[Agent]
	if got := e.chips[Player] + e.chips[Agent] + e.pot; got != total {
		return &InvariantViolationError{
			Check:  "chip-conservation",
			Detail: fmt.Sprintf("player %d + agent %d + pot %d = %d, want %d", e.chips[Player], e.chips[Agent], e.pot, got, total),
		}
	}
	for _, s := range []Seat{Player, Agent} {
		if e.chips[s] < 0 {
			return &InvariantViolationError{Check: "chip-conservation", Detail: fmt.Sprintf("%s stack is %d", s, e.chips[s])}
		}
	}
	if e.pot < 0 {
		return &InvariantViolationError{Check: "chip-conservation", Detail: fmt.Sprintf("pot is %d", e.pot)}
	}

	if e.deck == nil {
		return nil
	}
	parts := []poker.Hand{e.deck.Remaining(), e.hands[Player], e.hands[Agent], e.board}
	var union poker.Hand
	count := 0
	for _, p := range parts {
		union |= p
		count += p.CountCards()
	}
	if union != poker.FullDeck || count != 52 {
		return &InvariantViolationError{
			Check:  "card-partition",
			Detail: fmt.Sprintf("deck %d, hands %s / %s, board %s cover %d cards", e.deck.Len(), e.hands[Player], e.hands[Agent], e.board, count),
		}
	}
	return nil
}
