package game

import "github.com/lox/headsup/poker"

// showdown ranks both seven-card hands and pays the pot. A split gives each
// seat half; the odd chip goes to the seat after the dealer.
func (e *Engine) showdown() error {
	e.round = Showdown

	ranks := [2]poker.HandRank{
		poker.Evaluate(e.hands[Player] | e.board),
		poker.Evaluate(e.hands[Agent] | e.board),
	}
	res := HandResult{
		HandID: e.handID,
		Pot:    e.pot,
		Reason: "showdown",
		Board:  e.board,
		Hands:  e.hands,
		Ranks:  ranks,
	}

	switch poker.CompareHands(ranks[Player], ranks[Agent]) {
	case 1:
		res.Winner = Player
		e.chips[Player] += e.pot
	case -1:
		res.Winner = Agent
		e.chips[Agent] += e.pot
	default:
		half := e.pot / 2
		odd := e.dealer.Opponent()
		e.chips[Player] += half
		e.chips[Agent] += half
		e.chips[odd] += e.pot - 2*half
		res.Winner = odd
		res.Split = true
	}
	e.pot = 0

	e.finish(res)
	return e.checkInvariants()
}

// finish records the result and ends the game if a stack is empty.
func (e *Engine) finish(res HandResult) {
	res.Dealer = e.dealer
	e.result = res
	if e.chips[Player] == 0 || e.chips[Agent] == 0 {
		e.round = End
	}

	e.logger.Info("hand finished",
		"hand", res.HandID,
		"winner", res.Winner,
		"split", res.Split,
		"pot", res.Pot,
		"reason", res.Reason,
		"board", res.Board,
		"player_chips", e.chips[Player],
		"agent_chips", e.chips[Agent])
}

// Result returns the outcome of the last finished hand.
func (e *Engine) Result() HandResult {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.result
}
