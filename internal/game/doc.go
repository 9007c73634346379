// Package game implements heads-up Limit Texas Hold'em between a human seat
// (Player) and an automated seat (Agent).
//
// The main type is Engine, which owns the chip state, deck, hole cards and
// board of one game and advances it through the rounds of each hand.
//
// # Basic Usage
//
// Drive a whole hand through the decision interfaces:
//
//	e, err := game.New(game.DefaultConfig(),
//	    game.WithRNG(randutil.New(42)),
//	    game.WithPolicy(game.ThresholdPolicy{}),
//	    game.WithHumanInput(console))
//	res, err := e.PlayHand(ctx)
//
// Or step it by hand, which is how the tests work:
//
//	e.NewHand()
//	e.Apply(e.View().Turn, game.Action{Kind: game.Call})
//
// # Chip accounting
//
// playerChips + agentChips + pot is fixed for the length of a hand. Every
// action is followed by a check of that sum and of the card partition
// (deck, both hands and the board cover the 52 cards exactly once). A
// failure is returned as *InvariantViolationError and ends the game.
//
// # All-in
//
// When a seat commits its whole stack the pot is capped at twice that
// seat's starting stack and any excess goes back to the opponent. If the
// opponent still owes chips it must call or fold at once: the Player seat
// is offered only those two actions, and the Agent seat calls when its
// effective hand strength (hand strength before the flop) is above
// Config.AllInCallThreshold. The rest of the board is then dealt out.
//
// # Concurrency
//
// Engine methods are safe for concurrent use. The engine lock is never held
// while a DecisionPolicy or HumanInput is deciding.
package game
