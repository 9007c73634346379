package evaluator

import (
	"context"

	"github.com/lox/headsup/poker"
)

type strengthTally struct {
	wins, ties, total int
}

func (t *strengthTally) add(o strengthTally) {
	t.wins += o.wins
	t.ties += o.ties
	t.total += o.total
}

func (t strengthTally) value() float64 {
	if t.total == 0 {
		return 0
	}
	return (float64(t.wins) + float64(t.ties)/2) / float64(t.total)
}

// HandStrength returns the probability that hole beats a uniformly random
// opponent holding given the board: (wins + ties/2) / holdings.
//
// With three or more board cards every opponent holding is enumerated and
// both sides are ranked on the cards known now, with no look-ahead. With
// fewer than three there is no five-card hand to rank yet, so the figure is
// the showdown equity from a rollout seeded by the cards themselves.
func (e *Estimator) HandStrength(ctx context.Context, hole, board poker.Hand) (float64, error) {
	if err := validate(hole, board); err != nil {
		return 0, err
	}
	if board.CountCards() < 3 {
		return e.rollout(ctx, hole, board)
	}

	t, err := e.enumerateStrength(ctx, hole, board)
	if err != nil {
		return 0, err
	}
	return t.value(), nil
}

func (e *Estimator) enumerateStrength(ctx context.Context, hole, board poker.Hand) (strengthTally, error) {
	ours := poker.Evaluate(hole | board)
	opponents := combinations(poker.FullDeck&^(hole|board), 2)

	parts := make([]strengthTally, chunks)
	err := e.fanOut(ctx, len(opponents), func(_ context.Context, chunk, lo, hi int) error {
		var t strengthTally
		for _, opp := range opponents[lo:hi] {
			switch classify(ours, poker.Evaluate(opp|board)) {
			case ahead:
				t.wins++
			case tied:
				t.ties++
			}
			t.total++
		}
		parts[chunk] = t
		return nil
	})
	if err != nil {
		return strengthTally{}, err
	}

	var total strengthTally
	for _, p := range parts {
		total.add(p)
	}
	return total, nil
}
