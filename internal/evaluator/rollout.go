package evaluator

import (
	"context"

	"github.com/lox/headsup/internal/randutil"
	"github.com/lox/headsup/poker"
)

// rollout estimates showdown equity against a random holding by sampling
// opponent cards and board completions. Each chunk draws from its own
// source derived from the input cards, so the figure is reproducible.
func (e *Estimator) rollout(ctx context.Context, hole, board poker.Hand) (float64, error) {
	seeds := randutil.Split(randutil.New(randutil.SeedFrom(uint64(hole), uint64(board))), chunks)
	missing := 5 - board.CountCards()
	known := hole | board

	parts := make([]strengthTally, chunks)
	err := e.fanOut(ctx, e.preflopSamples, func(ctx context.Context, chunk, lo, hi int) error {
		rng := randutil.New(seeds[chunk])
		var t strengthTally
		for i := lo; i < hi; i++ {
			if i&1023 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}

			d := poker.NewDeck(rng)
			if err := d.Remove(known); err != nil {
				return err
			}
			opp, err := d.DrawN(2)
			if err != nil {
				return err
			}
			rest, err := d.DrawN(missing)
			if err != nil {
				return err
			}

			final := board | rest
			switch classify(poker.Evaluate(hole|final), poker.Evaluate(opp|final)) {
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
		return 0, err
	}

	var total strengthTally
	for _, p := range parts {
		total.add(p)
	}
	return total.value(), nil
}
