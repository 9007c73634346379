package evaluator

import (
	"context"

	"github.com/lox/headsup/poker"
)

// Potential is the two-step look-ahead over every opponent holding and
// every completion of the board to five cards.
type Potential struct {
	HS   float64
	PPot float64
	NPot float64
	// Outcomes[now][final] is the share of (holding, completion) pairs that
	// start ahead, tied or behind and end as a win, tie or loss. It sums
	// to 1 when PPot and NPot are defined.
	Outcomes [3][3]float64
}

type potentialTally struct {
	strength strengthTally
	hp       [3][3]int64
}

func (t *potentialTally) add(o potentialTally) {
	t.strength.add(o.strength)
	for i := range t.hp {
		for j := range t.hp[i] {
			t.hp[i][j] += o.hp[i][j]
		}
	}
}

// HandPotential computes HS, PPot and NPot for a flop or turn board.
//
// PPot is the chance a hand that is behind now ends up ahead by the river
// and NPot the chance a hand ahead now ends up behind, ties counting half
// on both sides. Before the flop, and on the river where no cards remain,
// both potentials are zero.
func (e *Estimator) HandPotential(ctx context.Context, hole, board poker.Hand) (Potential, error) {
	if err := validate(hole, board); err != nil {
		return Potential{}, err
	}

	switch n := board.CountCards(); {
	case n < 3:
		hs, err := e.rollout(ctx, hole, board)
		return Potential{HS: hs}, err
	case n == 5:
		t, err := e.enumerateStrength(ctx, hole, board)
		if err != nil {
			return Potential{}, err
		}
		p := Potential{HS: t.value()}
		if t.total > 0 {
			p.Outcomes[ahead][ahead] = float64(t.wins) / float64(t.total)
			p.Outcomes[tied][tied] = float64(t.ties) / float64(t.total)
			p.Outcomes[behind][behind] = float64(t.total-t.wins-t.ties) / float64(t.total)
		}
		return p, nil
	}

	t, err := e.enumeratePotential(ctx, hole, board)
	if err != nil {
		return Potential{}, err
	}
	return t.potential(), nil
}

func (e *Estimator) enumeratePotential(ctx context.Context, hole, board poker.Hand) (potentialTally, error) {
	unseen := poker.FullDeck &^ (hole | board)
	ours := poker.Evaluate(hole | board)
	opponents := combinations(unseen, 2)

	// Our final rank depends only on the completion, so rank each once.
	completions := combinations(unseen, 5-board.CountCards())
	oursFinal := make([]poker.HandRank, len(completions))
	for i, c := range completions {
		oursFinal[i] = poker.Evaluate(hole | board | c)
	}

	parts := make([]potentialTally, chunks)
	err := e.fanOut(ctx, len(opponents), func(ctx context.Context, chunk, lo, hi int) error {
		var t potentialTally
		for _, opp := range opponents[lo:hi] {
			if err := ctx.Err(); err != nil {
				return err
			}

			now := classify(ours, poker.Evaluate(opp|board))
			switch now {
			case ahead:
				t.strength.wins++
			case tied:
				t.strength.ties++
			}
			t.strength.total++

			for i, c := range completions {
				if c.Overlaps(opp) {
					continue
				}
				final := classify(oursFinal[i], poker.Evaluate(opp|board|c))
				t.hp[now][final]++
			}
		}
		parts[chunk] = t
		return nil
	})
	if err != nil {
		return potentialTally{}, err
	}

	var total potentialTally
	for _, p := range parts {
		total.add(p)
	}
	return total, nil
}

func (t potentialTally) potential() Potential {
	p := Potential{HS: t.strength.value()}

	var rows [3]float64
	var sum float64
	for i := range t.hp {
		for j := range t.hp[i] {
			rows[i] += float64(t.hp[i][j])
		}
		sum += rows[i]
	}
	if sum == 0 {
		return p
	}

	for i := range t.hp {
		for j := range t.hp[i] {
			p.Outcomes[i][j] = float64(t.hp[i][j]) / sum
		}
	}

	hp := func(now, final outcome) float64 { return float64(t.hp[now][final]) }

	if d := rows[behind] + rows[tied]/2; d > 0 {
		p.PPot = (hp(behind, ahead) + hp(behind, tied)/2 + hp(tied, ahead)/2) / d
	}
	if d := rows[ahead] + rows[tied]/2; d > 0 {
		p.NPot = (hp(ahead, behind) + hp(tied, behind)/2 + hp(ahead, tied)/2) / d
	}
	return p
}
