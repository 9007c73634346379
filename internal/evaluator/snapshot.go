package evaluator

import (
	"context"
	"fmt"

	"github.com/lox/headsup/poker"
)

// Snapshot is the estimator's view of one holding at one board size.
type Snapshot struct {
	HS   float64
	PPot float64
	NPot float64
	// EHS is zero before the flop; only HS is computed there.
	EHS float64

	BoardSize int
	// Stale is set by the owner once the board grows past BoardSize.
	Stale bool
}

func (s Snapshot) String() string {
	return fmt.Sprintf("HS=%.3f PPot=%.3f NPot=%.3f EHS=%.3f board=%d", s.HS, s.PPot, s.NPot, s.EHS, s.BoardSize)
}

// EffectiveHandStrength folds positive potential into a prior strength:
// prev + (1-prev)*ppot, clamped to [0, 1].
func EffectiveHandStrength(previousEHS, currentPPot float64) float64 {
	ehs := previousEHS + (1-previousEHS)*currentPPot
	return min(max(ehs, 0), 1)
}

// Evaluate computes a fresh snapshot. Each street starts from that street's
// HS, so EHS = HS + (1-HS)*PPot from the flop on.
func (e *Estimator) Evaluate(ctx context.Context, hole, board poker.Hand) (Snapshot, error) {
	p, err := e.HandPotential(ctx, hole, board)
	if err != nil {
		return Snapshot{}, err
	}

	s := Snapshot{
		HS:        p.HS,
		PPot:      p.PPot,
		NPot:      p.NPot,
		BoardSize: board.CountCards(),
	}
	if s.BoardSize >= 3 {
		s.EHS = EffectiveHandStrength(p.HS, p.PPot)
	}
	return s, nil
}
