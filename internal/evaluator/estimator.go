// Package evaluator estimates how strong a heads-up holding is against an
// unknown opponent: hand strength (HS), positive and negative potential
// (PPot, NPot) and effective hand strength (EHS).
//
// Every estimate is a pure function of the hole cards and board. Inputs are
// poker.Hand bitsets passed by value, so callers may run estimates
// concurrently while they keep mutating their own copies.
package evaluator

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/headsup/poker"
)

var (
	ErrInvalidHole  = errors.New("hole must contain exactly two cards")
	ErrInvalidBoard = errors.New("board must contain at most five cards")
	ErrOverlap      = errors.New("hole and board share a card")
)

const (
	defaultPreflopSamples = 30000
	maxWorkers            = 8

	// chunks is the fixed unit of parallel work. Results do not depend on
	// the worker count, only on the inputs.
	chunks = 32
)

// Options tunes an Estimator. Zero values select defaults.
type Options struct {
	// Workers bounds the goroutines used per estimate. Default min(NumCPU, 8).
	Workers int
	// PreflopSamples is the rollout size used while fewer than three board
	// cards are known. Default 30000.
	PreflopSamples int
}

// Estimator computes hand strength figures. It holds no per-call state and
// is safe for concurrent use.
type Estimator struct {
	workers        int
	preflopSamples int
}

// New creates an Estimator.
func New(opts Options) *Estimator {
	e := &Estimator{
		workers:        opts.Workers,
		preflopSamples: opts.PreflopSamples,
	}
	if e.workers <= 0 {
		e.workers = min(runtime.NumCPU(), maxWorkers)
	}
	if e.preflopSamples <= 0 {
		e.preflopSamples = defaultPreflopSamples
	}
	return e
}

func validate(hole, board poker.Hand) error {
	if hole.CountCards() != 2 || hole&^poker.FullDeck != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidHole, hole.CountCards())
	}
	if board.CountCards() > 5 || board&^poker.FullDeck != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBoard, board.CountCards())
	}
	if hole.Overlaps(board) {
		return fmt.Errorf("%w: %s", ErrOverlap, hole&board)
	}
	return nil
}

// combinations lists every k-card subset of cards, for k of 1 or 2.
func combinations(cards poker.Hand, k int) []poker.Hand {
	list := cards.Cards()
	switch k {
	case 1:
		out := make([]poker.Hand, len(list))
		for i, c := range list {
			out[i] = poker.Hand(c)
		}
		return out
	case 2:
		out := make([]poker.Hand, 0, len(list)*(len(list)-1)/2)
		for i := range list {
			for j := i + 1; j < len(list); j++ {
				out = append(out, poker.NewHand(list[i], list[j]))
			}
		}
		return out
	}
	return nil
}

// fanOut splits [0, n) into fixed chunks and runs fn over them on at most
// e.workers goroutines. fn receives its chunk index so results can be
// written without locking.
func (e *Estimator) fanOut(ctx context.Context, n int, fn func(ctx context.Context, chunk, lo, hi int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	size := (n + chunks - 1) / chunks
	for c := range chunks {
		lo := c * size
		hi := min(lo+size, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, c, lo, hi)
		})
	}
	return g.Wait()
}

// outcome classifies ours against theirs.
type outcome int

const (
	ahead outcome = iota
	tied
	behind
)

func classify(ours, theirs poker.HandRank) outcome {
	switch poker.CompareHands(ours, theirs) {
	case 1:
		return ahead
	case 0:
		return tied
	}
	return behind
}
