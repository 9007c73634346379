// Package statistics accumulates per-hand results of a heads-up match from
// the agent's point of view, in big blinds.
package statistics

import (
	"fmt"
	"math"
	"slices"
)

// Position is the agent's seat relative to the button.
type Position int

const (
	// Button is the dealer, who posts the small blind.
	Button Position = iota
	BigBlind
)

func (p Position) String() string {
	if p == Button {
		return "button"
	}
	return "big blind"
}

// bigPotBB marks a pot as large. Capped limit pots rarely exceed it.
const bigPotBB = 10

// HandResult is the outcome of a single hand for the agent.
type HandResult struct {
	HandID         string
	NetBB          float64
	Position       Position
	WentToShowdown bool
	PotBB          float64
	// BoardCards is how many board cards were dealt: 0, 3, 4 or 5.
	BoardCards int
}

// PositionStats tracks results from one seat.
type PositionStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

// Statistics tracks a simulation.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
	Values []float64

	ShowdownWins    int
	NonShowdownWins int
	Splits          int
	// ShowdownBB and NonShowdownBB include losses.
	ShowdownBB    float64
	NonShowdownBB float64
	AllBB         float64

	PositionResults [2]PositionStats
	// StreetEnds counts hands by board size when they ended: preflop, flop,
	// turn, river.
	StreetEnds [4]int

	MaxPotBB  float64
	BigPots   int
	BigPotsBB float64
}

// Mean returns the mean result in big blinds per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add records a hand.
func (s *Statistics) Add(result HandResult) {
	netBB := result.NetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)

	switch {
	case netBB > 0 && result.WentToShowdown:
		s.ShowdownWins++
	case netBB > 0:
		s.NonShowdownWins++
	case netBB == 0 && result.WentToShowdown:
		s.Splits++
	}

	if result.WentToShowdown {
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB

	if result.Position == Button || result.Position == BigBlind {
		ps := &s.PositionResults[result.Position]
		ps.Hands++
		ps.SumBB += netBB
		ps.SumBB2 += netBB * netBB
	}

	switch result.BoardCards {
	case 0:
		s.StreetEnds[0]++
	case 3:
		s.StreetEnds[1]++
	case 4:
		s.StreetEnds[2]++
	case 5:
		s.StreetEnds[3]++
	}

	s.MaxPotBB = max(s.MaxPotBB, result.PotBB)
	if result.PotBB >= bigPotBB {
		s.BigPots++
		s.BigPotsBB += netBB
	}
}

func (s *Statistics) sorted() []float64 {
	values := slices.Clone(s.Values)
	slices.Sort(values)
	return values
}

// Median returns the median result.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the interpolated value at p, between 0 and 1.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) PositionMean(p Position) float64 {
	if p != Button && p != BigBlind {
		return 0
	}
	ps := s.PositionResults[p]
	if ps.Hands == 0 {
		return 0
	}
	return ps.SumBB / float64(ps.Hands)
}

// IsLedgerBalanced reports whether the showdown and non-showdown buckets add
// up to the total.
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate checks the accumulated counts agree with each other.
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllBB=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values length (%d) does not match hands count (%d)", len(s.Values), s.Hands)
	}
	if wins := s.ShowdownWins + s.NonShowdownWins + s.Splits; wins > s.Hands {
		return fmt.Errorf("wins and splits (%d) exceed total hands (%d)", wins, s.Hands)
	}
	if seated := s.PositionResults[Button].Hands + s.PositionResults[BigBlind].Hands; seated != s.Hands {
		return fmt.Errorf("position hands total (%d) does not match total hands (%d)", seated, s.Hands)
	}
	ended := 0
	for _, n := range s.StreetEnds {
		ended += n
	}
	if ended != s.Hands {
		return fmt.Errorf("street totals (%d) do not match total hands (%d)", ended, s.Hands)
	}
	return nil
}
