package poker

import "math/bits"

// HandRank orders five-card hands. Lower values are stronger, so the nuts
// compare below everything else.
//
// Internally a rank is maxScore minus a score whose top four bits hold the
// HandType and whose low twenty bits hold up to five deciding card ranks,
// most significant first.
type HandRank uint32

const maxScore = 1<<24 - 1

// InvalidRank is returned for card sets that cannot form a five-card hand.
// It is weaker than every real rank.
const InvalidRank HandRank = maxScore + 1

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

var handTypeNames = [...]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
}

func (t HandType) String() string {
	if int(t) < len(handTypeNames) {
		return handTypeNames[t]
	}
	return "Unknown"
}

// Type returns the category of the hand (pair, flush, etc.).
func (hr HandRank) Type() HandType {
	if hr >= InvalidRank {
		return HighCard
	}
	return HandType((maxScore - uint32(hr)) >> 20)
}

func (hr HandRank) String() string {
	if hr >= InvalidRank {
		return "Invalid"
	}
	return hr.Type().String()
}

// Beats reports whether hr is strictly stronger than other.
func (hr HandRank) Beats(other HandRank) bool {
	return hr < other
}

// CompareHands returns 1 if a is the stronger rank, -1 if b is, and 0 for a tie.
func CompareHands(a, b HandRank) int {
	switch {
	case a < b:
		return 1
	case a > b:
		return -1
	}
	return 0
}

// Evaluate ranks the best five-card hand contained in h, which must hold
// between five and seven cards. Any other size returns InvalidRank.
func Evaluate(h Hand) HandRank {
	if n := h.CountCards(); n < 5 || n > 7 {
		return InvalidRank
	}

	// Each mask holds the ranks seen at least once, twice, three and four
	// times across the suits.
	var all, pairs, trips, quads, flush uint16
	for suit := range uint8(4) {
		m := h.GetSuitMask(suit)
		quads |= trips & m
		trips |= pairs & m
		pairs |= all & m
		all |= m
		// Seven cards hold at most one five-card suit.
		if bits.OnesCount16(m) >= 5 {
			flush = m
		}
	}

	if flush != 0 {
		if high, ok := straightHigh(flush); ok {
			return score(StraightFlush, high, 1)
		}
	}
	if quads != 0 {
		q := highest(quads)
		return score(FourOfAKind, q<<4|highest(all&^bit(q)), 2)
	}
	if trips != 0 {
		t := highest(trips)
		if rest := pairs &^ bit(t); rest != 0 {
			return score(FullHouse, t<<4|highest(rest), 2)
		}
	}
	if flush != 0 {
		return score(Flush, top(flush, 5), 5)
	}
	if high, ok := straightHigh(all); ok {
		return score(Straight, high, 1)
	}
	if trips != 0 {
		t := highest(trips)
		return score(ThreeOfAKind, t<<8|top(all&^bit(t), 2), 3)
	}
	if pairs != 0 {
		hi := highest(pairs)
		if rest := pairs &^ bit(hi); rest != 0 {
			lo := highest(rest)
			return score(TwoPair, hi<<8|lo<<4|top(all&^bit(hi)&^bit(lo), 1), 3)
		}
		return score(Pair, hi<<12|top(all&^bit(hi), 3), 4)
	}
	return score(HighCard, top(all, 5), 5)
}

// score packs n deciding ranks under t and flips the result so that stronger
// hands rank lower.
func score(t HandType, ranks uint32, n int) HandRank {
	v := uint32(t)<<20 | ranks<<(4*(5-n))
	return HandRank(maxScore - v)
}

func bit(rank uint32) uint16 {
	return 1 << rank
}

// highest returns the top rank set in mask, or 0 when it is empty.
func highest(mask uint16) uint32 {
	if mask == 0 {
		return 0
	}
	return uint32(bits.Len16(mask) - 1)
}

// top packs the n highest ranks of mask, four bits each.
func top(mask uint16, n int) uint32 {
	var v uint32
	for range n {
		r := highest(mask)
		v = v<<4 | r
		mask &^= bit(r)
	}
	return v
}

// straightHigh returns the top rank of the highest straight in mask. The
// wheel counts as five high.
func straightHigh(mask uint16) (uint32, bool) {
	// Shift up one so the ace can also sit below the deuce at bit 0.
	m := mask<<1 | mask>>12&1
	run := m & (m >> 1) & (m >> 2) & (m >> 3) & (m >> 4)
	if run == 0 {
		return 0, false
	}
	// run's top bit is the low end of the straight in shifted positions.
	return uint32(bits.Len16(run)-1) + 3, true
}
