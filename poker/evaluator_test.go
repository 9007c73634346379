package poker

import (
	"testing"

	chehsunliu "github.com/chehsunliu/poker"
	paulhankin "github.com/paulhankin/poker"

	"github.com/lox/headsup/internal/randutil"
)

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards string
		want  HandType
	}{
		{"AsKsQsJsTs", StraightFlush},
		{"As2s3s4s5s9h9d", StraightFlush},
		{"9c9d9h9s2d", FourOfAKind},
		{"KcKdKh2s2d", FullHouse},
		{"KcKdKh2s2d2c7h", FullHouse},
		{"Ah9h7h4h2h", Flush},
		{"9c8d7h6s5c", Straight},
		{"Ac2d3h4s5c", Straight},
		{"7c7d7h2s9d", ThreeOfAKind},
		{"7c7d2h2s9d", TwoPair},
		{"7c7d2h2s9d9h", TwoPair},
		{"7c7d2h4s9d", Pair},
		{"Ac7d2h4s9d", HighCard},
		{"Ac7d2h4s9dJc", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			t.Parallel()
			got := Evaluate(MustParseCards(tt.cards)).Type()
			if got != tt.want {
				t.Errorf("Evaluate(%s) = %v, want %v", tt.cards, got, tt.want)
			}
		})
	}
}

func TestEvaluateRejectsWrongSize(t *testing.T) {
	t.Parallel()
	if Evaluate(MustParseCards("AsKs")) != InvalidRank {
		t.Error("two cards should not form a hand")
	}
	if Evaluate(MustParseCards("AsKsQsJsTs9s8s7s")) != InvalidRank {
		t.Error("eight cards should not be evaluated")
	}
}

func TestCompareHandsOrdering(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"higher pair wins", "AcAd2h5s9d", "KcKd2h5s9d", 1},
		{"kicker decides", "AcAdKh5s9d", "AhAsQh5c9c", 1},
		{"wheel loses to six high straight", "Ac2d3h4s5c", "2c3d4h5s6c", -1},
		{"six high beats the wheel in seven cards", "Ac2d3h4s5c6dKh", "Ac2d3h4s5cKdQh", 1},
		{"second trips fill the house", "KcKdKh2s2d2c7h", "KcKdKh2s2dQc7h", 0},
		{"identical ranks tie", "AcKdQhJs9c", "AdKhQsJc9d", 0},
		{"flush beats straight", "Ah9h7h4h2h", "9c8d7h6s5c", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CompareHands(Evaluate(MustParseCards(tt.a)), Evaluate(MustParseCards(tt.b)))
			if got != tt.want {
				t.Errorf("CompareHands(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// Random seven-card pairs must order the same way as two independent evaluators.
func TestEvaluateMatchesReferenceEvaluators(t *testing.T) {
	t.Parallel()
	rng := randutil.New(11)

	for i := range 5000 {
		d := NewDeck(rng)
		board, _ := d.DrawN(5)
		a, _ := d.DrawN(2)
		b, _ := d.DrawN(2)

		got := CompareHands(Evaluate(a|board), Evaluate(b|board))

		ph := sign(int(paulhankinScore(a|board)) - int(paulhankinScore(b|board)))
		if got != ph {
			t.Fatalf("hand %d: %s vs %s on %s: got %d, paulhankin %d", i, a, b, board, got, ph)
		}

		ch := sign(int(chehsunliuScore(b|board)) - int(chehsunliuScore(a|board)))
		if got != ch {
			t.Fatalf("hand %d: %s vs %s on %s: got %d, chehsunliu %d", i, a, b, board, got, ch)
		}
	}
}

// paulhankinScore is higher for stronger hands; aces are rank 1.
func paulhankinScore(h Hand) int16 {
	suits := [...]paulhankin.Suit{paulhankin.Club, paulhankin.Diamond, paulhankin.Heart, paulhankin.Spade}
	var seven [7]paulhankin.Card
	for i, c := range h.Cards() {
		r := paulhankin.Rank(c.Rank() + 2)
		if c.Rank() == Ace {
			r = paulhankin.Rank(1)
		}
		pc, err := paulhankin.MakeCard(suits[c.Suit()], r)
		if err != nil {
			panic(err)
		}
		seven[i] = pc
	}
	return paulhankin.Eval7(&seven)
}

// chehsunliuScore is lower for stronger hands.
func chehsunliuScore(h Hand) int32 {
	cards := make([]chehsunliu.Card, 0, 7)
	for _, c := range h.Cards() {
		cards = append(cards, chehsunliu.NewCard(c.String()))
	}
	return chehsunliu.Evaluate(cards)
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func BenchmarkEvaluate(b *testing.B) {
	h := MustParseCards("AsKsQd7c2h9d3s")
	for b.Loop() {
		_ = Evaluate(h)
	}
}
