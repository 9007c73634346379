package game

import (
	"context"
	"testing"

	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/poker"
)

func TestThresholdPolicy(t *testing.T) {
	t.Parallel()
	facingBet := Legal{Fold: true, Call: true, Raise: true, AllIn: true, ToCall: 50, MinRaise: 50, MaxRaise: 900}
	free := Legal{Fold: true, Check: true, Call: true, Bet: true, AllIn: true, MinRaise: 50, MaxRaise: 950}
	pending := Legal{Fold: true, Call: true, ToCall: 900}

	tests := []struct {
		name  string
		hole  string
		legal Legal
		snap  evaluator.Snapshot
		want  Action
	}{
		{"Premium raises preflop", "AsAh", facingBet, evaluator.Snapshot{HS: 0.6}, Action{Kind: Raise, Amount: 50}},
		{"Strong HS raises preflop", "9s8s", facingBet, evaluator.Snapshot{HS: 0.85}, Action{Kind: Raise, Amount: 50}},
		{"Medium calls preflop", "9s8d", facingBet, evaluator.Snapshot{HS: 0.55}, Action{Kind: Call}},
		{"Weak folds to a bet", "7h2c", facingBet, evaluator.Snapshot{HS: 0.34}, Action{Kind: Fold}},
		{"Weak checks when free", "7h2c", free, evaluator.Snapshot{HS: 0.34}, Action{Kind: Check}},
		{"Strong EHS bets the flop", "7h2c", free, evaluator.Snapshot{HS: 0.7, EHS: 0.9, BoardSize: 3}, Action{Kind: Bet, Amount: 50}},
		{"EHS not HS counts postflop", "AsAh", facingBet, evaluator.Snapshot{HS: 0.9, EHS: 0.3, BoardSize: 4}, Action{Kind: Fold}},
		{"Capped strong hand calls", "AsAh", Legal{Fold: true, Call: true, ToCall: 50}, evaluator.Snapshot{EHS: 0.95, BoardSize: 5}, Action{Kind: Call}},
		{"Calls an all-in when strong", "7h2c", pending, evaluator.Snapshot{EHS: 0.95, BoardSize: 5}, Action{Kind: Call}},
		{"Folds to an all-in when medium", "7h2c", pending, evaluator.Snapshot{EHS: 0.6, BoardSize: 5}, Action{Kind: Fold}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			view := View{
				Hole:         poker.MustParseCards(tt.hole),
				Legal:        tt.legal,
				PendingAllIn: tt.legal == pending,
			}
			got, err := ThresholdPolicy{}.Decide(context.Background(), view, tt.snap)
			if err != nil {
				t.Fatalf("Decide: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decide() = %s, want %s", got, tt.want)
			}
		})
	}
}
