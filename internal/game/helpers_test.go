package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/internal/randutil"
	"github.com/lox/headsup/poker"
)

func testEstimator() *evaluator.Estimator {
	return evaluator.New(evaluator.Options{PreflopSamples: 2000})
}

func newTestEngine(t *testing.T, cfg Config, opts ...Option) *Engine {
	t.Helper()
	base := []Option{
		WithRNG(randutil.New(7)),
		WithEstimator(testEstimator()),
	}
	e, err := New(cfg, append(base, opts...)...)
	require.NoError(t, err)
	return e
}

// startHand deals a hand with dealer on the button and the given stacks.
func startHand(t *testing.T, e *Engine, dealer Seat, playerChips, agentChips int) {
	t.Helper()
	e.mu.Lock()
	e.dealer = dealer
	e.handsPlayed = 0
	e.chips = [2]int{playerChips, agentChips}
	e.round = NewHand
	err := e.newHand(context.Background())
	e.mu.Unlock()
	require.NoError(t, err)
}

// rig replaces the dealt cards. A full board means no more cards are dealt.
func rig(t *testing.T, e *Engine, player, agent, board string) {
	t.Helper()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hands[Player] = poker.MustParseCards(player)
	e.hands[Agent] = poker.MustParseCards(agent)
	e.board = poker.MustParseCards(board)
	e.deck = poker.NewDeck(randutil.New(1))
	require.NoError(t, e.deck.Remove(e.hands[Player]|e.hands[Agent]|e.board))
	e.snapshot = evaluator.Snapshot{Stale: true}
}

func apply(t *testing.T, e *Engine, seat Seat, kind ActionKind, amount ...int) {
	t.Helper()
	a := Action{Kind: kind}
	if len(amount) > 0 {
		a.Amount = amount[0]
	}
	require.NoError(t, e.Apply(seat, a), "%s %s", seat, a)
	requireConsistent(t, e)
}

// requireConsistent checks chip conservation and the card partition.
func requireConsistent(t *testing.T, e *Engine) {
	t.Helper()
	v := e.View()
	require.Equal(t, v.StartChips[Player]+v.StartChips[Agent], v.Chips[Player]+v.Chips[Agent]+v.Pot,
		"chips not conserved: %+v", v)

	parts := []poker.Hand{e.Remaining(), e.Hand(Player), e.Hand(Agent), e.Board()}
	var union poker.Hand
	count := 0
	for _, p := range parts {
		union |= p
		count += p.CountCards()
	}
	require.Equal(t, poker.FullDeck, union, "cards missing from partition")
	require.Equal(t, 52, count, "cards overlap between deck, hands and board")
}

type policyFunc func(ctx context.Context, view View, snap evaluator.Snapshot) (Action, error)

func (f policyFunc) Decide(ctx context.Context, view View, snap evaluator.Snapshot) (Action, error) {
	return f(ctx, view, snap)
}

type inputFunc func(ctx context.Context, view View, legal Legal) (Action, error)

func (f inputFunc) Prompt(ctx context.Context, view View, legal Legal) (Action, error) {
	return f(ctx, view, legal)
}
