package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.BigBlind = 10

	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "big blind")
}

func TestNewGameResetsStacks(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, DefaultConfig())

	v := e.View()
	assert.Equal(t, NewGame, v.Round)
	assert.Equal(t, [2]int{1000, 1000}, v.Chips)
	assert.Equal(t, 0, v.Pot)
	assert.Equal(t, 25, v.SmallBlind)
	assert.Equal(t, 50, v.BigBlind)
}

func TestNewHandPostsBlinds(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, DefaultConfig())
	startHand(t, e, Player, 1000, 1000)

	v := e.View()
	assert.Equal(t, Preflop, v.Round)
	assert.Equal(t, Player, v.Dealer)
	assert.Equal(t, Player, v.Turn, "dealer acts first pre-flop")
	assert.Equal(t, 975, v.PlayerChips())
	assert.Equal(t, 950, v.AgentChips())
	assert.Equal(t, 75, v.Pot)
	assert.Equal(t, 25, v.CurrentBet)
	assert.False(t, v.PrevBetOrCheck)
	assert.Equal(t, 2, e.Hand(Player).CountCards())
	assert.Equal(t, 2, e.Hand(Agent).CountCards())
	assert.Zero(t, e.Board())
	assert.Equal(t, 48, e.Remaining().CountCards())
	assert.NotEmpty(t, v.HandID)
	requireConsistent(t, e)
}

func TestNewHandRotatesDealer(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, DefaultConfig())
	startHand(t, e, Agent, 1000, 1000)

	apply(t, e, Agent, Fold)
	require.NoError(t, e.NewHand())
	assert.Equal(t, Player, e.View().Dealer)

	apply(t, e, Player, Fold)
	require.NoError(t, e.NewHand())
	assert.Equal(t, Agent, e.View().Dealer)
}

func TestNewHandDuringHand(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, DefaultConfig())
	startHand(t, e, Player, 1000, 1000)

	err := e.NewHand()
	assert.ErrorIs(t, err, ErrHandInProgress)
}

func TestPreflopFold(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, DefaultConfig())
	startHand(t, e, Player, 1000, 1000)

	apply(t, e, Player, Fold)

	v := e.View()
	assert.Equal(t, NewHand, v.Round)
	assert.Equal(t, 975, v.PlayerChips())
	assert.Equal(t, 1025, v.AgentChips())
	assert.Equal(t, 0, v.Pot)

	res := e.Result()
	assert.Equal(t, Agent, res.Winner)
	assert.Equal(t, 75, res.Pot)
	assert.Equal(t, "fold", res.Reason)
	assert.False(t, res.Split)
}

func TestRoundProgression(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, DefaultConfig())
	startHand(t, e, Player, 1000, 1000)

	apply(t, e, Player, Call)
	v := e.View()
	assert.Equal(t, Preflop, v.Round, "one call does not close the street")
	assert.Equal(t, Agent, v.Turn)
	assert.True(t, v.PrevBetOrCheck)
	assert.Equal(t, 100, v.Pot)

	apply(t, e, Agent, Check)
	v = e.View()
	assert.Equal(t, Flop, v.Round)
	assert.Equal(t, 3, e.Board().CountCards())
	assert.Equal(t, Agent, v.Turn, "seat after the dealer opens the flop")
	assert.False(t, v.PrevBetOrCheck)
	assert.True(t, e.Snapshot().Stale, "dealing marks the snapshot stale")

	apply(t, e, Agent, Bet, 50)
	v = e.View()
	assert.Equal(t, Flop, v.Round)
	assert.Equal(t, Player, v.Turn)
	assert.Equal(t, 50, v.CurrentBet)
	assert.Equal(t, 150, v.Pot)

	apply(t, e, Player, Raise, 50)
	v = e.View()
	assert.Equal(t, Flop, v.Round, "a raise does not close the street")
	assert.Equal(t, Agent, v.Turn)
	assert.Equal(t, 50, v.CurrentBet)
	assert.Equal(t, 250, v.Pot)

	apply(t, e, Agent, Call)
	v = e.View()
	assert.Equal(t, Turn, v.Round)
	assert.Equal(t, 4, e.Board().CountCards())
	assert.Equal(t, 300, v.Pot)
	assert.Equal(t, 0, v.CurrentBet)

	apply(t, e, Agent, Check)
	apply(t, e, Player, Check)
	assert.Equal(t, River, e.Round())
	assert.Equal(t, 5, e.Board().CountCards())

	apply(t, e, Agent, Check)
	apply(t, e, Player, Check)
	assert.Contains(t, []Round{Showdown, End}, e.Round())

	res := e.Result()
	assert.Equal(t, "showdown", res.Reason)
	assert.Equal(t, 300, res.Pot)
	assert.Equal(t, 0, e.View().Pot)
}

func TestCallWithNothingOwedChecks(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, DefaultConfig())
	startHand(t, e, Player, 1000, 1000)

	apply(t, e, Player, Call)
	apply(t, e, Agent, Call)
	assert.Equal(t, Flop, e.Round())
	assert.Equal(t, 100, e.View().Pot)
}

func TestIllegalActionsLeaveStateUnchanged(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		seat   Seat
		action Action
		reason string
	}{
		{"Out of turn", Agent, Action{Kind: Call}, "on turn"},
		{"Check facing a bet", Player, Action{Kind: Check}, "not allowed"},
		{"Bet facing a bet", Player, Action{Kind: Bet, Amount: 50}, "not allowed"},
		{"Raise below minimum", Player, Action{Kind: Raise, Amount: 10}, "below minimum"},
		{"Zero raise", Player, Action{Kind: Raise}, "positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newTestEngine(t, DefaultConfig())
			startHand(t, e, Player, 1000, 1000)
			before := e.ViewFor(Player)

			err := e.Apply(tt.seat, tt.action)
			var ill *IllegalActionError
			require.ErrorAs(t, err, &ill)
			assert.Equal(t, tt.seat, ill.Seat)
			assert.Contains(t, ill.Reason, tt.reason)
			assert.Equal(t, before, e.ViewFor(Player))
		})
	}
}

func TestApplyOutsideBettingRound(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, DefaultConfig())

	err := e.Apply(Player, Action{Kind: Check})
	assert.ErrorIs(t, err, ErrNotBettingRound)

	startHand(t, e, Player, 1000, 1000)
	apply(t, e, Player, Fold)
	err = e.Apply(Agent, Action{Kind: Check})
	assert.ErrorIs(t, err, ErrNotBettingRound)
}

func TestMinimumRaiseFollowsLargeBets(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, DefaultConfig())
	startHand(t, e, Player, 1000, 1000)

	apply(t, e, Player, Raise, 100)
	l := e.Legal()
	assert.Equal(t, 100, l.ToCall)
	assert.Equal(t, 100, l.MinRaise, "minimum raise matches a call above the big blind")

	err := e.Apply(Agent, Action{Kind: Raise, Amount: 60})
	var ill *IllegalActionError
	require.ErrorAs(t, err, &ill)

	apply(t, e, Agent, Raise, 100)
	assert.Equal(t, 100, e.View().CurrentBet)
}

func TestRaiseCap(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.RaiseCap = 2
	e := newTestEngine(t, cfg)
	startHand(t, e, Player, 1000, 1000)

	apply(t, e, Player, Raise, 50)
	apply(t, e, Agent, Raise, 50)

	l := e.Legal()
	assert.False(t, l.Raise)
	assert.False(t, l.AllIn)
	assert.True(t, l.Call)

	before := e.ViewFor(Player)
	err := e.Apply(Player, Action{Kind: Raise, Amount: 50})
	var ill *IllegalActionError
	require.ErrorAs(t, err, &ill)
	assert.Contains(t, ill.Reason, "raise cap")
	assert.Equal(t, before, e.ViewFor(Player))

	apply(t, e, Player, Call)
	assert.Equal(t, Flop, e.Round())
	assert.True(t, e.Legal().Bet, "cap resets each street")
}

func TestUnlimitedRaises(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.RaiseCap = 0
	e := newTestEngine(t, cfg)
	startHand(t, e, Player, 1000, 1000)

	seat := Player
	for range 6 {
		apply(t, e, seat, Raise, 50)
		seat = seat.Opponent()
	}
	assert.Equal(t, 6, e.View().RaisesThisStreet)
}

func TestGameOver(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, DefaultConfig())
	startHand(t, e, Player, 100, 1900)
	// The agent holds four aces and cannot lose.
	rig(t, e, "2c3d", "AsAh", "AdAcKsKd7h")

	apply(t, e, Player, AllIn)

	assert.Equal(t, End, e.Round())
	res := e.Result()
	assert.Equal(t, Agent, res.Winner)
	assert.Equal(t, 200, res.Pot)
	assert.Equal(t, [2]int{0, 2000}, e.View().Chips)

	assert.ErrorIs(t, e.NewHand(), ErrGameOver)
	assert.ErrorIs(t, e.Apply(Player, Action{Kind: Check}), ErrGameOver)

	e.NewGame()
	require.NoError(t, e.NewHand())
	assert.Equal(t, 2000, e.View().Chips[Player]+e.View().Chips[Agent]+e.View().Pot)
}

func TestViewHidesOpponentCards(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, DefaultConfig())
	startHand(t, e, Player, 1000, 1000)

	assert.Zero(t, e.View().Hole)
	assert.Equal(t, e.Hand(Player), e.ViewFor(Player).Hole)
	assert.Equal(t, e.Hand(Agent), e.ViewFor(Agent).Hole)
	assert.False(t, e.Hand(Player).Overlaps(e.Hand(Agent)))

	assert.Zero(t, e.ViewFor(Agent).Legal, "legal actions only for the seat on turn")
	assert.True(t, e.ViewFor(Player).Legal.Call)
}

func TestInvariantViolationEndsGame(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, DefaultConfig())
	startHand(t, e, Player, 1000, 1000)

	e.mu.Lock()
	e.pot += 10
	e.mu.Unlock()

	err := e.Apply(Player, Action{Kind: Call})
	var inv *InvariantViolationError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "chip-conservation", inv.Check)
	assert.Equal(t, End, e.Round())
	assert.True(t, errors.Is(e.NewHand(), ErrGameOver))
}
