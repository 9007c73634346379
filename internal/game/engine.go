package game

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/internal/randutil"
	"github.com/lox/headsup/poker"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithRNG sets the source used for seat draws and dealing.
func WithRNG(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithEstimator sets the estimator used for the agent's hand.
func WithEstimator(est *evaluator.Estimator) Option {
	return func(e *Engine) {
		e.estimator = est
	}
}

// WithPolicy sets the decision policy for the Agent seat.
func WithPolicy(p DecisionPolicy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithHumanInput sets the input for the Player seat.
func WithHumanInput(h HumanInput) Option {
	return func(e *Engine) {
		e.human = h
	}
}

// HandResult describes how the last hand finished.
type HandResult struct {
	HandID string
	Dealer Seat
	// Winner took the pot. On a split it is the seat given the odd chip.
	Winner Seat
	Split  bool
	Pot    int
	// Reason is "fold" or "showdown".
	Reason string

	Board poker.Hand
	Hands [2]poker.Hand
	// Ranks is only set for a showdown.
	Ranks [2]poker.HandRank
}

// Engine runs a heads-up game. All state is private; read it through View
// and the accessors.
type Engine struct {
	mu sync.RWMutex

	cfg       Config
	rng       *rand.Rand
	logger    *log.Logger
	estimator *evaluator.Estimator
	policy    DecisionPolicy
	human     HumanInput

	round  Round
	deck   *poker.Deck
	hands  [2]poker.Hand
	board  poker.Hand
	handID string

	chips      [2]int
	startChips [2]int
	pot        int
	smallBlind int
	bigBlind   int
	// currentBet is what the seat on turn owes to stay in.
	currentBet     int
	dealer         Seat
	turn           Seat
	prevBetOrCheck bool
	allIn          [2]bool
	pendingAllIn   bool
	raises         int

	snapshot    evaluator.Snapshot
	handsPlayed int
	result      HandResult
}

// New creates an engine and starts a new game.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = randutil.NewOrTime(cfg.Seed)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	e.logger = e.logger.WithPrefix("engine")
	if e.estimator == nil {
		e.estimator = evaluator.New(evaluator.Options{})
	}

	e.NewGame()
	return e, nil
}

// NewGame resets both stacks and the blinds and draws the first dealer.
func (e *Engine) NewGame() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.round = NewGame
	e.chips = [2]int{e.cfg.StartingChips, e.cfg.StartingChips}
	e.startChips = e.chips
	e.smallBlind = e.cfg.SmallBlind
	e.bigBlind = e.cfg.BigBlind
	e.dealer = Seat(e.rng.IntN(2))
	e.handsPlayed = 0
	e.result = HandResult{}
	e.resetHand()

	e.logger.Debug("new game", "chips", e.cfg.StartingChips, "dealer", e.dealer)
}

func (e *Engine) resetHand() {
	e.deck = nil
	e.hands = [2]poker.Hand{}
	e.board = 0
	e.pot = 0
	e.currentBet = 0
	e.turn = e.dealer
	e.prevBetOrCheck = false
	e.allIn = [2]bool{}
	e.pendingAllIn = false
	e.raises = 0
	e.snapshot = evaluator.Snapshot{Stale: true}
}

// NewHand shuffles, deals hole cards, rotates the dealer and posts blinds.
// It is valid after NewGame, a fold or a showdown.
func (e *Engine) NewHand() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.newHand(context.Background())
}

func (e *Engine) newHand(ctx context.Context) error {
	if e.round == End {
		return ErrGameOver
	}
	if !e.round.canStartHand() {
		return fmt.Errorf("%w: cannot deal during %s", ErrHandInProgress, e.round)
	}
	if e.chips[Player] == 0 || e.chips[Agent] == 0 {
		e.round = End
		return ErrGameOver
	}

	if e.handsPlayed > 0 {
		e.dealer = e.dealer.Opponent()
	}
	e.resetHand()
	e.startChips = e.chips
	e.handID = uuid.New().String()
	e.result = HandResult{}

	e.deck = poker.NewDeck(e.rng)
	for _, seat := range []Seat{Player, Agent} {
		hole, err := e.deck.DrawN(2)
		if err != nil {
			return fmt.Errorf("dealing hole cards: %w", err)
		}
		e.hands[seat] = hole
	}

	e.round = Preflop
	e.handsPlayed++

	e.logger.Info("hand started",
		"hand", e.handID,
		"number", e.handsPlayed,
		"dealer", e.dealer,
		"player_chips", e.chips[Player],
		"agent_chips", e.chips[Agent])

	return e.postBlinds(ctx)
}

// postBlinds takes the small blind from the dealer and the big blind from
// the other seat. A short stack posts what it has and is all-in.
func (e *Engine) postBlinds(ctx context.Context) error {
	sb, bb := e.dealer, e.dealer.Opponent()
	e.pay(sb, min(e.smallBlind, e.chips[sb]))
	e.pay(bb, min(e.bigBlind, e.chips[bb]))

	e.logger.Debug("blinds posted", "hand", e.handID, "small", sb, "big", bb, "pot", e.pot)

	for _, s := range []Seat{sb, bb} {
		if e.chips[s] == 0 {
			e.allIn[s] = true
		}
	}
	switch {
	case e.allIn[sb]:
		return e.resolveAllIn(ctx, sb)
	case e.allIn[bb]:
		return e.resolveAllIn(ctx, bb)
	}

	e.currentBet = e.bigBlind - e.smallBlind
	e.turn = e.dealer
	return e.checkInvariants()
}

func (e *Engine) pay(seat Seat, amount int) {
	e.chips[seat] -= amount
	e.pot += amount
}

// deal fills the board up to the size the current deal round calls for.
func (e *Engine) deal() error {
	for e.board.CountCards() < e.round.boardTarget() {
		if err := e.dealOne(); err != nil {
			return err
		}
	}
	e.logger.Debug("board dealt", "hand", e.handID, "round", e.round, "board", e.board)
	return nil
}

func (e *Engine) dealOne() error {
	c, err := e.deck.DrawRandom()
	if err != nil {
		return fmt.Errorf("dealing %s: %w", e.round, err)
	}
	e.board.AddCard(c)
	e.snapshot.Stale = true
	return nil
}

// closeStreet ends a betting round and deals the next street.
func (e *Engine) closeStreet() error {
	e.round++
	e.turn = e.dealer.Opponent()
	e.prevBetOrCheck = false
	e.currentBet = 0
	e.raises = 0

	if e.round == Showdown {
		return e.showdown()
	}
	if err := e.deal(); err != nil {
		return err
	}
	e.round++
	return e.checkInvariants()
}

// runout deals the rest of the board once no more betting is possible.
func (e *Engine) runout() error {
	e.currentBet = 0
	e.pendingAllIn = false
	e.prevBetOrCheck = false
	for e.round < Showdown {
		e.round++
		if e.round.IsDeal() {
			if err := e.deal(); err != nil {
				return err
			}
		}
	}
	return e.showdown()
}

// agentSnapshot returns the agent's evaluation, recomputing it if the board
// has changed since it was taken.
func (e *Engine) agentSnapshot(ctx context.Context) (evaluator.Snapshot, error) {
	if !e.snapshot.Stale && e.snapshot.BoardSize == e.board.CountCards() {
		return e.snapshot, nil
	}
	s, err := e.estimator.Evaluate(ctx, e.hands[Agent], e.board)
	if err != nil {
		return evaluator.Snapshot{}, fmt.Errorf("evaluating agent hand: %w", err)
	}
	e.snapshot = s
	e.logger.Debug("agent evaluated", "hand", e.handID, "snapshot", s)
	return s, nil
}
