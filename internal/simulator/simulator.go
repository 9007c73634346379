// Package simulator plays many hands between the threshold agent and a
// scripted opponent through the game engine and collects statistics.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/bot"
	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/internal/game"
	"github.com/lox/headsup/internal/randutil"
	"github.com/lox/headsup/internal/statistics"
)

// Opponents lists the accepted opponent types.
var Opponents = []string{"call", "fold", "rand", "maniac", "chart", "threshold", "tight", "loose"}

// Config holds configuration for running simulations.
type Config struct {
	Hands int
	// Opponent picks the player seat's strategy, one of Opponents.
	Opponent  string
	Rules     game.Config
	Estimator evaluator.Options
	// Timeout bounds each hand. Zero means no bound.
	Timeout time.Duration
	Logger  *log.Logger
}

// Result is the outcome of a simulation.
type Result struct {
	Stats    *statistics.Statistics
	Opponent string
	// Games counts matches that ended with a stack at zero.
	Games       int
	AgentBusts  int
	PlayerBusts int
}

// Report is the machine-readable summary written by the sim command.
type Report struct {
	Opponent    string     `json:"opponent"`
	Hands       int        `json:"hands"`
	Games       int        `json:"games"`
	AgentBusts  int        `json:"agent_busts"`
	PlayerBusts int        `json:"player_busts"`
	MeanBB      float64    `json:"mean_bb"`
	StdDevBB    float64    `json:"stddev_bb"`
	CI95        [2]float64 `json:"ci95_bb"`
	ShowdownBB  float64    `json:"showdown_bb"`
	FoldBB      float64    `json:"non_showdown_bb"`
	ButtonBB    float64    `json:"button_mean_bb"`
	BigBlindBB  float64    `json:"big_blind_mean_bb"`
	StreetEnds  [4]int     `json:"street_ends"`
}

// Report summarises r for JSON output.
func (r *Result) Report() Report {
	low, high := r.Stats.ConfidenceInterval95()
	return Report{
		Opponent:    r.Opponent,
		Hands:       r.Stats.Hands,
		Games:       r.Games,
		AgentBusts:  r.AgentBusts,
		PlayerBusts: r.PlayerBusts,
		MeanBB:      r.Stats.Mean(),
		StdDevBB:    r.Stats.StdDev(),
		CI95:        [2]float64{low, high},
		ShowdownBB:  r.Stats.ShowdownBB,
		FoldBB:      r.Stats.NonShowdownBB,
		ButtonBB:    r.Stats.PositionMean(statistics.Button),
		BigBlindBB:  r.Stats.PositionMean(statistics.BigBlind),
		StreetEnds:  r.Stats.StreetEnds,
	}
}

// Simulator runs heads-up simulations.
type Simulator struct {
	config Config
}

func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run plays the configured number of hands, starting a new game whenever a
// stack is emptied.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	est := evaluator.New(s.config.Estimator)
	opponent, err := NewOpponent(s.config.Opponent, est, s.config.Rules.Seed, s.config.Logger)
	if err != nil {
		return nil, err
	}

	agent := game.NewTimedPolicy(game.ThresholdPolicy{}, s.config.Rules.DecisionTimeout)
	engine, err := game.New(s.config.Rules,
		game.WithLogger(s.config.Logger),
		game.WithEstimator(est),
		game.WithPolicy(agent),
		game.WithHumanInput(opponent))
	if err != nil {
		return nil, err
	}

	result := &Result{Stats: &statistics.Statistics{}, Opponent: s.config.Opponent}
	for hand := range s.config.Hands {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		r, err := s.playHand(ctx, engine)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", hand+1, err)
		}
		result.Stats.Add(r)

		if engine.Round() == game.End {
			v := engine.View()
			result.Games++
			if v.AgentChips() == 0 {
				result.AgentBusts++
			} else {
				result.PlayerBusts++
			}
			s.config.Logger.Info("game over", "hands", v.HandsPlayed, "agent_chips", v.AgentChips())
			engine.NewGame()
		}
	}

	if err := result.Stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return result, nil
}

func (s *Simulator) playHand(ctx context.Context, engine *game.Engine) (statistics.HandResult, error) {
	before := engine.View().AgentChips()

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	res, err := engine.PlayHand(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return statistics.HandResult{}, fmt.Errorf("hand %s timed out after %v", res.HandID, s.config.Timeout)
	}
	if err != nil {
		return statistics.HandResult{}, err
	}

	position := statistics.BigBlind
	if res.Dealer == game.Agent {
		position = statistics.Button
	}
	bb := float64(s.config.Rules.BigBlind)
	return statistics.HandResult{
		HandID:         res.HandID,
		NetBB:          float64(engine.View().AgentChips()-before) / bb,
		Position:       position,
		WentToShowdown: res.Reason == "showdown",
		PotBB:          float64(res.Pot) / bb,
		BoardCards:     res.Board.CountCards(),
	}, nil
}

// NewOpponent builds the player seat's strategy. Random opponents draw from
// a source derived from seed.
func NewOpponent(kind string, est *evaluator.Estimator, seed int64, logger *log.Logger) (game.HumanInput, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix(kind + "-bot")
	switch kind {
	case "call":
		return game.CallingPolicy{}, nil
	case "fold":
		return bot.NewFoldBot(logger), nil
	case "rand":
		return bot.NewRandBot(opponentRNG(seed, 1), logger), nil
	case "maniac":
		return bot.NewManiacBot(opponentRNG(seed, 2), logger), nil
	case "chart":
		return bot.NewChartBot(logger), nil
	case "threshold":
		return game.PolicyInput{Policy: game.ThresholdPolicy{}, Estimator: est}, nil
	case "tight":
		return game.PolicyInput{Policy: game.ThresholdPolicy{RaiseAbove: 0.90, CallAbove: 0.65}, Estimator: est}, nil
	case "loose":
		return game.PolicyInput{Policy: game.ThresholdPolicy{RaiseAbove: 0.65, CallAbove: 0.30}, Estimator: est}, nil
	}
	return nil, fmt.Errorf("unknown opponent type %q (want one of %s)", kind, strings.Join(Opponents, ", "))
}

// opponentRNG keeps the opponent's draws apart from the deal.
func opponentRNG(seed int64, salt uint64) *rand.Rand {
	if seed == 0 {
		return randutil.NewOrTime(0)
	}
	return randutil.New(randutil.SeedFrom(uint64(seed), salt))
}

// PrintSummary writes a report of the simulation to w.
func PrintSummary(w io.Writer, r *Result) {
	stats := r.Stats
	mean := stats.Mean()
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== RESULTS vs %s ===\n", r.Opponent)
	fmt.Fprintf(w, "Hands played: %d\n", stats.Hands)
	fmt.Fprintf(w, "Games finished: %d (agent busted %d, opponent busted %d)\n",
		r.Games, r.AgentBusts, r.PlayerBusts)

	fmt.Fprintf(w, "\n=== STATISTICAL RESULTS ===\n")
	fmt.Fprintf(w, "Mean: %.4f bb/hand\n", mean)
	fmt.Fprintf(w, "Median: %.4f bb/hand\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.4f bb\n", stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.4f, %.4f] bb/hand\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.3f, P25=%.3f, P75=%.3f, P95=%.3f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(w, "\n=== PROFIT SOURCE ===\n")
	if wins := stats.ShowdownWins + stats.NonShowdownWins; wins > 0 {
		fmt.Fprintf(w, "Winning hands: %d showdown (%.1f%%), %d fold equity (%.1f%%), %d split\n",
			stats.ShowdownWins, float64(stats.ShowdownWins)/float64(wins)*100,
			stats.NonShowdownWins, float64(stats.NonShowdownWins)/float64(wins)*100,
			stats.Splits)
	}
	if stats.Hands > 0 {
		fmt.Fprintf(w, "Showdown: %.3f bb/hand, non-showdown: %.3f bb/hand\n",
			stats.ShowdownBB/float64(stats.Hands), stats.NonShowdownBB/float64(stats.Hands))
	}

	fmt.Fprintf(w, "\n=== STREETS ===\n")
	for i, name := range []string{"Preflop", "Flop", "Turn", "River"} {
		fmt.Fprintf(w, "Ended on %s: %d\n", name, stats.StreetEnds[i])
	}
	fmt.Fprintf(w, "Max pot: %.1f bb, big pots: %d (%.2f bb)\n", stats.MaxPotBB, stats.BigPots, stats.BigPotsBB)

	fmt.Fprintf(w, "\n=== POSITION ===\n")
	for _, p := range []statistics.Position{statistics.Button, statistics.BigBlind} {
		if ps := stats.PositionResults[p]; ps.Hands > 0 {
			fmt.Fprintf(w, "%s: %d hands, %.3f bb/hand\n", p, ps.Hands, stats.PositionMean(p))
		}
	}
}
