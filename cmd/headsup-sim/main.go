package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/config"
	"github.com/lox/headsup/internal/fileutil"
	"github.com/lox/headsup/internal/simulator"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Config   string        `short:"c" default:"headsup.hcl" help:"HCL config file (missing is fine)"`
	DotEnv   []string      `name:"dotenv" default:".env" help:"Environment files loaded before the config"`
	Hands    int           `short:"n" default:"1000" help:"Number of hands to simulate"`
	Opponent string        `short:"o" default:"call" help:"Opponent type: call, fold, rand, maniac, chart, threshold, tight, loose"`
	Seed     int64         `help:"RNG seed, overrides the config (0 keeps it)"`
	Timeout  time.Duration `default:"30s" help:"Per-hand timeout"`
	Output   string        `help:"Write a JSON report to this file"`
	Verbose  bool          `short:"v" help:"Log every hand"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("headsup-sim"),
		kong.Description("Play the threshold agent against a scripted opponent"))

	if err := config.LoadDotEnv(cli.DotEnv...); err != nil {
		log.Fatal("Failed to load environment", "error", err)
	}
	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load config", "file", cli.Config, "error", err)
	}

	level, err := cfg.LogLevel()
	if err != nil {
		log.Fatal("Invalid log level", "error", err)
	}
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: cfg.Log.Timestamps,
		TimeFormat:      "15:04:05",
		Prefix:          "sim",
	})

	rules, err := cfg.Rules()
	if err != nil {
		logger.Fatal("Invalid rules", "error", err)
	}
	if cli.Seed != 0 {
		rules.Seed = cli.Seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Print(titleStyle.Render(fmt.Sprintf(" ♠ ♥ Heads-up %d/%d limit ♦ ♣ ", rules.SmallBlind, rules.BigBlind)))
	fmt.Println()

	start := time.Now()
	result, err := simulator.New(simulator.Config{
		Hands:     cli.Hands,
		Opponent:  strings.ToLower(cli.Opponent),
		Rules:     rules,
		Estimator: cfg.EstimatorOptions(),
		Timeout:   cli.Timeout,
		Logger:    logger,
	}).Run(ctx)
	if err != nil {
		logger.Error("Simulation failed", "error", err)
		kctx.Exit(1)
	}

	simulator.PrintSummary(os.Stdout, result)
	if cli.Output != "" {
		if err := fileutil.WriteJSON(cli.Output, result.Report()); err != nil {
			logger.Error("Failed to write report", "file", cli.Output, "error", err)
			kctx.Exit(1)
		}
	}
	fmt.Printf("\n%d hands in %v\n", result.Stats.Hands, time.Since(start).Truncate(time.Millisecond))
}
