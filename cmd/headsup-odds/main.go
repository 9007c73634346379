package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/poker"
)

type CLI struct {
	Hole     string `arg:"" help:"Hole cards, e.g. 'AsKs'"`
	Board    string `short:"b" help:"Board cards, e.g. 'Td7s8h'"`
	Outcomes bool   `short:"o" help:"Show the ahead/tied/behind transition table"`
	Samples  int    `short:"s" default:"30000" help:"Preflop rollout samples"`
	Workers  int    `short:"w" help:"Parallel workers (0 for GOMAXPROCS)"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("headsup-odds"),
		kong.Description("Hand strength and potential against one random opponent"))

	hole, err := poker.ParseCards(cli.Hole)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hole cards: %v\n", err)
		kctx.Exit(1)
	}
	board, err := poker.ParseCards(cli.Board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing board: %v\n", err)
		kctx.Exit(1)
	}

	est := evaluator.New(evaluator.Options{Workers: cli.Workers, PreflopSamples: cli.Samples})

	startTime := time.Now()
	ctx := context.Background()
	snap, err := est.Evaluate(ctx, hole, board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		kctx.Exit(1)
	}
	var pot evaluator.Potential
	if cli.Outcomes && board.CountCards() >= 3 {
		if pot, err = est.HandPotential(ctx, hole, board); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			kctx.Exit(1)
		}
	}
	duration := time.Since(startTime)

	if board != 0 {
		fmt.Printf("%s\n%s\n\n", headerStyle.Render("board"), board)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("hs"),
		headerStyle.Render("ppot"),
		headerStyle.Render("npot"),
		headerStyle.Render("ehs"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		handStyle.Render(hole.String()),
		valueStyle.Render(percent(snap.HS)),
		valueStyle.Render(percent(snap.PPot)),
		valueStyle.Render(percent(snap.NPot)),
		valueStyle.Render(percent(snap.EHS)))
	_ = w.Flush()

	if cli.Outcomes && board.CountCards() >= 3 {
		fmt.Println()
		displayOutcomes(pot)
	}

	fmt.Printf("\nevaluated in %v\n", duration.Truncate(time.Millisecond))
}

func displayOutcomes(p evaluator.Potential) {
	labels := []string{"ahead", "tied", "behind"}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s", categoryStyle.Render("now \\ river"))
	for _, l := range labels {
		fmt.Fprintf(w, "\t%s", headerStyle.Render(l))
	}
	fmt.Fprintln(w)

	for i, l := range labels {
		fmt.Fprintf(w, "%s", categoryStyle.Render(l))
		for j := range labels {
			fmt.Fprintf(w, "\t%s", valueStyle.Render(percent(p.Outcomes[i][j])))
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
