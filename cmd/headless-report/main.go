package main

import (
	"flag"
	"fmt"

	"github.com/quarrelgames/tankduel/internal/game"
)

func main() {
	var matches int
	var ticks int
	var layout string
	var strategy string
	var buffer int
	var verbose bool

	flag.IntVar(&matches, "matches", 5, "number of headless bot-vs-bot matches")
	flag.IntVar(&ticks, "ticks", 3000, "tick budget per match")
	flag.StringVar(&layout, "layout", "maze", "arena layout: maze or open")
	flag.StringVar(&strategy, "strategy", "bfs", "global planner strategy: bfs or astar")
	flag.IntVar(&buffer, "buffer", 0, "grid inflation radius in cells")
	flag.BoolVar(&verbose, "verbose", false, "record per-tick decision detail")
	flag.Parse()

	if matches <= 0 {
		fmt.Println("error: -matches must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	var strat game.Strategy
	switch strategy {
	case "bfs":
		strat = game.StrategyBFS
	case "astar":
		strat = game.StrategyAStar
	default:
		fmt.Printf("error: unsupported strategy %q (supported: bfs, astar)\n", strategy)
		return
	}
	if layout != "maze" && layout != "open" {
		fmt.Printf("error: unsupported layout %q (supported: maze, open)\n", layout)
		return
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("layout=%s strategy=%s buffer=%d matches=%d ticks=%d\n\n",
		layout, strategy, buffer, matches, ticks)

	all := make([]game.MatchSummary, 0, matches)
	for i := 0; i < matches; i++ {
		ms := runMatch(ticks, layout, strat, buffer, verbose)
		all = append(all, ms)
		printMatch(i+1, ms)
	}
	printAggregate(all)
}

func runMatch(ticks int, layout string, strat game.Strategy, buffer int, verbose bool) game.MatchSummary {
	opts := []game.SimOption{
		game.WithStrategy(strat),
		game.WithBufferRadius(buffer),
		game.WithVerbose(verbose),
		game.WithTargetBot(),
	}
	if layout == "maze" {
		opts = append(opts, game.WithDefaultLayout())
	}
	ts := game.NewTestSim(opts...)
	ts.RunTicks(ticks)
	return game.SummarizeMatch(ts.World, ts.Log)
}

func printMatch(index int, ms game.MatchSummary) {
	fmt.Printf("--- Match %d ---\n", index)
	fmt.Printf("outcome=%s winner=%s ticks=%d\n", ms.Outcome, ms.Winner, ms.Ticks)
	fmt.Printf("events: state_change=%d path_recompute=%d fire=%d stuck=%d dodge_entries=%d\n",
		ms.StateChanges, ms.PathRecomputes, ms.Fires, ms.StuckEvents, ms.DodgeEntries)
	fmt.Printf("markers: first_fire=%d first_stuck=%d\n\n", ms.FirstFireTick, ms.FirstStuckTick)
}

func printAggregate(all []game.MatchSummary) {
	wins := map[game.MatchOutcome]int{}
	totalTicks := 0
	totalFires := 0
	totalStuck := 0
	totalDodge := 0
	for _, ms := range all {
		wins[ms.Outcome]++
		totalTicks += ms.Ticks
		totalFires += ms.Fires
		totalStuck += ms.StuckEvents
		totalDodge += ms.DodgeEntries
	}

	n := len(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("matches=%d p1_wins=%d bot_wins=%d timeouts=%d\n",
		n, wins[game.OutcomePlayerWin], wins[game.OutcomeBotWin], wins[game.OutcomeTimeout])
	fmt.Printf("avg_per_match: ticks=%.1f fire=%.1f stuck=%.1f dodge_entries=%.1f\n",
		avg(totalTicks, n), avg(totalFires, n), avg(totalStuck, n), avg(totalDodge, n))
}

func avg(sum, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
