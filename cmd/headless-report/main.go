package main

import (
	"flag"
	"fmt"

	"github.com/kmazurek/fleetmind/internal/game"
)

// runStats collects the headline numbers for one headless match.
type runStats struct {
	runIndex int
	seed     int64

	outcome          game.OutcomeReason
	ticks            int
	firstContactTick int // first tick either side logged a new enemy contact
	firstShotTick    int

	alphaShots     int
	betaShots      int
	reassignments  int
	evictions      int
	fallbackWalks  int
	alphaBuilt     int
	betaBuilt      int
	alphaSurvivors int
	betaSurvivors  int
}

func main() {
	var runs int
	var ticks int
	var fleet int
	var seedBase int64
	var seedStep int64
	var tuningPath string

	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.IntVar(&ticks, "ticks", 1500, "max ticks per match")
	flag.IntVar(&fleet, "fleet", 6, "starting ships per side")
	flag.Int64Var(&seedBase, "seed-base", 42, "seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&tuningPath, "tuning", "", "optional YAML tuning file")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	tuning := game.DefaultTuning()
	if tuningPath != "" {
		var err error
		tuning, err = game.LoadTuning(tuningPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("runs=%d ticks=%d fleet=%d seed_base=%d seed_step=%d\n\n", runs, ticks, fleet, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runMatch(i+1, seed, ticks, fleet, tuning)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

func runMatch(runIndex int, seed int64, maxTicks, fleet int, tuning *game.Tuning) runStats {
	e := game.NewEpisode(
		game.WithSeed(seed),
		game.WithTuning(tuning),
		game.WithFleets(fleet),
		game.WithVerbose(true),
	)
	outcome := e.Run(maxTicks)

	rs := runStats{
		runIndex:       runIndex,
		seed:           seed,
		outcome:        outcome,
		ticks:          e.World.Tick(),
		alphaSurvivors: outcome.AlphaShips,
		betaSurvivors:  outcome.BetaShips,
	}

	if entry, ok := firstOf(e.SimLog, "memory", "new_contact"); ok {
		rs.firstContactTick = entry.Tick
	}
	if entry, ok := firstOf(e.SimLog, "action", "fire"); ok {
		rs.firstShotTick = entry.Tick
	}
	rs.reassignments = e.SimLog.CountCategory("role", "reassign")
	rs.evictions = e.SimLog.CountCategory("role", "evict")
	rs.fallbackWalks = e.SimLog.CountCategory("action", "walk_fallback")
	rs.alphaShots = e.Agents[0].Stats.ShotsFired
	rs.betaShots = e.Agents[1].Stats.ShotsFired
	for _, b := range e.SimLog.Filter("build", "order") {
		if b.Player == "alpha" {
			rs.alphaBuilt += int(b.NumVal)
		} else if b.Player == "beta" {
			rs.betaBuilt += int(b.NumVal)
		}
	}
	return rs
}

// firstOf returns the earliest entry matching category+key.
func firstOf(sl *game.SimLog, category, key string) (game.SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return game.SimLogEntry{}, false
	}
	return entries[0], true
}

func printRun(rs runStats) {
	fmt.Printf("--- run %d (seed %d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome: %s (%s) after %d ticks\n", rs.outcome.Outcome, rs.outcome.Description, rs.ticks)
	fmt.Printf("survivors: alpha=%d beta=%d  built: alpha=%d beta=%d\n",
		rs.alphaSurvivors, rs.betaSurvivors, rs.alphaBuilt, rs.betaBuilt)
	fmt.Printf("first_contact=T%d first_shot=T%d shots: alpha=%d beta=%d\n",
		rs.firstContactTick, rs.firstShotTick, rs.alphaShots, rs.betaShots)
	fmt.Printf("scheduler churn: reassignments=%d evictions=%d fallback_walks=%d\n\n",
		rs.reassignments, rs.evictions, rs.fallbackWalks)
}

func printAggregate(all []runStats) {
	var alphaWins, betaWins, draws, inconclusive int
	var contactTicks, shotTicks []int
	for _, rs := range all {
		switch rs.outcome.Outcome {
		case game.OutcomeAlphaVictory:
			alphaWins++
		case game.OutcomeBetaVictory:
			betaWins++
		case game.OutcomeDraw:
			draws++
		default:
			inconclusive++
		}
		if rs.firstContactTick > 0 {
			contactTicks = append(contactTicks, rs.firstContactTick)
		}
		if rs.firstShotTick > 0 {
			shotTicks = append(shotTicks, rs.firstShotTick)
		}
	}
	fmt.Printf("=== aggregate over %d runs ===\n", len(all))
	fmt.Printf("outcomes: alpha=%d beta=%d draw=%d inconclusive=%d\n", alphaWins, betaWins, draws, inconclusive)
	fmt.Printf("avg first_contact=%s avg first_shot=%s\n", avgTicks(contactTicks), avgTicks(shotTicks))
}

func avgTicks(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("T%.1f", float64(sum)/float64(len(vals)))
}
