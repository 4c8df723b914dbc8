package game

// Episode is a headless match between two agents driven by the built-in
// world. It mirrors the visualizer's update loop without any Ebiten
// dependency and supports deterministic seeding and structured logging,
// which is what the scenario tests run on.
type Episode struct {
	World  *World
	Agents [2]*Agent
	SimLog *SimLog
}

// epOptionKind controls the pass in which an option is applied.
type epOptionKind int

const (
	epOptInfra epOptionKind = iota // seed, board size, tuning, verbose; applied first
	epOptFleet                     // starting fleets; applied after the world exists
)

// EpisodeOption is a builder function applied while assembling an Episode.
type EpisodeOption struct {
	kind epOptionKind
	fn   func(*episodeConfig, *Episode)
}

type episodeConfig struct {
	seed      int64
	boardSize int
	tuning    *Tuning
	verbose   bool
	fleetSize int
}

// WithSeed sets the RNG seed shared by map generation and both agents.
func WithSeed(seed int64) EpisodeOption {
	return EpisodeOption{epOptInfra, func(c *episodeConfig, _ *Episode) {
		c.seed = seed
	}}
}

// WithBoardSize overrides the board side length.
func WithBoardSize(size int) EpisodeOption {
	return EpisodeOption{epOptInfra, func(c *episodeConfig, _ *Episode) {
		c.boardSize = size
	}}
}

// WithTuning gives both agents a shared tuning set.
func WithTuning(tu *Tuning) EpisodeOption {
	return EpisodeOption{epOptInfra, func(c *episodeConfig, _ *Episode) {
		c.tuning = tu
	}}
}

// WithVerbose enables per-tick action and memory log entries.
func WithVerbose(v bool) EpisodeOption {
	return EpisodeOption{epOptInfra, func(c *episodeConfig, _ *Episode) {
		c.verbose = v
	}}
}

// WithFleets sets the number of starting ships per side.
func WithFleets(n int) EpisodeOption {
	return EpisodeOption{epOptFleet, func(c *episodeConfig, e *Episode) {
		e.World.SpawnFleet(0, n)
		e.World.SpawnFleet(1, n)
	}}
}

// NewEpisode builds a seeded headless match in two ordered passes:
// infrastructure first (seed, board, tuning, logging), then fleets once the
// world exists. Defaults: seed 1, full board, default tuning, 6 ships each.
func NewEpisode(opts ...EpisodeOption) *Episode {
	cfg := &episodeConfig{
		seed:      1,
		boardSize: defaultBoardSize,
		fleetSize: 6,
	}
	e := &Episode{}
	for _, o := range opts {
		if o.kind == epOptInfra {
			o.fn(cfg, e)
		}
	}
	if cfg.tuning == nil {
		cfg.tuning = DefaultTuning()
	}
	if cfg.boardSize != defaultBoardSize {
		tu := *cfg.tuning
		tu.BoardSize = cfg.boardSize
		cfg.tuning = &tu
	}

	e.World = NewWorld(cfg.seed, cfg.boardSize)
	e.SimLog = NewSimLog(cfg.verbose)
	e.Agents[0] = NewAgent(cfg.tuning, cfg.seed)
	e.Agents[1] = NewAgent(cfg.tuning, cfg.seed+1)
	e.Agents[0].AttachSimLog(e.SimLog, "alpha", "A", "B")
	e.Agents[1].AttachSimLog(e.SimLog, "beta", "B", "A")

	fleeted := false
	for _, o := range opts {
		if o.kind == epOptFleet {
			o.fn(cfg, e)
			fleeted = true
		}
	}
	if !fleeted {
		e.World.SpawnFleet(0, cfg.fleetSize)
		e.World.SpawnFleet(1, cfg.fleetSize)
	}
	return e
}

// StepTicks advances the match n ticks: observe, decide, and step for both
// sides each tick.
func (e *Episode) StepTicks(n int) {
	for i := 0; i < n; i++ {
		alpha := e.Agents[0].GetAction(e.World.Observe(0))
		beta := e.Agents[1].GetAction(e.World.Observe(1))
		e.World.Step(alpha, beta)
	}
}

// Run advances until one fleet is destroyed or maxTicks elapse, and returns
// the outcome.
func (e *Episode) Run(maxTicks int) OutcomeReason {
	for i := 0; i < maxTicks; i++ {
		e.StepTicks(1)
		if r := e.World.DetermineOutcome(false); r.Outcome != OutcomeInconclusive {
			return r
		}
	}
	return e.World.DetermineOutcome(true)
}
