package game

import (
	"fmt"
	"math/rand"
)

// EnemySighting is the last remembered position of an enemy ship.
type EnemySighting struct {
	X, Y int
	Turn int
}

// Agent is the per-episode decision maker. It owns all inter-tick state:
// the role map, the enemy sighting memory, the once-computed planet anchors,
// and the turn counter. One GetAction call per engine tick; no internal
// goroutines and no locking; the engine drives a single logical thread.
type Agent struct {
	tuning *Tuning
	rng    *rand.Rand

	roles  map[int]Role
	memory map[int]EnemySighting
	turn   int

	// Planet anchors, derived from the first occupation report and never
	// recomputed for the rest of the episode.
	homeX, homeY   int
	enemyX, enemyY int
	anchored       bool

	Stats AgentStats

	// Optional observability hooks; nil-safe.
	simLog    *SimLog
	decLog    *DecisionLog
	player    string // label used in logs, e.g. "alpha"
	prefix    string // own ship label prefix, e.g. "A"
	foePrefix string // enemy ship label prefix, e.g. "B"
}

// NewAgent creates an agent with the given tuning (nil = defaults) and RNG
// seed. Randomised choices share this one source, so two agents built with
// the same seed still diverge once their draws interleave differently.
func NewAgent(tuning *Tuning, seed int64) *Agent {
	if tuning == nil {
		tuning = DefaultTuning()
	}
	return &Agent{
		tuning:    tuning,
		rng:       rand.New(rand.NewSource(seed)), // #nosec G404 -- game decisions, not crypto
		roles:     make(map[int]Role),
		memory:    make(map[int]EnemySighting),
		player:    "--",
		prefix:    "S",
		foePrefix: "E",
	}
}

// AttachSimLog wires structured episode logging into the agent's decision
// paths. player is the log label; prefix and foePrefix are the per-ship label
// prefixes for own and enemy ids, so a contact keeps one label across every
// diagnostic surface.
func (a *Agent) AttachSimLog(sl *SimLog, player, prefix, foePrefix string) {
	a.simLog = sl
	a.player = player
	a.prefix = prefix
	a.foePrefix = foePrefix
}

// AttachDecisionLog wires the bounded UI log used by the visualizer.
func (a *Agent) AttachDecisionLog(dl *DecisionLog) {
	a.decLog = dl
}

// Turn returns the number of completed GetAction calls.
func (a *Agent) Turn() int { return a.turn }

// Role returns the current role of a ship id, if assigned.
func (a *Agent) Role(id int) (Role, bool) {
	r, ok := a.roles[id]
	return r, ok
}

// Anchors returns the home and enemy planet anchors. ok is false until the
// first planet report has been seen.
func (a *Agent) Anchors() (homeX, homeY, enemyX, enemyY int, ok bool) {
	return a.homeX, a.homeY, a.enemyX, a.enemyY, a.anchored
}

// Memory returns the remembered sighting for an enemy ship id.
func (a *Agent) Memory(id int) (EnemySighting, bool) {
	s, ok := a.memory[id]
	return s, ok
}

// label formats an allied ship id for log output.
func (a *Agent) label(id int) string {
	return fmt.Sprintf("%s%d", a.prefix, id)
}

// foeLabel formats an enemy ship id for log output.
func (a *Agent) foeLabel(id int) string {
	return fmt.Sprintf("%s%d", a.foePrefix, id)
}

// GetAction is the per-tick entry point: bookkeeping, role scheduling, then
// one behaviour dispatch per allied ship. The returned batch holds at most
// one action per ship plus the construction order.
func (a *Agent) GetAction(obs *Observation) ActionBatch {
	a.turn++
	a.Stats.Turns++

	a.discoverAnchors(obs.Planets)
	a.updateMemory(obs.EnemyShips)
	a.assignRoles(obs.AlliedShips)

	ships := indexShips(obs.AlliedShips)
	actions := make([]Action, 0, len(obs.AlliedShips))
	for _, s := range obs.AlliedShips {
		role, ok := a.roles[s.ID]
		if !ok {
			// Should be unreachable after assignRoles; fall back to explore
			// rather than dropping the ship's turn.
			role = RoleExplore
			a.roles[s.ID] = role
			a.Stats.UnknownRoleHits++
			a.simLog.Add(a.turn, a.label(s.ID), a.player, "role", "missing", "defaulted to explore", 0)
			a.decLog.Add(a.turn, a.label(s.ID), "WARN no role, defaulting to explore")
		}

		var act Action
		switch role {
		case RoleDefend:
			act = a.defendAction(obs, ships, s.ID)
		case RoleAttack:
			act = a.attackAction(obs, ships, s.ID)
		default:
			act = a.exploreAction(obs, ships, s.ID)
		}
		a.Stats.ActionsByRole[role]++
		if act.Type == ActionFire {
			a.Stats.ShotsFired++
			a.simLog.AddVerbose(a.turn, a.label(s.ID), a.player, "action", "fire", act.Dir.String(), 0)
		} else {
			a.simLog.AddVerbose(a.turn, a.label(s.ID), a.player, "action", "move",
				fmt.Sprintf("%s x%d", act.Dir, act.Speed), float64(act.Speed))
		}
		actions = append(actions, act)
	}

	build := a.constructionOrder(obs.Resources)
	if build > 0 {
		a.simLog.AddVerbose(a.turn, "--", a.player, "build", "order", fmt.Sprintf("%d ships", build), float64(build))
	}
	return ActionBatch{ShipsActions: actions, Construction: build}
}

// discoverAnchors derives the home planet anchor from the first occupation
// report ever seen, and mirrors it across the board for the enemy anchor.
// Set exactly once; read-only afterwards.
func (a *Agent) discoverAnchors(planets []PlanetReport) {
	if a.anchored || len(planets) == 0 {
		return
	}
	p := planets[0]
	a.homeX, a.homeY = p.X, p.Y
	a.enemyX = a.tuning.BoardSize - 1 - p.X
	a.enemyY = a.tuning.BoardSize - 1 - p.Y
	a.anchored = true
	a.simLog.Add(a.turn, "--", a.player, "anchor", "set",
		fmt.Sprintf("home=(%d,%d) enemy=(%d,%d)", a.homeX, a.homeY, a.enemyX, a.enemyY), 0)
	a.decLog.Add(a.turn, "--", fmt.Sprintf("home planet (%d,%d)", a.homeX, a.homeY))
}

// updateMemory refreshes the last-seen position of every currently visible
// enemy ship. Entries are never pruned: a vanished contact keeps its last
// sighting for the rest of the episode.
func (a *Agent) updateMemory(enemies []Ship) {
	for _, e := range enemies {
		prev, seen := a.memory[e.ID]
		a.memory[e.ID] = EnemySighting{X: e.X, Y: e.Y, Turn: a.turn}
		if !seen {
			a.simLog.AddVerbose(a.turn, a.foeLabel(e.ID), a.player, "memory", "new_contact",
				fmt.Sprintf("(%d,%d)", e.X, e.Y), 0)
		} else if prev.X != e.X || prev.Y != e.Y {
			a.simLog.AddVerbose(a.turn, a.foeLabel(e.ID), a.player, "memory", "moved",
				fmt.Sprintf("(%d,%d) → (%d,%d)", prev.X, prev.Y, e.X, e.Y), 0)
		}
	}
}

// constructionOrder spends the build budget: one ship per full divisor of
// resources, capped.
func (a *Agent) constructionOrder(resources int) int {
	n := resources / a.tuning.ConstructionDivisor
	if n > a.tuning.ConstructionCap {
		n = a.tuning.ConstructionCap
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Load is a lifecycle hook kept for engine-driver compatibility. The final
// agent carries no learned weights, so there is nothing to read from dir.
func (a *Agent) Load(dir string) error {
	_ = dir
	return nil
}

// Eval switches the agent to inference mode. No-op: the rule set has no
// training mode to leave.
func (a *Agent) Eval() {}

// To places the agent's compute on a device. No-op: all decisions are
// integer grid arithmetic.
func (a *Agent) To(device string) {
	_ = device
}
