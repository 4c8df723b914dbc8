package game

import "fmt"

// Role behaviours. Each is a pure function of the tick's observation, the
// adapted ship index, and the agent's anchors: one call, one action, no
// suspension. Callers must only pass ids present in the index; that
// invariant belongs to the dispatch loop, not to the behaviours.

// defendAction screens the home planet. Priority chain: return fire when an
// enemy sits in the weapon envelope, fall back home when hurt, otherwise
// walk a random picket around the home anchor.
func (a *Agent) defendAction(obs *Observation, ships map[int]Ship, id int) Action {
	s := ships[id]

	if s.FireCD == 0 {
		if act, ok := firstAlignedFire(s, obs.EnemyShips, a.tuning.FireRadius); ok {
			a.decLog.Add(a.turn, a.label(id), "defend: firing "+act.Dir.String())
			return act
		}
	}

	if s.HP <= a.tuning.LowHPThreshold {
		if act, ok := stepToward(s, a.homeX, a.homeY, a.tuning.MaxMoveSpeed); ok {
			a.Stats.RetreatMoves++
			a.decLog.Add(a.turn, a.label(id), fmt.Sprintf("defend: hurt (%d hp), falling back", s.HP))
			return act
		}
		// Already sitting on the anchor; hold with a zero-length move.
		return MoveAction(id, DirRight, 0)
	}

	act, validated := randomWalk(a.rng, obs.Map, s, a.homeX, a.homeY,
		a.tuning.WalkLeash, a.tuning.WalkAttempts, a.walkBias(s))
	if !validated {
		a.Stats.FallbackWalks++
		a.simLog.AddVerbose(a.turn, a.label(id), a.player, "action", "walk_fallback", act.Dir.String(), 0)
	}
	return act
}

// walkBias skews picket-walk sampling back toward home once a defender has
// drifted past the anchor on an axis. Only the two corner spawns get a bias;
// a centre anchor walks uniformly.
func (a *Agent) walkBias(s Ship) []Direction {
	var bias []Direction
	low := a.homeX < a.tuning.BoardSize/2 && a.homeY < a.tuning.BoardSize/2
	high := a.homeX >= a.tuning.BoardSize/2 && a.homeY >= a.tuning.BoardSize/2
	switch {
	case low:
		if s.X > a.homeX {
			bias = append(bias, DirLeft)
		}
		if s.Y > a.homeY {
			bias = append(bias, DirUp)
		}
	case high:
		if s.X < a.homeX {
			bias = append(bias, DirRight)
		}
		if s.Y < a.homeY {
			bias = append(bias, DirDown)
		}
	}
	return bias
}

// attackAction pushes toward the enemy planet, shooting anything that
// crosses the weapon envelope on the way. Movement cooldown never stops an
// attacker, it only caps the stride at one cell.
func (a *Agent) attackAction(obs *Observation, ships map[int]Ship, id int) Action {
	s := ships[id]

	if s.FireCD == 0 {
		if act, ok := firstAlignedFire(s, obs.EnemyShips, a.tuning.FireRadius); ok {
			a.decLog.Add(a.turn, a.label(id), "attack: firing "+act.Dir.String())
			return act
		}
	}

	speed := a.tuning.MaxMoveSpeed
	if s.MoveCD != 0 {
		speed = 1
	}
	if act, ok := stepToward(s, a.enemyX, a.enemyY, speed); ok {
		return act
	}
	// Parked on the enemy anchor with nothing in range.
	return MoveAction(id, DirRight, 0)
}

// exploreAction hunts the densest visible cluster of resource fields. The
// fire check runs first even for explorers as a defensive reflex, then the
// map scan picks a destination.
func (a *Agent) exploreAction(obs *Observation, ships map[int]Ship, id int) Action {
	s := ships[id]

	if s.FireCD == 0 {
		if act, ok := firstAlignedFire(s, obs.EnemyShips, a.tuning.FireRadius); ok {
			a.decLog.Add(a.turn, a.label(id), "explore: reflex fire "+act.Dir.String())
			return act
		}
	}

	if tx, ty, ok := bestExploreTarget(obs.Map); ok {
		if act, moved := stepToward(s, tx, ty, a.tuning.MaxMoveSpeed); moved {
			return act
		}
		// Standing on the best cell already; drift off home's side of the map.
	}
	return a.driftAction(id)
}

// driftAction moves one cell away from the home side of the board: toward
// increasing coordinates when home sits at the low corner, decreasing
// otherwise. Used when no resource field is visible anywhere.
func (a *Agent) driftAction(id int) Action {
	lowHome := a.homeX < a.tuning.BoardSize/2
	dir := DirRight
	if a.rng.Intn(2) == 0 {
		dir = DirDown
	}
	if !lowHome {
		dir = dir.Opposite()
	}
	return MoveAction(id, dir, 1)
}

// bestExploreTarget scans the whole visible map for the resource cell with
// the most resource cells inside its 3×3 half-open neighbourhood window
// (dx, dy in [0,3), self included). First seen wins ties, row-major order.
func bestExploreTarget(g Grid) (x, y int, ok bool) {
	best := -1
	size := g.Size()
	for cy := 0; cy < size; cy++ {
		for cx := 0; cx < size; cx++ {
			if !g.At(cx, cy).Explorable() {
				continue
			}
			n := 0
			for dy := 0; dy < 3; dy++ {
				for dx := 0; dx < 3; dx++ {
					if g.At(cx+dx, cy+dy).Explorable() {
						n++
					}
				}
			}
			if n > best {
				best = n
				x, y = cx, cy
			}
		}
	}
	return x, y, best >= 0
}
