package game

import "math/rand"

// Direction encodes the four cardinal grid directions using the engine's
// wire values: 0 = right (+x), 1 = down (+y), 2 = left (-x), 3 = up (-y).
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
	directionCount // sentinel
)

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % directionCount
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// manhattan returns the Manhattan distance between two cells.
func manhattan(ax, ay, bx, by int) int {
	return abs(ax-bx) + abs(ay-by)
}

// alignedFire returns a fire command from shooter toward target when the two
// share exactly one coordinate and the offset on the other axis is within
// [1, radius]. Overlapping or diagonal positions yield no shot.
func alignedFire(shooter, target Ship, radius int) (Action, bool) {
	dx := target.X - shooter.X
	dy := target.Y - shooter.Y
	if dy == 0 && dx != 0 && abs(dx) <= radius {
		if dx > 0 {
			return FireAction(shooter.ID, DirRight), true
		}
		return FireAction(shooter.ID, DirLeft), true
	}
	if dx == 0 && dy != 0 && abs(dy) <= radius {
		if dy > 0 {
			return FireAction(shooter.ID, DirDown), true
		}
		return FireAction(shooter.ID, DirUp), true
	}
	return Action{}, false
}

// firstAlignedFire scans candidates in list order and returns a fire command
// at the first one in alignment range.
func firstAlignedFire(shooter Ship, candidates []Ship, radius int) (Action, bool) {
	for _, c := range candidates {
		if act, ok := alignedFire(shooter, c, radius); ok {
			return act, true
		}
	}
	return Action{}, false
}

// stepToward returns a move for ship s that reduces the larger-axis offset
// toward (tx, ty), at most maxSpeed cells. When the offsets tie, the y axis
// wins. Downstream positioning depends on this exact tie-break, so it must
// not be "fixed" to prefer x.
func stepToward(s Ship, tx, ty, maxSpeed int) (Action, bool) {
	dx := tx - s.X
	dy := ty - s.Y
	if dx == 0 && dy == 0 {
		return Action{}, false
	}
	if abs(dx) > abs(dy) {
		speed := min(maxSpeed, abs(dx))
		if dx > 0 {
			return MoveAction(s.ID, DirRight, speed), true
		}
		return MoveAction(s.ID, DirLeft, speed), true
	}
	speed := min(maxSpeed, abs(dy))
	if dy > 0 {
		return MoveAction(s.ID, DirDown, speed), true
	}
	return MoveAction(s.ID, DirUp, speed), true
}

// randomWalk samples up to attempts single-cell moves for ship s, accepting
// the first candidate cell that is on the map, within leash Manhattan cells
// of the anchor, and not an asteroid. The bias slice holds extra direction
// entries appended to the uniform four, skewing the draw without ever
// excluding a direction.
//
// When every attempt fails the last sampled direction is returned anyway,
// flagged by ok=false. The engine tolerates moves into unvalidated cells,
// so a cornered ship jitters rather than freezing.
func randomWalk(rng *rand.Rand, g Grid, s Ship, anchorX, anchorY, leash, attempts int, bias []Direction) (act Action, ok bool) {
	pool := make([]Direction, 0, int(directionCount)+len(bias))
	for d := DirRight; d < directionCount; d++ {
		pool = append(pool, d)
	}
	pool = append(pool, bias...)

	dir := pool[rng.Intn(len(pool))]
	for i := 0; i < attempts; i++ {
		dir = pool[rng.Intn(len(pool))]
		dx, dy := dir.Delta()
		nx, ny := s.X+dx, s.Y+dy
		if !g.InBounds(nx, ny) {
			continue
		}
		if manhattan(nx, ny, anchorX, anchorY) > leash {
			continue
		}
		if g.Hazard(nx, ny) {
			continue
		}
		return MoveAction(s.ID, dir, 1), true
	}
	return MoveAction(s.ID, dir, 1), false
}
