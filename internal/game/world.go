package game

import (
	"fmt"
	"math/rand"
)

// World is a lightweight stand-in for the external game engine, used by the
// visualizer, the headless report, and the scenario tests. It owns the
// ground-truth map, ship physics, cooldowns, construction, and planet
// occupation; agents only ever see the visibility-masked Observation it
// produces.

const (
	defaultBoardSize = 100
	planetOffset     = 9  // home planets sit at (9,9) and the mirrored corner
	sensorRange      = 12 // Chebyshev visibility radius around ships and owned planets
	engineFireRange  = 8  // cells a shot travels before dissipating
	fireDamage       = 25
	fireCooldown     = 10 // ticks until the weapon is ready again
	sprintCooldown   = 3  // move cooldown applied after a multi-cell move
	asteroidDamage   = 10 // hull damage for entering an asteroid cell
	shipBuildCost    = 100
	planetIncome     = 10 // resources per owned planet per tick
	baseIncome       = 2
	occupyRadius     = 2 // Chebyshev range within which ships contest a planet
	shipStartHP      = 100
)

// worldShip is a ship plus the engine-side fields agents never see.
type worldShip struct {
	Ship
	owner int // 0 = alpha, 1 = beta
	alive bool
}

// worldPlanet tracks a planet's contested occupation progress:
// 0 = alpha owned, 100 = beta owned, -1 = unoccupied.
type worldPlanet struct {
	X, Y     int
	Progress int
	home     int // owning player at generation time, -1 for neutral
}

// World holds the full simulation state for one match.
type World struct {
	Size    int
	cells   Grid // ground truth, no fog bits
	ships   []*worldShip
	planets []worldPlanet
	// memory[player] keeps the payload bits of every cell the player has
	// ever seen, so observations can mark them stale instead of fogged.
	memory    [2]Grid
	resources [2]int
	nextID    [2]int
	tick      int
	rng       *rand.Rand
}

// NewWorld generates a match map: mirrored home planets, asteroid belts,
// and clustered resource fields.
func NewWorld(seed int64, size int) *World {
	if size <= 0 {
		size = defaultBoardSize
	}
	w := &World{
		Size: size,
		rng:  rand.New(rand.NewSource(seed)), // #nosec G404 -- map generation
	}
	w.cells = make(Grid, size)
	for y := range w.cells {
		w.cells[y] = make([]Cell, size)
	}
	w.memory[0] = NewGrid(size)
	w.memory[1] = NewGrid(size)
	w.nextID = [2]int{0, 1} // alpha even ids, beta odd ids
	w.resources = [2]int{100, 100}

	w.generateTerrain()

	far := size - 1 - planetOffset
	w.addPlanet(planetOffset, planetOffset, 0)
	w.addPlanet(far, far, 1)

	return w
}

// generateTerrain scatters asteroid belts and clustered resource fields.
// Clusters matter: the explore behaviour ranks targets by neighbourhood
// density, so isolated single-cell fields would make every tile tie.
func (w *World) generateTerrain() {
	// Asteroid belts: short random strips.
	belts := w.Size / 6
	for i := 0; i < belts; i++ {
		x := w.rng.Intn(w.Size)
		y := w.rng.Intn(w.Size)
		dir := Direction(w.rng.Intn(int(directionCount)))
		length := 3 + w.rng.Intn(6)
		for j := 0; j < length; j++ {
			if w.cells.InBounds(x, y) && !w.nearPlanetCorner(x, y) {
				w.cells[y][x] |= CellAsteroid
			}
			dx, dy := dir.Delta()
			x += dx
			y += dy
		}
	}

	// Resource fields: round-ish clusters.
	clusters := w.Size / 7
	for i := 0; i < clusters; i++ {
		cx := w.rng.Intn(w.Size)
		cy := w.rng.Intn(w.Size)
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				x, y := cx+dx, cy+dy
				if !w.cells.InBounds(x, y) || w.nearPlanetCorner(x, y) {
					continue
				}
				if abs(dx)+abs(dy) <= 2 && w.rng.Float64() < 0.8 {
					w.cells[y][x] |= CellResource
				}
			}
		}
	}
}

// nearPlanetCorner keeps spawn areas clear of generated hazards.
func (w *World) nearPlanetCorner(x, y int) bool {
	far := w.Size - 1 - planetOffset
	return (abs(x-planetOffset) <= 3 && abs(y-planetOffset) <= 3) ||
		(abs(x-far) <= 3 && abs(y-far) <= 3)
}

func (w *World) addPlanet(x, y, home int) {
	progress := 0
	if home == 1 {
		progress = 100
	}
	w.planets = append(w.planets, worldPlanet{X: x, Y: y, Progress: progress, home: home})
	w.cells[y][x] |= CellPlanet
}

// SpawnFleet creates n ships for a player around their home planet.
func (w *World) SpawnFleet(player, n int) {
	px, py := w.homePlanet(player)
	for i := 0; i < n; i++ {
		w.spawnShip(player, px, py)
	}
}

func (w *World) homePlanet(player int) (x, y int) {
	for _, p := range w.planets {
		if p.home == player {
			return p.X, p.Y
		}
	}
	return 0, 0
}

// spawnShip places a new ship on the first free non-hazard cell spiralling
// out from (px, py).
func (w *World) spawnShip(player, px, py int) *worldShip {
	id := w.nextID[player]
	w.nextID[player] += 2
	x, y := w.freeCellNear(px, py)
	s := &worldShip{
		Ship:  Ship{ID: id, X: x, Y: y, HP: shipStartHP},
		owner: player,
		alive: true,
	}
	w.ships = append(w.ships, s)
	return s
}

func (w *World) freeCellNear(px, py int) (int, int) {
	occupied := make(map[[2]int]bool, len(w.ships))
	for _, s := range w.ships {
		if s.alive {
			occupied[[2]int{s.X, s.Y}] = true
		}
	}
	for r := 1; r < w.Size; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				x, y := px+dx, py+dy
				if !w.cells.InBounds(x, y) || occupied[[2]int{x, y}] {
					continue
				}
				if w.cells.Hazard(x, y) || w.cells.At(x, y)&CellPlanet != 0 {
					continue
				}
				return x, y
			}
		}
	}
	return px, py
}

// Tick returns the number of completed Step calls.
func (w *World) Tick() int { return w.tick }

// Resources returns a player's current build budget.
func (w *World) Resources(player int) int { return w.resources[player] }

// ShipsOf returns snapshots of a player's living ships in id order of
// creation. The slice is freshly allocated each call.
func (w *World) ShipsOf(player int) []Ship {
	var out []Ship
	for _, s := range w.ships {
		if s.alive && s.owner == player {
			out = append(out, s.Ship)
		}
	}
	return out
}

// Observe builds the visibility-masked observation for a player. Cells in
// sensor range show their true payload bits; cells seen on an earlier tick
// come back with the stale bit set; everything else is fog.
func (w *World) Observe(player int) *Observation {
	visible := w.visibleCells(player)

	g := NewGrid(w.Size)
	for y := 0; y < w.Size; y++ {
		for x := 0; x < w.Size; x++ {
			switch {
			case visible[y][x]:
				g[y][x] = w.cells[y][x]
				w.memory[player][y][x] = w.cells[y][x]
			case w.memory[player][y][x] != CellUnseen:
				g[y][x] = w.memory[player][y][x] | CellStale
			}
		}
	}

	obs := &Observation{
		Map:         g,
		AlliedShips: w.ShipsOf(player),
		Resources:   w.resources[player],
	}
	for _, s := range w.ships {
		if s.alive && s.owner != player && visible[s.Y][s.X] {
			obs.EnemyShips = append(obs.EnemyShips, s.Ship)
		}
	}
	// Home planet first: the agent anchors on the first report it sees.
	for _, p := range w.planets {
		if p.home == player {
			obs.Planets = append(obs.Planets, PlanetReport{X: p.X, Y: p.Y, Progress: p.Progress})
		}
	}
	for _, p := range w.planets {
		if p.home != player && visible[p.Y][p.X] {
			obs.Planets = append(obs.Planets, PlanetReport{X: p.X, Y: p.Y, Progress: p.Progress})
		}
	}
	return obs
}

func (w *World) visibleCells(player int) [][]bool {
	vis := make([][]bool, w.Size)
	for y := range vis {
		vis[y] = make([]bool, w.Size)
	}
	mark := func(cx, cy int) {
		for dy := -sensorRange; dy <= sensorRange; dy++ {
			for dx := -sensorRange; dx <= sensorRange; dx++ {
				x, y := cx+dx, cy+dy
				if w.cells.InBounds(x, y) {
					vis[y][x] = true
				}
			}
		}
	}
	for _, s := range w.ships {
		if s.alive && s.owner == player {
			mark(s.X, s.Y)
		}
	}
	for _, p := range w.planets {
		if p.home == player {
			mark(p.X, p.Y)
		}
	}
	return vis
}

// Step advances the world one tick: cooldowns, both action batches, deaths,
// construction, occupation, and income. Fire resolves before movement so a
// ship cannot dodge a shot declared against its observed position.
func (w *World) Step(alpha, beta ActionBatch) {
	w.tick++

	for _, s := range w.ships {
		if s.FireCD > 0 {
			s.FireCD--
		}
		if s.MoveCD > 0 {
			s.MoveCD--
		}
	}

	w.applyFire(0, alpha.ShipsActions)
	w.applyFire(1, beta.ShipsActions)
	w.applyMoves(0, alpha.ShipsActions)
	w.applyMoves(1, beta.ShipsActions)
	w.reap()

	w.construct(0, alpha.Construction)
	w.construct(1, beta.Construction)
	w.occupyPlanets()

	for player := 0; player < 2; player++ {
		w.resources[player] += baseIncome + planetIncome*w.ownedPlanets(player)
	}
}

func (w *World) findShip(player, id int) *worldShip {
	for _, s := range w.ships {
		if s.alive && s.owner == player && s.ID == id {
			return s
		}
	}
	return nil
}

// applyFire resolves every fire action in the batch: the shot travels along
// the direction and hits the first enemy ship within range.
func (w *World) applyFire(player int, actions []Action) {
	for _, act := range actions {
		if act.Type != ActionFire {
			continue
		}
		s := w.findShip(player, act.ShipID)
		if s == nil || s.FireCD > 0 {
			continue
		}
		s.FireCD = fireCooldown
		dx, dy := act.Dir.Delta()
		for step := 1; step <= engineFireRange; step++ {
			tx, ty := s.X+dx*step, s.Y+dy*step
			if !w.cells.InBounds(tx, ty) {
				break
			}
			if hit := w.shipAt(tx, ty, 1-player); hit != nil {
				hit.HP -= fireDamage
				break
			}
		}
	}
}

func (w *World) shipAt(x, y, player int) *worldShip {
	for _, s := range w.ships {
		if s.alive && s.owner == player && s.X == x && s.Y == y {
			return s
		}
	}
	return nil
}

// applyMoves resolves move actions cell by cell. Movement cooldown caps the
// stride at one cell but never blocks it. The engine tolerates unvalidated
// destinations: out-of-bounds steps stop at the edge and asteroid cells
// damage the hull instead of rejecting the move.
func (w *World) applyMoves(player int, actions []Action) {
	for _, act := range actions {
		if act.Type != ActionMove {
			continue
		}
		s := w.findShip(player, act.ShipID)
		if s == nil {
			continue
		}
		speed := act.Speed
		if speed < 0 {
			speed = 0
		}
		if speed > 3 {
			speed = 3
		}
		if s.MoveCD > 0 && speed > 1 {
			speed = 1
		}
		dx, dy := act.Dir.Delta()
		for step := 0; step < speed; step++ {
			nx, ny := s.X+dx, s.Y+dy
			if !w.cells.InBounds(nx, ny) {
				break
			}
			s.X, s.Y = nx, ny
			if w.cells.Hazard(nx, ny) {
				s.HP -= asteroidDamage
				break
			}
		}
		if speed > 1 {
			s.MoveCD = sprintCooldown
		}
	}
}

// reap marks ships with no hull left as dead.
func (w *World) reap() {
	for _, s := range w.ships {
		if s.alive && s.HP <= 0 {
			s.alive = false
		}
	}
}

// construct spends the player's budget on new ships near their home planet.
func (w *World) construct(player, n int) {
	if n < 0 {
		n = 0
	}
	if n > 10 {
		n = 10
	}
	px, py := w.homePlanet(player)
	for i := 0; i < n; i++ {
		if w.resources[player] < shipBuildCost {
			break
		}
		w.resources[player] -= shipBuildCost
		w.spawnShip(player, px, py)
	}
}

// occupyPlanets shifts each planet's progress toward the side with more
// ships in contest range.
func (w *World) occupyPlanets() {
	for i := range w.planets {
		p := &w.planets[i]
		var near [2]int
		for _, s := range w.ships {
			if !s.alive {
				continue
			}
			if abs(s.X-p.X) <= occupyRadius && abs(s.Y-p.Y) <= occupyRadius {
				near[s.owner]++
			}
		}
		shift := near[1] - near[0]
		if shift == 0 {
			continue
		}
		if p.Progress < 0 {
			p.Progress = 50 // first contact with a neutral planet
		}
		p.Progress += shift
		if p.Progress < 0 {
			p.Progress = 0
		}
		if p.Progress > 100 {
			p.Progress = 100
		}
	}
}

// ownedPlanets counts planets fully held by the player.
func (w *World) ownedPlanets(player int) int {
	n := 0
	for _, p := range w.planets {
		if (player == 0 && p.Progress == 0) || (player == 1 && p.Progress == 100) {
			n++
		}
	}
	return n
}

// String summarises the world for debug output.
func (w *World) String() string {
	return fmt.Sprintf("world T=%d alpha=%d ships beta=%d ships", w.tick, len(w.ShipsOf(0)), len(w.ShipsOf(1)))
}
