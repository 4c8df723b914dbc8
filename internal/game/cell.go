package game

// Cell is one packed map cell as delivered in a per-tick observation.
// The engine folds several boolean tile properties into a single byte:
//
//	bit 0: resource field, worth exploring
//	bit 1: asteroid, hazardous to enter
//	bit 2: planet surface
//	bit 6: stale intel, seen on an earlier tick but now out of sensor range
//	bit 7: fog, never observed
//
// A cell only counts as explorable when the resource bit is set AND both
// intel bits are clear. Stale cells may carry payload bits left over from
// the last sighting and must not attract explorers.
type Cell uint8

const (
	CellResource Cell = 1 << 0 // resource field
	CellAsteroid Cell = 1 << 1 // asteroid hazard
	CellPlanet   Cell = 1 << 2 // planet surface
	CellStale    Cell = 1 << 6 // out-of-date intel
	CellUnseen   Cell = 1 << 7 // never observed
)

// Explorable reports whether this cell is a currently-visible resource field.
func (c Cell) Explorable() bool {
	return c&CellResource != 0 && c&(CellStale|CellUnseen) == 0
}

// Asteroid reports whether the asteroid bit is set.
func (c Cell) Asteroid() bool {
	return c&CellAsteroid != 0
}

// Grid is the visibility-masked game map, row-major: Grid[y][x].
type Grid [][]Cell

// NewGrid allocates a size×size grid of fogged cells.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for y := range g {
		g[y] = make([]Cell, size)
		for x := range g[y] {
			g[y][x] = CellUnseen
		}
	}
	return g
}

// Size returns the side length of the grid.
func (g Grid) Size() int {
	return len(g)
}

// InBounds returns true if (x, y) is on the map.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < len(g) && y >= 0 && y < len(g)
}

// At returns the cell at (x, y). Out-of-bounds reads come back fogged, so
// neighbourhood scans at the map edge need no special casing.
func (g Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellUnseen
	}
	return g[y][x]
}

// Hazard reports whether the cell at (x, y) has the asteroid bit set.
func (g Grid) Hazard(x, y int) bool {
	return g.At(x, y).Asteroid()
}
