package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// borderWidth is the pixel gap between the window edge and the board.
	borderWidth = 24
	// cellPx is the rendered size of one grid cell.
	cellPx = 8
)

// roleColors maps each role to its ship tint in the viewer.
var roleColors = [roleCount]color.RGBA{
	RoleExplore: {R: 80, G: 200, B: 120, A: 255},  // green
	RoleAttack:  {R: 230, G: 90, B: 70, A: 255},   // red
	RoleDefend:  {R: 90, G: 140, B: 240, A: 255},  // blue
}

// Viewer is the interactive Ebiten front-end: it runs a live match between
// two agents and renders the board, both fleets, the decision log panel,
// and the click-to-select ship inspector.
type Viewer struct {
	episode *Episode
	decLog  *DecisionLog

	width   int
	height  int
	boardPx int
	offX    int
	offY    int

	// Simulation speed control.
	simSpeed  float64 // multiplier: 0 = paused, 0.5, 1, 4
	tickAccum float64 // fractional tick accumulator for sub-1x speeds

	inspector     Inspector
	statusMessage string // transient, e.g. "report copied"
	statusUntil   int    // tick after which the status clears
}

// NewViewer builds a seeded live match. Both agents share the decision log
// so the panel interleaves their choices the way the match interleaves them.
func NewViewer(seed int64) *Viewer {
	e := NewEpisode(WithSeed(seed))
	dl := NewDecisionLog()
	e.Agents[0].AttachDecisionLog(dl)
	e.Agents[1].AttachDecisionLog(dl)

	boardPx := e.World.Size * cellPx
	return &Viewer{
		episode:  e,
		decLog:   dl,
		boardPx:  boardPx,
		width:    borderWidth + boardPx + borderWidth + logPanelWidth,
		height:   borderWidth + boardPx + borderWidth,
		offX:     borderWidth,
		offY:     borderWidth,
		simSpeed: 1.0,
	}
}

// Update handles input and advances the match by the current speed.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if v.simSpeed == 0 {
			v.simSpeed = 1.0
		} else {
			v.simSpeed = 0
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		v.simSpeed = 0.5
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		v.simSpeed = 1.0
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		v.simSpeed = 4.0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.copySelectedReport()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		v.handleInspectorClick(mx, my)
	}

	v.tickAccum += v.simSpeed
	for v.tickAccum >= 1.0 {
		v.tickAccum -= 1.0
		v.episode.StepTicks(1)
	}
	return nil
}

// Draw renders the board, fleets, planets, log panel, and inspector.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 8, B: 12, A: 255})

	w := v.episode.World
	// Board background.
	vector.FillRect(screen, float32(v.offX), float32(v.offY), float32(v.boardPx), float32(v.boardPx), color.RGBA{R: 16, G: 16, B: 24, A: 255}, false)

	// Terrain cells from ground truth: the viewer is an observer, not a player.
	for y := 0; y < w.Size; y++ {
		for x := 0; x < w.Size; x++ {
			c := w.cells[y][x]
			var col color.RGBA
			switch {
			case c&CellPlanet != 0:
				col = color.RGBA{R: 200, G: 180, B: 90, A: 255}
			case c.Asteroid():
				col = color.RGBA{R: 90, G: 85, B: 80, A: 255}
			case c&CellResource != 0:
				col = color.RGBA{R: 40, G: 90, B: 60, A: 255}
			default:
				continue
			}
			v.fillCell(screen, x, y, col)
		}
	}

	// Planets get a contested-progress ring drawn as a thin border.
	for _, p := range w.planets {
		px := float32(v.offX + p.X*cellPx)
		py := float32(v.offY + p.Y*cellPx)
		col := color.RGBA{R: 200, G: 200, B: 200, A: 255}
		if p.Progress == 0 {
			col = color.RGBA{R: 240, G: 120, B: 100, A: 255}
		} else if p.Progress == 100 {
			col = color.RGBA{R: 100, G: 150, B: 250, A: 255}
		}
		vector.StrokeRect(screen, px-2, py-2, cellPx+4, cellPx+4, 2, col, false)
	}

	// Ships, tinted by role; beta's drawn with a darker outline to tell the
	// sides apart when roles match.
	for _, s := range w.ships {
		if !s.alive {
			continue
		}
		role, _ := v.episode.Agents[s.owner].Role(s.ID)
		col := roleColors[role]
		if s.owner == 1 {
			col.R = col.R / 2
			col.G = col.G / 2
			col.B = col.B / 2
		}
		v.fillCell(screen, s.X, s.Y, col)
	}

	// Selection ring.
	if sel := v.selectedShip(); sel != nil {
		px := float32(v.offX + sel.X*cellPx)
		py := float32(v.offY + sel.Y*cellPx)
		vector.StrokeRect(screen, px-2, py-2, cellPx+4, cellPx+4, 1.5, color.RGBA{R: 255, G: 255, B: 255, A: 255}, false)
	}

	v.decLog.Draw(screen, v.offX+v.boardPx+borderWidth, v.height)
	v.drawInspector(screen)
	v.drawHUD(screen)
}

func (v *Viewer) fillCell(screen *ebiten.Image, x, y int, col color.RGBA) {
	vector.FillRect(screen, float32(v.offX+x*cellPx), float32(v.offY+y*cellPx), cellPx, cellPx, col, false)
}

func (v *Viewer) drawHUD(screen *ebiten.Image) {
	w := v.episode.World
	line := fmt.Sprintf("T=%d  speed=%.1fx  alpha=%d ships/%d res  beta=%d ships/%d res   [space] pause  [1-3] speed  [click] inspect  [R] copy report",
		w.Tick(), v.simSpeed, len(w.ShipsOf(0)), w.Resources(0), len(w.ShipsOf(1)), w.Resources(1))
	ebitenutil.DebugPrintAt(screen, line, v.offX, 4)
	if v.statusMessage != "" && w.Tick() < v.statusUntil {
		ebitenutil.DebugPrintAt(screen, v.statusMessage, v.offX, v.height-16)
	}
}

// Layout reports the fixed window size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}
