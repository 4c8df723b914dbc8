package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Inspector panel geometry.
const (
	inspW     = 230
	inspH     = 150
	inspPad   = 6
	inspLineH = 13
)

// Inspector holds the click-to-select state. Ships are addressed by owner
// and id rather than pointer so a destroyed selection simply disappears.
type Inspector struct {
	selectedOwner int
	selectedID    int
	hasSelection  bool
}

// handleInspectorClick maps a mouse position to a board cell and selects the
// ship standing there, if any. Clicking empty board deselects.
func (v *Viewer) handleInspectorClick(mx, my int) bool {
	if mx < v.offX || my < v.offY {
		// Division truncates toward zero, so border pixels left of or above
		// the board would otherwise land on row/column 0.
		v.inspector = Inspector{}
		return false
	}
	cx := (mx - v.offX) / cellPx
	cy := (my - v.offY) / cellPx
	if !v.episode.World.cells.InBounds(cx, cy) {
		return false
	}
	for _, s := range v.episode.World.ships {
		if s.alive && s.X == cx && s.Y == cy {
			v.inspector = Inspector{selectedOwner: s.owner, selectedID: s.ID, hasSelection: true}
			return true
		}
	}
	v.inspector = Inspector{}
	return false
}

// selectedShip resolves the current selection, or nil when nothing valid is
// selected (including a selection that died since the click).
func (v *Viewer) selectedShip() *worldShip {
	if !v.inspector.hasSelection {
		return nil
	}
	return v.episode.World.findShip(v.inspector.selectedOwner, v.inspector.selectedID)
}

// drawInspector renders the selected ship's panel in the lower-left corner.
func (v *Viewer) drawInspector(screen *ebiten.Image) {
	s := v.selectedShip()
	if s == nil {
		return
	}
	agent := v.episode.Agents[s.owner]
	role, _ := agent.Role(s.ID)

	x0 := float32(v.offX)
	y0 := float32(v.height - inspH - borderWidth)
	vector.FillRect(screen, x0, y0, inspW, inspH, color.RGBA{R: 14, G: 14, B: 20, A: 235}, false)
	vector.StrokeRect(screen, x0, y0, inspW, inspH, 1.0, color.RGBA{R: 60, G: 65, B: 90, A: 255}, false)

	side := "alpha"
	if s.owner == 1 {
		side = "beta"
	}
	lines := []string{
		fmt.Sprintf("ship %s%d (%s)", agent.prefix, s.ID, side),
		fmt.Sprintf("pos (%d,%d)  hp %d", s.X, s.Y, s.HP),
		fmt.Sprintf("cooldowns fire=%d move=%d", s.FireCD, s.MoveCD),
		fmt.Sprintf("role %s", role),
	}
	// Last few decisions for this ship from the shared log.
	label := agent.label(s.ID)
	recent := v.decLog.Recent()
	shown := 0
	for i := len(recent) - 1; i >= 0 && shown < 4; i-- {
		if recent[i].Label == label {
			lines = append(lines, fmt.Sprintf("T%d %s", recent[i].Tick, recent[i].Message))
			shown++
		}
	}

	ly := int(y0) + inspPad
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(x0)+inspPad, ly)
		ly += inspLineH
	}
}
