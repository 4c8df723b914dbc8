package game

import "testing"

func TestInspectorClick_SelectsShipUnderCursor(t *testing.T) {
	v := NewViewer(1)
	s := &worldShip{Ship: Ship{ID: 0, X: 0, Y: 0, HP: 100}, owner: 0, alive: true}
	v.episode.World.ships = append(v.episode.World.ships, s)

	if !v.handleInspectorClick(v.offX+3, v.offY+3) {
		t.Fatal("click inside cell (0,0) did not select the ship standing there")
	}
	sel := v.selectedShip()
	if sel == nil || sel.ID != 0 || sel.owner != 0 {
		t.Fatal("selection does not resolve to the clicked ship")
	}
}

func TestInspectorClick_BorderPixelsDoNotSelect(t *testing.T) {
	v := NewViewer(1)
	s := &worldShip{Ship: Ship{ID: 0, X: 0, Y: 0, HP: 100}, owner: 0, alive: true}
	v.episode.World.ships = append(v.episode.World.ships, s)

	// Pixels left of or above the board truncate toward cell 0 when divided;
	// they must deselect, not pick up the ship at (0,0).
	if v.handleInspectorClick(v.offX-3, v.offY+3) {
		t.Fatal("click in the left border selected a ship")
	}
	if v.handleInspectorClick(v.offX+3, v.offY-3) {
		t.Fatal("click in the top border selected a ship")
	}
	if v.selectedShip() != nil {
		t.Fatal("border click left a selection behind")
	}
}

func TestInspectorClick_EmptyCellDeselects(t *testing.T) {
	v := NewViewer(1)
	s := &worldShip{Ship: Ship{ID: 0, X: 0, Y: 0, HP: 100}, owner: 0, alive: true}
	v.episode.World.ships = append(v.episode.World.ships, s)

	v.handleInspectorClick(v.offX+3, v.offY+3)
	// A cell with no ship on it; (50,50) is far from both spawn corners.
	v.handleInspectorClick(v.offX+50*cellPx, v.offY+50*cellPx)
	if v.selectedShip() != nil {
		t.Fatal("clicking empty board kept the old selection")
	}
}
