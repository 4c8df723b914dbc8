package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 320
	logMaxEntries = 60
	logLineHeight = 11
)

// DecisionEntry is a single line in the decision log.
type DecisionEntry struct {
	Tick    int
	Label   string // e.g. "A12", "B3", or "--"
	Message string
}

// DecisionLog is a ring buffer of agent decision entries rendered on-screen
// by the visualizer. For machine-readable episode logging use SimLog.
type DecisionLog struct {
	entries []DecisionEntry
	head    int
	count   int
}

// NewDecisionLog creates a decision log with a fixed capacity.
func NewDecisionLog() *DecisionLog {
	return &DecisionLog{
		entries: make([]DecisionEntry, logMaxEntries),
	}
}

// Add appends an entry to the log. Nil-safe: a headless agent runs without
// a decision log attached.
func (dl *DecisionLog) Add(tick int, label, msg string) {
	if dl == nil {
		return
	}
	dl.entries[dl.head] = DecisionEntry{Tick: tick, Label: label, Message: msg}
	dl.head = (dl.head + 1) % logMaxEntries
	if dl.count < logMaxEntries {
		dl.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (dl *DecisionLog) Recent() []DecisionEntry {
	if dl == nil {
		return nil
	}
	result := make([]DecisionEntry, dl.count)
	for i := 0; i < dl.count; i++ {
		idx := (dl.head - dl.count + i + logMaxEntries) % logMaxEntries
		result[i] = dl.entries[idx]
	}
	return result
}

// Draw renders the decision log panel on the right side of the screen.
func (dl *DecisionLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	// Panel background.
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 10, G: 10, B: 14, A: 248}, false)
	// Left separator line.
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 55, B: 75, A: 255}, false)

	// Title bar.
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 18, G: 20, B: 32, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "DECISION LOG", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+logPanelWidth), 16, 1.0, color.RGBA{R: 50, G: 60, B: 85, A: 200}, false)

	entries := dl.Recent()

	// Draw from bottom up so newest is at bottom.
	maxVisible := (panelH - 24) / logLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]
	recent := 3 // latest entries get a highlight row

	y := 20
	for i, e := range visible {
		if i >= len(visible)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 28, G: 32, B: 46, A: 160}, false)
		}
		line := fmt.Sprintf("%4d [%s] %s", e.Tick, e.Label, e.Message)
		ebitenutil.DebugPrintAt(screen, line, panelX+8, y)
		y += logLineHeight
	}
}
