package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
)

// shipDebugReport builds a plain-text dossier for the selected ship: state,
// role, the owning agent's counters, and that agent's remembered enemy
// contacts. Meant to be pasted into a bug report.
func (v *Viewer) shipDebugReport(s *worldShip) string {
	if s == nil {
		return ""
	}
	agent := v.episode.Agents[s.owner]
	role, _ := agent.Role(s.ID)
	side := "alpha"
	if s.owner == 1 {
		side = "beta"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- fleetmind debug report ---\n")
	fmt.Fprintf(&b, "tick=%d ship=%s%d side=%s\n", v.episode.World.Tick(), agent.prefix, s.ID, side)
	fmt.Fprintf(&b, "pos=(%d,%d) hp=%d fire_cd=%d move_cd=%d role=%s\n\n", s.X, s.Y, s.HP, s.FireCD, s.MoveCD, role)

	b.WriteString("agent counters:\n")
	b.WriteString(agent.Stats.Snapshot())

	b.WriteString("\nenemy memory:\n")
	ids := make([]int, 0, len(agent.memory))
	for id := range agent.memory {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	if len(ids) == 0 {
		b.WriteString("(no contacts yet)\n")
	}
	for _, id := range ids {
		m := agent.memory[id]
		fmt.Fprintf(&b, "  %s last seen (%d,%d) at T=%d\n", agent.foeLabel(id), m.X, m.Y, m.Turn)
	}

	b.WriteString("\nrecent decisions:\n")
	label := agent.label(s.ID)
	for _, e := range v.decLog.Recent() {
		if e.Label == label {
			fmt.Fprintf(&b, "  T%d %s\n", e.Tick, e.Message)
		}
	}
	return b.String()
}

// copySelectedReport puts the selected ship's report on the system
// clipboard and flashes a status line.
func (v *Viewer) copySelectedReport() {
	s := v.selectedShip()
	if s == nil {
		v.flashStatus("no ship selected")
		return
	}
	if err := clipboard.WriteAll(v.shipDebugReport(s)); err != nil {
		v.flashStatus("clipboard error: " + err.Error())
		return
	}
	v.flashStatus("report copied to clipboard")
}

func (v *Viewer) flashStatus(msg string) {
	v.statusMessage = msg
	v.statusUntil = v.episode.World.Tick() + 180
}
