package game

import (
	"fmt"
	"strings"
)

// AgentStats accumulates per-episode decision counters. The headless report
// and the inspector read them; the decision paths only ever increment.
type AgentStats struct {
	Turns           int
	ActionsByRole   [roleCount]int
	ShotsFired      int
	RetreatMoves    int // low-health direct approaches toward home
	FallbackWalks   int // random walks that exhausted every attempt
	Reassignments   int
	Evictions       int
	Seeded          int
	UnknownRoleHits int // dispatch hits on ids missing from the role map
}

// Snapshot renders the counters as a short multi-line report.
func (st *AgentStats) Snapshot() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turns=%d\n", st.Turns)
	fmt.Fprintf(&sb, "actions: explore=%d attack=%d defend=%d shots=%d\n",
		st.ActionsByRole[RoleExplore], st.ActionsByRole[RoleAttack], st.ActionsByRole[RoleDefend], st.ShotsFired)
	fmt.Fprintf(&sb, "scheduler: seeded=%d reassigned=%d evicted=%d unknown_role=%d\n",
		st.Seeded, st.Reassignments, st.Evictions, st.UnknownRoleHits)
	fmt.Fprintf(&sb, "movement: retreats=%d fallback_walks=%d\n", st.RetreatMoves, st.FallbackWalks)
	return sb.String()
}
