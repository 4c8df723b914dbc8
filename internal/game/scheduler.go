package game

import "fmt"

// Role scheduler: runs once per tick between the memory update and behaviour
// dispatch. Transitions, in order: evict ids that vanished from the tick,
// seed roles for new ids, then rebalance toward the phase's target
// distribution. The role map's key set always ends the tick equal to the
// tick's allied id set.

// roleTargets returns the desired per-role ship counts for the given turn.
// Three phases: open on exploration, switch wholesale to attack, then split
// the fleet between exploration and home defence. Each phase keeps a floor
// of one ship in its named roles so the posture never drops to zero.
func (tu *Tuning) roleTargets(turn, total int) [roleCount]int {
	var t [roleCount]int
	switch {
	case turn < tu.MidgameTurn:
		t[RoleExplore] = max(total, 1)
	case turn < tu.LategameTurn:
		t[RoleAttack] = max(total, 1)
	default:
		t[RoleExplore] = max(total/2, 1)
		t[RoleDefend] = max(total/2, 1)
	}
	return t
}

// assignRoles is the per-tick role state machine.
func (a *Agent) assignRoles(allied []Ship) {
	present := make(map[int]bool, len(allied))
	for _, s := range allied {
		present[s.ID] = true
	}

	// Evict ids no longer reported: destroyed or permanently out of sensor
	// range. The two cases are indistinguishable and treated the same.
	for id := range a.roles {
		if !present[id] {
			delete(a.roles, id)
			a.Stats.Evictions++
			a.simLog.Add(a.turn, a.label(id), a.player, "role", "evict", "ship gone", 0)
		}
	}

	// Seed fresh ids deterministically from the id itself. Idempotent: a
	// second pass over the same tick changes nothing.
	for _, s := range allied {
		if _, ok := a.roles[s.ID]; !ok {
			r := seedRole(s.ID)
			a.roles[s.ID] = r
			a.Stats.Seeded++
			a.simLog.AddVerbose(a.turn, a.label(s.ID), a.player, "role", "seed", r.String(), 0)
		}
	}

	a.rebalance(allied)
}

// rebalance pulls ships out of over-target roles into under-target ones
// until every deficit is filled or no eligible donor remains. Donors are
// scanned in allied-list order (the tick's stable order), first eligible
// wins. Ships below the health threshold are never pushed into attack.
func (a *Agent) rebalance(allied []Ship) {
	targets := a.tuning.roleTargets(a.turn, len(allied))
	var counts [roleCount]int
	for _, s := range allied {
		counts[a.roles[s.ID]]++
	}

	for role := RoleExplore; role < roleCount; role++ {
		for counts[role] < targets[role] {
			donor, ok := a.findDonor(allied, role, counts, targets)
			if !ok {
				break
			}
			from := a.roles[donor.ID]
			a.roles[donor.ID] = role
			counts[from]--
			counts[role]++
			a.Stats.Reassignments++
			a.simLog.Add(a.turn, a.label(donor.ID), a.player, "role", "reassign",
				fmt.Sprintf("%s → %s", from, role), 0)
			a.decLog.Add(a.turn, a.label(donor.ID), fmt.Sprintf("role %s → %s", from, role))
		}
	}
}

// findDonor returns the first allied ship whose current role is over its own
// target and which may legally take the deficient role.
func (a *Agent) findDonor(allied []Ship, to Role, counts, targets [roleCount]int) (Ship, bool) {
	for _, s := range allied {
		from := a.roles[s.ID]
		if from == to {
			continue
		}
		if counts[from] <= targets[from] {
			continue
		}
		if to == RoleAttack && s.HP < a.tuning.LowHPThreshold {
			continue
		}
		return s, true
	}
	return Ship{}, false
}
