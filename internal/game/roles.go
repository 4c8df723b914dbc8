package game

// Role classifies what a ship is trying to achieve this tick. The scheduler
// owns the assignment; behaviours only read it.
type Role int

const (
	RoleExplore Role = iota // hunt resource fields, expand the visible map
	RoleAttack              // push toward the enemy planet, engage on sight
	RoleDefend              // screen the home planet, retreat when hurt
	roleCount               // sentinel
)

func (r Role) String() string {
	switch r {
	case RoleExplore:
		return "explore"
	case RoleAttack:
		return "attack"
	case RoleDefend:
		return "defend"
	default:
		return "unknown"
	}
}

// seedRole returns the deterministic initial role for a freshly-seen ship id.
// The modulo spread gives a balanced baseline before any rebalancing runs.
func seedRole(id int) Role {
	return Role(id % int(roleCount))
}
