package game

// Ship is one unit snapshot from the current tick's observation. Ids are
// stable across ticks and unique within [0, 1000); positions are grid cells.
type Ship struct {
	ID     int
	X, Y   int
	HP     int // 1-100
	FireCD int // firing cooldown, 0 = ready, max 10
	MoveCD int // movement cooldown, 0 = full speed, max 3
}

// PlanetReport is one visible planet's occupation state.
// Progress is -1 for unoccupied, 0 for first-player owned, 100 for
// second-player owned; values between mean an ongoing contest.
type PlanetReport struct {
	X, Y     int
	Progress int
}

// Observation is the engine's per-tick view handed to the agent. All slices
// are owned by the engine and valid only for the duration of the tick.
type Observation struct {
	Map         Grid
	AlliedShips []Ship
	EnemyShips  []Ship
	Planets     []PlanetReport
	Resources   int
}

// indexShips builds the per-tick id→ship lookup used during role dispatch.
// An empty ship list is valid and yields an empty map.
func indexShips(ships []Ship) map[int]Ship {
	idx := make(map[int]Ship, len(ships))
	for _, s := range ships {
		idx[s.ID] = s
	}
	return idx
}

// ActionType distinguishes the two ship commands.
type ActionType int

const (
	ActionMove ActionType = iota
	ActionFire
)

func (t ActionType) String() string {
	switch t {
	case ActionMove:
		return "move"
	case ActionFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Action is a single per-ship command in the outgoing batch. Speed is only
// meaningful for moves.
type Action struct {
	ShipID int
	Type   ActionType
	Dir    Direction
	Speed  int // cells to travel, 0-3; ignored when firing
}

// MoveAction builds a move command.
func MoveAction(id int, dir Direction, speed int) Action {
	return Action{ShipID: id, Type: ActionMove, Dir: dir, Speed: speed}
}

// FireAction builds a fire command.
func FireAction(id int, dir Direction) Action {
	return Action{ShipID: id, Type: ActionFire, Dir: dir}
}

// ActionBatch is the complete per-tick reply to the engine: at most one
// action per allied ship plus the build order.
type ActionBatch struct {
	ShipsActions []Action
	Construction int // new ships to build this tick, 0-10
}
