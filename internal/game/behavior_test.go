package game

import "testing"

// anchoredAgent returns an agent with planet anchors fixed for behaviour
// tests, bypassing discovery.
func anchoredAgent(homeX, homeY int) *Agent {
	a := NewAgent(nil, 1)
	a.turn = 1
	a.homeX, a.homeY = homeX, homeY
	a.enemyX = a.tuning.BoardSize - 1 - homeX
	a.enemyY = a.tuning.BoardSize - 1 - homeY
	a.anchored = true
	return a
}

func openObs(size int, allied, enemies []Ship) *Observation {
	g := NewGrid(size)
	for y := range g {
		for x := range g[y] {
			g[y][x] = 0
		}
	}
	return &Observation{Map: g, AlliedShips: allied, EnemyShips: enemies}
}

func TestDefend_FiresAtAlignedEnemy(t *testing.T) {
	a := anchoredAgent(9, 9)
	s := Ship{ID: 2, X: 50, Y: 50, HP: 100}
	obs := openObs(100, []Ship{s}, []Ship{{ID: 1, X: 58, Y: 50, HP: 100}})

	act := a.defendAction(obs, indexShips(obs.AlliedShips), 2)
	if act.Type != ActionFire || act.Dir != DirRight {
		t.Fatalf("enemy 8 right: got %s %s, want fire right", act.Type, act.Dir)
	}
}

func TestDefend_HoldsFireOnCooldown(t *testing.T) {
	a := anchoredAgent(9, 9)
	s := Ship{ID: 2, X: 50, Y: 50, HP: 100, FireCD: 4}
	obs := openObs(100, []Ship{s}, []Ship{{ID: 1, X: 55, Y: 50, HP: 100}})

	act := a.defendAction(obs, indexShips(obs.AlliedShips), 2)
	if act.Type == ActionFire {
		t.Fatal("fired with the weapon on cooldown")
	}
}

func TestDefend_EnemyBeyondRadiusIgnored(t *testing.T) {
	a := anchoredAgent(9, 9)
	s := Ship{ID: 2, X: 50, Y: 50, HP: 100}
	obs := openObs(100, []Ship{s}, []Ship{{ID: 1, X: 59, Y: 50, HP: 100}})

	act := a.defendAction(obs, indexShips(obs.AlliedShips), 2)
	if act.Type == ActionFire {
		t.Fatal("enemy 9 cells out is beyond the radius-8 envelope")
	}
}

func TestDefend_WoundedShipFallsBackHome(t *testing.T) {
	// Ship (50,50) at 20 hp, home (9,9), nothing in range.
	// Offsets tie at 41, the y branch wins, stride min(3,41)=3.
	a := anchoredAgent(9, 9)
	s := Ship{ID: 2, X: 50, Y: 50, HP: 20}
	obs := openObs(100, []Ship{s}, nil)

	act := a.defendAction(obs, indexShips(obs.AlliedShips), 2)
	if act.Type != ActionMove || act.Dir != DirUp || act.Speed != 3 {
		t.Fatalf("got %s %s x%d, want move up x3", act.Type, act.Dir, act.Speed)
	}
	if a.Stats.RetreatMoves != 1 {
		t.Errorf("RetreatMoves = %d, want 1", a.Stats.RetreatMoves)
	}
}

func TestDefend_HealthyShipWalksThePicket(t *testing.T) {
	a := anchoredAgent(9, 9)
	s := Ship{ID: 2, X: 10, Y: 9, HP: 100}
	obs := openObs(100, []Ship{s}, nil)

	for i := 0; i < 20; i++ {
		act := a.defendAction(obs, indexShips(obs.AlliedShips), 2)
		if act.Type != ActionMove || act.Speed != 1 {
			t.Fatalf("picket walk must be single-cell moves, got %s x%d", act.Type, act.Speed)
		}
	}
}

func TestAttack_MovesTowardEnemyAnchor(t *testing.T) {
	a := anchoredAgent(9, 9) // enemy anchor (90,90)
	s := Ship{ID: 1, X: 50, Y: 50, HP: 100}
	obs := openObs(100, []Ship{s}, nil)

	act := a.attackAction(obs, indexShips(obs.AlliedShips), 1)
	if act.Type != ActionMove || act.Dir != DirDown || act.Speed != 3 {
		t.Fatalf("got %s %s x%d, want move down x3 (tied offsets, y wins)", act.Type, act.Dir, act.Speed)
	}
}

func TestAttack_MoveCooldownCapsSpeed(t *testing.T) {
	a := anchoredAgent(9, 9)
	s := Ship{ID: 1, X: 50, Y: 50, HP: 100, MoveCD: 2}
	obs := openObs(100, []Ship{s}, nil)

	act := a.attackAction(obs, indexShips(obs.AlliedShips), 1)
	if act.Type != ActionMove || act.Speed != 1 {
		t.Fatalf("cooldown must cap the stride at 1, got %s x%d", act.Type, act.Speed)
	}
	if act.Dir != DirDown {
		t.Fatalf("cooldown changed the heading: %s", act.Dir)
	}
}

func TestAttack_PrefersFiringOverAdvancing(t *testing.T) {
	a := anchoredAgent(9, 9)
	s := Ship{ID: 1, X: 50, Y: 50, HP: 100}
	obs := openObs(100, []Ship{s}, []Ship{{ID: 3, X: 50, Y: 44, HP: 100}})

	act := a.attackAction(obs, indexShips(obs.AlliedShips), 1)
	if act.Type != ActionFire || act.Dir != DirUp {
		t.Fatalf("got %s %s, want fire up", act.Type, act.Dir)
	}
}

func TestExplore_SeeksDensestCluster(t *testing.T) {
	a := anchoredAgent(9, 9)
	s := Ship{ID: 0, X: 10, Y: 10, HP: 100}
	obs := openObs(100, []Ship{s}, nil)
	// Lone field at (30,10); 3×3 cluster with corner (60,40).
	obs.Map[10][30] = CellResource
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			obs.Map[40+dy][60+dx] = CellResource
		}
	}

	act := a.exploreAction(obs, indexShips(obs.AlliedShips), 0)
	if act.Type != ActionMove {
		t.Fatalf("got %s, want a move", act.Type)
	}
	// Cluster corner is at (60,40): dx=50 > dy=30, so the first stride
	// heads right, not toward the lone field's row.
	if act.Dir != DirRight || act.Speed != 3 {
		t.Fatalf("got %s x%d, want right x3 toward the dense cluster", act.Dir, act.Speed)
	}
}

func TestExplore_TieBreaksRowMajorFirstSeen(t *testing.T) {
	g := NewGrid(50)
	for y := range g {
		for x := range g[y] {
			g[y][x] = 0
		}
	}
	// Two identical 2×2 clusters; the one whose corner scans first wins.
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			g[5+dy][20+dx] = CellResource
			g[30+dy][5+dx] = CellResource
		}
	}
	x, y, ok := bestExploreTarget(g)
	if !ok {
		t.Fatal("clusters present but no target found")
	}
	if x != 20 || y != 5 {
		t.Fatalf("target (%d,%d), want (20,5) from the row-major first-seen tie-break", x, y)
	}
}

func TestExplore_StaleCellsDoNotAttract(t *testing.T) {
	g := NewGrid(20)
	for y := range g {
		for x := range g[y] {
			g[y][x] = 0
		}
	}
	g[5][5] = CellResource | CellStale
	if _, _, ok := bestExploreTarget(g); ok {
		t.Fatal("stale intel tile selected as an explore target")
	}
}

func TestExplore_ReflexFiresWhenThreatened(t *testing.T) {
	a := anchoredAgent(9, 9)
	s := Ship{ID: 0, X: 10, Y: 10, HP: 100}
	obs := openObs(100, []Ship{s}, []Ship{{ID: 1, X: 10, Y: 14, HP: 100}})
	obs.Map[40][60] = CellResource

	act := a.exploreAction(obs, indexShips(obs.AlliedShips), 0)
	if act.Type != ActionFire || act.Dir != DirDown {
		t.Fatalf("got %s %s, want reflex fire down", act.Type, act.Dir)
	}
}

func TestExplore_DriftsOffHomeSideWhenMapIsBarren(t *testing.T) {
	a := anchoredAgent(9, 9)
	s := Ship{ID: 0, X: 40, Y: 40, HP: 100}
	obs := openObs(100, []Ship{s}, nil)

	for i := 0; i < 20; i++ {
		act := a.exploreAction(obs, indexShips(obs.AlliedShips), 0)
		if act.Type != ActionMove || act.Speed != 1 {
			t.Fatalf("got %s x%d, want single-cell drift", act.Type, act.Speed)
		}
		if act.Dir != DirRight && act.Dir != DirDown {
			t.Fatalf("home at the low corner: drift %s, want right or down", act.Dir)
		}
	}
}

func TestExplore_DriftReversesForHighHome(t *testing.T) {
	a := anchoredAgent(90, 90)
	s := Ship{ID: 0, X: 40, Y: 40, HP: 100}
	obs := openObs(100, []Ship{s}, nil)

	for i := 0; i < 20; i++ {
		act := a.exploreAction(obs, indexShips(obs.AlliedShips), 0)
		if act.Dir != DirLeft && act.Dir != DirUp {
			t.Fatalf("home at the high corner: drift %s, want left or up", act.Dir)
		}
	}
}
