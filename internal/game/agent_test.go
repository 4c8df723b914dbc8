package game

import "testing"

func obsWithPlanets(allied, enemies []Ship, planets []PlanetReport, resources int) *Observation {
	obs := openObs(100, allied, enemies)
	obs.Planets = planets
	obs.Resources = resources
	return obs
}

func TestAgent_AnchorsFromFirstReportMirrored(t *testing.T) {
	a := NewAgent(nil, 1)
	obs := obsWithPlanets(shipsWithIDs(0), nil, []PlanetReport{{X: 9, Y: 9, Progress: 0}}, 0)
	a.GetAction(obs)

	hx, hy, ex, ey, ok := a.Anchors()
	if !ok {
		t.Fatal("anchors not set after a planet report")
	}
	if hx != 9 || hy != 9 {
		t.Fatalf("home (%d,%d), want (9,9)", hx, hy)
	}
	if ex != 90 || ey != 90 {
		t.Fatalf("enemy anchor (%d,%d), want the mirrored corner (90,90)", ex, ey)
	}
}

func TestAgent_AnchorsNeverRecomputed(t *testing.T) {
	a := NewAgent(nil, 1)
	a.GetAction(obsWithPlanets(shipsWithIDs(0), nil, []PlanetReport{{X: 9, Y: 9, Progress: 0}}, 0))
	// A later tick reports a different planet first: the anchor must hold.
	a.GetAction(obsWithPlanets(shipsWithIDs(0), nil, []PlanetReport{{X: 40, Y: 70, Progress: -1}}, 0))

	hx, hy, _, _, _ := a.Anchors()
	if hx != 9 || hy != 9 {
		t.Fatalf("home anchor drifted to (%d,%d)", hx, hy)
	}
}

func TestAgent_NoAnchorsWithoutPlanets(t *testing.T) {
	a := NewAgent(nil, 1)
	a.GetAction(obsWithPlanets(shipsWithIDs(0), nil, nil, 0))
	if _, _, _, _, ok := a.Anchors(); ok {
		t.Fatal("anchors set with no planet report")
	}
}

func TestAgent_EnemyMemoryTracksLastSighting(t *testing.T) {
	a := NewAgent(nil, 1)
	a.GetAction(obsWithPlanets(shipsWithIDs(0), []Ship{{ID: 7, X: 20, Y: 30, HP: 100}}, nil, 0))

	m, ok := a.Memory(7)
	if !ok {
		t.Fatal("sighted enemy missing from memory")
	}
	if m.X != 20 || m.Y != 30 || m.Turn != 1 {
		t.Fatalf("sighting = %+v, want (20,30) at turn 1", m)
	}

	// The contact vanishes; its last sighting must survive.
	a.GetAction(obsWithPlanets(shipsWithIDs(0), nil, nil, 0))
	if m, ok = a.Memory(7); !ok || m.Turn != 1 {
		t.Fatalf("vanished contact pruned or overwritten: %+v ok=%v", m, ok)
	}

	// Reappearing refreshes position and tick.
	a.GetAction(obsWithPlanets(shipsWithIDs(0), []Ship{{ID: 7, X: 25, Y: 30, HP: 80}}, nil, 0))
	if m, _ = a.Memory(7); m.X != 25 || m.Turn != 3 {
		t.Fatalf("refresh failed: %+v", m)
	}
}

func TestAgent_TurnCounterIncrementsOncePerCall(t *testing.T) {
	a := NewAgent(nil, 1)
	for i := 1; i <= 5; i++ {
		a.GetAction(obsWithPlanets(nil, nil, nil, 0))
		if a.Turn() != i {
			t.Fatalf("after call %d: turn = %d", i, a.Turn())
		}
	}
}

func TestAgent_ConstructionOrder(t *testing.T) {
	a := NewAgent(nil, 1)
	cases := []struct{ resources, want int }{
		{0, 0},
		{99, 0},
		{100, 1},
		{350, 3},
		{1000, 10},
		{5000, 10}, // capped
	}
	for _, tc := range cases {
		if got := a.constructionOrder(tc.resources); got != tc.want {
			t.Errorf("resources %d: construction %d, want %d", tc.resources, got, tc.want)
		}
	}
}

func TestAgent_OneActionPerShip(t *testing.T) {
	a := NewAgent(nil, 1)
	allied := shipsWithIDs(0, 1, 2, 3, 4)
	batch := a.GetAction(obsWithPlanets(allied, nil, []PlanetReport{{X: 9, Y: 9, Progress: 0}}, 250))

	if len(batch.ShipsActions) != len(allied) {
		t.Fatalf("%d actions for %d ships", len(batch.ShipsActions), len(allied))
	}
	seen := map[int]bool{}
	valid := map[int]bool{}
	for _, s := range allied {
		valid[s.ID] = true
	}
	for _, act := range batch.ShipsActions {
		if seen[act.ShipID] {
			t.Fatalf("ship %d got two actions", act.ShipID)
		}
		if !valid[act.ShipID] {
			t.Fatalf("action for unknown ship %d", act.ShipID)
		}
		seen[act.ShipID] = true
		if act.Dir < DirRight || act.Dir >= directionCount {
			t.Fatalf("ship %d: direction %d outside the wire encoding", act.ShipID, act.Dir)
		}
		if act.Type == ActionMove && (act.Speed < 0 || act.Speed > 3) {
			t.Fatalf("ship %d: speed %d outside [0,3]", act.ShipID, act.Speed)
		}
	}
	if batch.Construction != 2 {
		t.Fatalf("construction = %d, want 2 for 250 resources", batch.Construction)
	}
}

func TestAgent_EmptyObservationIsValid(t *testing.T) {
	a := NewAgent(nil, 1)
	batch := a.GetAction(obsWithPlanets(nil, nil, nil, 0))
	if len(batch.ShipsActions) != 0 || batch.Construction != 0 {
		t.Fatalf("empty tick produced %+v", batch)
	}
}

func TestAgent_LifecycleHooksAreInert(t *testing.T) {
	a := NewAgent(nil, 1)
	if err := a.Load("/nonexistent/weights"); err != nil {
		t.Fatalf("Load must be a no-op, got %v", err)
	}
	a.Eval()
	a.To("cuda")
	if a.Turn() != 0 {
		t.Fatal("lifecycle hooks advanced the turn counter")
	}
}

func TestAgent_ContactLogsCarryTheFoePrefix(t *testing.T) {
	a := NewAgent(nil, 1)
	sl := NewSimLog(true)
	a.AttachSimLog(sl, "alpha", "A", "B")

	a.GetAction(obsWithPlanets(shipsWithIDs(0), []Ship{{ID: 7, X: 20, Y: 30, HP: 100}}, nil, 0))
	a.GetAction(obsWithPlanets(shipsWithIDs(0), []Ship{{ID: 7, X: 25, Y: 30, HP: 100}}, nil, 0))

	contact, ok := sl.LastOf("memory", "new_contact")
	if !ok || contact.Ship != "B7" {
		t.Fatalf("new_contact labelled %q, want the enemy label B7", contact.Ship)
	}
	moved, ok := sl.LastOf("memory", "moved")
	if !ok || moved.Ship != "B7" {
		t.Fatalf("moved labelled %q, want the enemy label B7", moved.Ship)
	}
}
