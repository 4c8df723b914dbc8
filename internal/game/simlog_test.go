package game

import "testing"

func TestSimLog_NilIsSafe(t *testing.T) {
	var sl *SimLog
	sl.Add(1, "A0", "alpha", "role", "seed", "explore", 0)
	sl.AddVerbose(1, "A0", "alpha", "action", "move", "right x3", 3)
	if sl.Entries() != nil {
		t.Fatal("nil log returned entries")
	}
	if sl.CountCategory("role", "") != 0 {
		t.Fatal("nil log counted entries")
	}
}

func TestSimLog_VerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, "A0", "alpha", "action", "move", "right x3", 3)
	quiet.Add(1, "A0", "alpha", "role", "seed", "explore", 0)
	if got := len(quiet.Entries()); got != 1 {
		t.Fatalf("quiet log holds %d entries, want only the unconditional one", got)
	}

	loud := NewSimLog(true)
	loud.AddVerbose(1, "A0", "alpha", "action", "move", "right x3", 3)
	if len(loud.Entries()) != 1 {
		t.Fatal("verbose log dropped a verbose entry")
	}
}

func TestSimLog_Filters(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "A0", "alpha", "role", "seed", "explore", 0)
	sl.Add(2, "A2", "alpha", "role", "reassign", "explore → attack", 0)
	sl.Add(3, "B1", "beta", "action", "fire", "left", 0)
	sl.Add(4, "A2", "alpha", "role", "reassign", "attack → defend", 0)

	if got := len(sl.Filter("role", "")); got != 3 {
		t.Errorf("Filter(role) = %d entries, want 3", got)
	}
	if got := len(sl.FilterShip("A2")); got != 2 {
		t.Errorf("FilterShip(A2) = %d entries, want 2", got)
	}
	if got := len(sl.FilterTickRange(2, 3)); got != 2 {
		t.Errorf("FilterTickRange(2,3) = %d entries, want 2", got)
	}

	last, ok := sl.LastOf("role", "reassign")
	if !ok || last.Tick != 4 {
		t.Errorf("LastOf(role, reassign) = tick %d, want 4", last.Tick)
	}
	if !sl.HasEntry("role", "reassign", "defend") {
		t.Error("HasEntry missed the defend reassignment")
	}
	if sl.HasEntry("action", "fire", "right") {
		t.Error("HasEntry matched a value substring that never occurred")
	}
}
