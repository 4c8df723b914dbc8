package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a headless episode.
type SimLogEntry struct {
	Tick     int
	Ship     string  // label e.g. "A12", "B3", or "--" for global events
	Player   string  // "alpha", "beta", or "--"
	Category string  // role, anchor, action, memory, build, world
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] A12  role    reassign   explore → attack
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-8s %-14s %s",
		e.Tick, e.Ship, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a headless episode. Unlike
// DecisionLog (UI ring buffer), SimLog is unbounded and machine-readable,
// which is what the invariant tests filter over.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick position and
// action entries are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry. A nil SimLog is a no-op so decision code can log
// unconditionally.
func (sl *SimLog) Add(tick int, ship, player, category, key, value string, numVal float64) {
	if sl == nil {
		return
	}
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Ship:     ship,
		Player:   player,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, ship, player, category, key, value string, numVal float64) {
	if sl == nil || !sl.verbose {
		return
	}
	sl.Add(tick, ship, player, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	if sl == nil {
		return nil
	}
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.Entries() {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterShip returns entries for a specific ship label.
func (sl *SimLog) FilterShip(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.Entries() {
		if e.Ship == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.Entries() {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and
// value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.Entries() {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.Entries() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
