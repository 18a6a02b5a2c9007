package game

import (
	"fmt"
	"strings"
)

// DecisionLogEntry is one recorded decision event.
type DecisionLogEntry struct {
	Tick     int
	Actor    string  // tank label, e.g. "bot", "p1", or "--" for global events
	Category string  // state, path, threat, combat, recovery, round
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] bot  state   change   chasing → dodging
func (e DecisionLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-4s %-9s %-14s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// DecisionLog collects structured events from the decision core. It is
// unbounded and machine-readable, consumed by tests, the headless reporter
// and the in-game debug report.
type DecisionLog struct {
	entries []DecisionLogEntry
	verbose bool
}

// NewDecisionLog creates a DecisionLog. If verbose is true, per-tick detail
// entries are also recorded.
func NewDecisionLog(verbose bool) *DecisionLog {
	return &DecisionLog{verbose: verbose}
}

// Add records a new entry.
func (dl *DecisionLog) Add(tick int, actor, category, key, value string, numVal float64) {
	dl.entries = append(dl.entries, DecisionLogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (dl *DecisionLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if !dl.verbose {
		return
	}
	dl.Add(tick, actor, category, key, value, numVal)
}

// Entries returns the recorded events in order.
func (dl *DecisionLog) Entries() []DecisionLogEntry {
	return dl.entries
}

// Filter returns the entries matching category and key, in order. An empty
// key matches every entry in the category.
func (dl *DecisionLog) Filter(category, key string) []DecisionLogEntry {
	var out []DecisionLogEntry
	for _, e := range dl.entries {
		if e.Category == category && (key == "" || e.Key == key) {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match category and key. An empty
// key matches every entry in the category.
func (dl *DecisionLog) CountCategory(category, key string) int {
	n := 0
	for _, e := range dl.entries {
		if e.Category == category && (key == "" || e.Key == key) {
			n++
		}
	}
	return n
}

// Tail formats the last n entries, newest last.
func (dl *DecisionLog) Tail(n int) string {
	start := len(dl.entries) - n
	if start < 0 {
		start = 0
	}
	var b strings.Builder
	for _, e := range dl.entries[start:] {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
