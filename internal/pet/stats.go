// Package pet implements the virtual pet simulation: bounded stats, timed
// decay, the item catalog, the selection state machine and the scene flow.
//
// Everything here runs on a single logical thread. The platform layer calls
// into it from its update loop and advances time through a Scheduler, so no
// type in this package is safe for concurrent use.
package pet

import (
	"fmt"
	"strings"
)

// Stat names one pet counter.
type Stat string

const (
	StatHealth Stat = "health"
	StatFun    Stat = "fun"
)

// AllStats lists the known stats in display order.
var AllStats = []Stat{StatHealth, StatFun}

// ParseStat resolves a stat name.
func ParseStat(name string) (Stat, error) {
	s := Stat(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllStats {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("pet: unknown stat %q", name)
}

// Stats is a snapshot of the pet's counters. Values never go below zero
// and have no upper cap.
type Stats struct {
	Health int
	Fun    int
}

// Get returns the value of a stat. Unknown stats read as zero.
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatHealth:
		return s.Health
	case StatFun:
		return s.Fun
	}
	return 0
}

func (s *Stats) set(stat Stat, v int) {
	switch stat {
	case StatHealth:
		s.Health = v
	case StatFun:
		s.Fun = v
	}
}

// String formats the snapshot the way the HUD shows it.
func (s Stats) String() string {
	return fmt.Sprintf("Health: %d  Fun: %d", s.Health, s.Fun)
}

// DeltaVector is an immutable set of signed adjustments keyed by stat.
// Stats absent from the vector are left untouched when it is applied.
type DeltaVector struct {
	deltas map[Stat]int
}

// NewDeltaVector copies m into a new vector. Unknown stats are dropped.
func NewDeltaVector(m map[Stat]int) DeltaVector {
	v := DeltaVector{deltas: make(map[Stat]int, len(m))}
	for _, s := range AllStats {
		if d, ok := m[s]; ok {
			v.deltas[s] = d
		}
	}
	return v
}

// Delta is shorthand for a vector touching health and fun.
func Delta(health, fun int) DeltaVector {
	return NewDeltaVector(map[Stat]int{StatHealth: health, StatFun: fun})
}

// Get returns the delta for a stat and whether the vector names it.
func (v DeltaVector) Get(stat Stat) (int, bool) {
	d, ok := v.deltas[stat]
	return d, ok
}

// Stats returns the stats present in the vector in display order.
func (v DeltaVector) Stats() []Stat {
	out := make([]Stat, 0, len(v.deltas))
	for _, s := range AllStats {
		if _, ok := v.deltas[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Scale returns a copy with every delta multiplied by f, rounded half away
// from zero.
func (v DeltaVector) Scale(f float64) DeltaVector {
	out := DeltaVector{deltas: make(map[Stat]int, len(v.deltas))}
	for k, d := range v.deltas {
		scaled := float64(d) * f
		if scaled < 0 {
			out.deltas[k] = int(scaled - 0.5)
		} else {
			out.deltas[k] = int(scaled + 0.5)
		}
	}
	return out
}

// String renders the vector as "health+20 fun+0".
func (v DeltaVector) String() string {
	parts := make([]string, 0, len(v.deltas))
	for _, s := range v.Stats() {
		parts = append(parts, fmt.Sprintf("%s%+d", s, v.deltas[s]))
	}
	return strings.Join(parts, " ")
}

// Outcome is the result of applying one vector.
type Outcome struct {
	Stats    Stats
	GameOver bool
	Depleted []Stat // stats that ran out during this application
}

// StatTracker owns the pet's stats and is the only thing that mutates them.
type StatTracker struct {
	stats Stats
}

// NewStatTracker creates a tracker starting at initial.
func NewStatTracker(initial Stats) *StatTracker {
	if initial.Health < 0 {
		initial.Health = 0
	}
	if initial.Fun < 0 {
		initial.Fun = 0
	}
	return &StatTracker{stats: initial}
}

// Stats returns the current snapshot.
func (t *StatTracker) Stats() Stats {
	return t.stats
}

// ApplyDelta adds every delta in v to the matching stat. A stat that would go
// negative is stored as zero. A stat that runs out, either by going negative or
// by a negative delta landing exactly on zero, ends the game.
func (t *StatTracker) ApplyDelta(v DeltaVector) Outcome {
	var out Outcome
	for _, stat := range v.Stats() {
		d := v.deltas[stat]
		next := t.stats.Get(stat) + d
		if next < 0 || (next == 0 && d < 0) {
			next = 0
			out.Depleted = append(out.Depleted, stat)
		}
		t.stats.set(stat, next)
	}
	out.Stats = t.stats
	out.GameOver = len(out.Depleted) > 0
	return out
}
