package pet

import (
	"testing"
	"time"
)

func TestDecayClockTenTicks(t *testing.T) {
	sched := NewTickScheduler()
	tr := NewStatTracker(Stats{Health: 100, Fun: 100})
	clock := NewDecayClock(sched, tr)

	var outcomes []Outcome
	clock.Start(1000*time.Millisecond, Delta(-10, -5), func(o Outcome) {
		outcomes = append(outcomes, o)
	})

	for i := 0; i < 10; i++ {
		sched.Advance(time.Second)
	}

	if len(outcomes) != 10 {
		t.Fatalf("got %d ticks, want 10", len(outcomes))
	}
	for i, o := range outcomes[:9] {
		if o.GameOver {
			t.Fatalf("tick %d signalled game over early: %+v", i+1, o.Stats)
		}
	}
	last := outcomes[9]
	if !last.GameOver {
		t.Error("tick 10 should signal game over")
	}
	if last.Stats != (Stats{Health: 0, Fun: 50}) {
		t.Errorf("stats after 10 ticks = %+v, want {0 50}", last.Stats)
	}
	if clock.Ticks() != 10 {
		t.Errorf("Ticks() = %d", clock.Ticks())
	}
}

// leakyScheduler ignores Cancel, like a host that never tears its timers down.
type leakyScheduler struct {
	*TickScheduler
	cancels int
}

func (l *leakyScheduler) Cancel(TimerID) {
	l.cancels++
}

func TestDecayClockStopHoldsWithLeakyTimer(t *testing.T) {
	sched := &leakyScheduler{TickScheduler: NewTickScheduler()}
	tr := NewStatTracker(Stats{Health: 100, Fun: 100})
	clock := NewDecayClock(sched, tr)

	calls := 0
	clock.Start(time.Second, Delta(-10, -5), func(Outcome) { calls++ })
	sched.Advance(3 * time.Second)

	clock.Stop()
	sched.Advance(10 * time.Second)

	if calls != 3 {
		t.Errorf("onTick called %d times, want 3", calls)
	}
	if tr.Stats() != (Stats{Health: 70, Fun: 85}) {
		t.Errorf("stats changed after Stop: %+v", tr.Stats())
	}
	if sched.cancels != 1 {
		t.Errorf("Stop should still ask the scheduler to cancel, got %d calls", sched.cancels)
	}
	if clock.Running() {
		t.Error("Running() after Stop")
	}
}

func TestDecayClockRestart(t *testing.T) {
	sched := NewTickScheduler()
	tr := NewStatTracker(Stats{Health: 100, Fun: 100})
	clock := NewDecayClock(sched, tr)

	clock.Start(time.Second, Delta(-1, 0), nil)
	sched.Advance(500 * time.Millisecond)
	clock.Start(time.Second, Delta(0, -1), nil)
	sched.Advance(2 * time.Second)

	if tr.Stats() != (Stats{Health: 100, Fun: 98}) {
		t.Errorf("stats = %+v, only the restarted vector should apply", tr.Stats())
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending() = %d, restart must not leak the old timer", sched.Pending())
	}
}

func TestDecayClockStopIsIdempotent(t *testing.T) {
	clock := NewDecayClock(NewTickScheduler(), NewStatTracker(Stats{}))
	clock.Stop()
	clock.Stop()
	if clock.Running() {
		t.Error("never-started clock reports running")
	}
}
