package pet

import (
	"testing"
	"time"
)

func TestTickSchedulerRepeatForever(t *testing.T) {
	s := NewTickScheduler()
	fired := 0
	s.Schedule(time.Second, RepeatForever, func() { fired++ })

	s.Advance(999 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired %d times before the first interval", fired)
	}
	s.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired %d times at 1s, want 1", fired)
	}

	// A long advance fires every elapsed interval.
	s.Advance(5 * time.Second)
	if fired != 6 {
		t.Errorf("fired %d times at 6s, want 6", fired)
	}
	if s.Now() != 6*time.Second {
		t.Errorf("Now() = %v, want 6s", s.Now())
	}
}

func TestTickSchedulerRepeatCount(t *testing.T) {
	s := NewTickScheduler()
	fired := 0
	s.Schedule(100*time.Millisecond, 2, func() { fired++ })

	s.Advance(time.Second)
	if fired != 3 {
		t.Errorf("repeat=2 fired %d times, want 3", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, finished timers should be removed", s.Pending())
	}
}

func TestTickSchedulerOneShot(t *testing.T) {
	s := NewTickScheduler()
	fired := 0
	s.Schedule(2*time.Second, 0, func() { fired++ })

	s.Advance(10 * time.Second)
	if fired != 1 {
		t.Errorf("one-shot fired %d times", fired)
	}
}

func TestTickSchedulerCancel(t *testing.T) {
	s := NewTickScheduler()
	fired := 0
	id := s.Schedule(time.Second, RepeatForever, func() { fired++ })

	s.Advance(2 * time.Second)
	s.Cancel(id)
	s.Advance(5 * time.Second)

	if fired != 2 {
		t.Errorf("fired %d times, want 2", fired)
	}
	s.Cancel(id) // unknown ids are ignored
}

func TestTickSchedulerOrdersByDueTime(t *testing.T) {
	s := NewTickScheduler()
	var order []string
	s.Schedule(300*time.Millisecond, 0, func() { order = append(order, "slow") })
	s.Schedule(100*time.Millisecond, 0, func() { order = append(order, "fast") })
	s.Schedule(300*time.Millisecond, 0, func() { order = append(order, "slow2") })

	s.Advance(time.Second)

	want := []string{"fast", "slow", "slow2"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestTickSchedulerCallbackCancelsItself(t *testing.T) {
	s := NewTickScheduler()
	fired := 0
	var id TimerID
	id = s.Schedule(time.Second, RepeatForever, func() {
		fired++
		if fired == 3 {
			s.Cancel(id)
		}
	})

	s.Advance(10 * time.Second)
	if fired != 3 {
		t.Errorf("fired %d times, want 3", fired)
	}
}

func TestTickSchedulerTimerScheduledFromCallback(t *testing.T) {
	s := NewTickScheduler()
	var at time.Duration
	s.Schedule(time.Second, 0, func() {
		s.Schedule(500*time.Millisecond, 0, func() { at = s.Now() })
	})

	s.Advance(2 * time.Second)
	if at != 1500*time.Millisecond {
		t.Errorf("nested timer fired at %v, want 1.5s", at)
	}
}
