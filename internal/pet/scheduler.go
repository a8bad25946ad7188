package pet

import "time"

// TimerID identifies a scheduled timer. The zero value is never issued.
type TimerID uint64

// RepeatForever makes a timer fire until it is cancelled.
const RepeatForever = -1

// Scheduler is the timer service the simulation runs on.
//
// Schedule fires fn after interval and then repeat more times at the same
// interval (RepeatForever for no limit). Cancel stops a timer; cancelling an
// unknown or finished timer does nothing.
type Scheduler interface {
	Schedule(interval time.Duration, repeat int, fn func()) TimerID
	Cancel(id TimerID)
}

type timer struct {
	id       TimerID
	due      time.Duration
	interval time.Duration
	left     int // remaining repeats, RepeatForever for unlimited
	fn       func()
}

// TickScheduler is a Scheduler driven by explicit Advance calls, so the
// platform's fixed tick decides when timers fire and tests stay deterministic.
type TickScheduler struct {
	now    time.Duration
	nextID TimerID
	timers []*timer
}

// NewTickScheduler creates a scheduler at time zero.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// Now returns the simulated time.
func (s *TickScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of live timers.
func (s *TickScheduler) Pending() int {
	return len(s.timers)
}

// Schedule implements Scheduler. Non-positive intervals are treated as one
// nanosecond so a repeating timer cannot spin forever inside Advance.
func (s *TickScheduler) Schedule(interval time.Duration, repeat int, fn func()) TimerID {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	s.nextID++
	s.timers = append(s.timers, &timer{
		id:       s.nextID,
		due:      s.now + interval,
		interval: interval,
		left:     repeat,
		fn:       fn,
	})
	return s.nextID
}

// Cancel implements Scheduler.
func (s *TickScheduler) Cancel(id TimerID) {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Advance moves time forward by dt, firing every timer that comes due in
// order of due time (ties in scheduling order). Callbacks may schedule or
// cancel timers; new timers fire in the same call if they come due.
func (s *TickScheduler) Advance(dt time.Duration) {
	target := s.now + dt
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.due
		if t.left == 0 {
			s.Cancel(t.id)
		} else {
			if t.left > 0 {
				t.left--
			}
			t.due += t.interval
		}
		t.fn()
	}
	s.now = target
}

func (s *TickScheduler) nextDue(target time.Duration) *timer {
	var next *timer
	for _, t := range s.timers {
		if t.due > target {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.id < next.id) {
			next = t
		}
	}
	return next
}
