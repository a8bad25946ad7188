package pet

import "time"

// DecayClock periodically pushes a fixed negative vector into a StatTracker.
type DecayClock struct {
	sched   Scheduler
	tracker *StatTracker
	id      TimerID
	gen     uint64
	running bool
	ticks   int
}

// NewDecayClock creates a stopped clock.
func NewDecayClock(sched Scheduler, tracker *StatTracker) *DecayClock {
	return &DecayClock{sched: sched, tracker: tracker}
}

// Start fires once per interval until Stop, applying v and handing each
// outcome to onTick. Starting a running clock restarts it.
func (c *DecayClock) Start(interval time.Duration, v DeltaVector, onTick func(Outcome)) {
	c.Stop()
	c.gen++
	gen := c.gen
	c.running = true
	c.id = c.sched.Schedule(interval, RepeatForever, func() {
		// A stopped clock ignores late deliveries from its old timer.
		if !c.running || c.gen != gen {
			return
		}
		c.ticks++
		out := c.tracker.ApplyDelta(v)
		if onTick != nil {
			onTick(out)
		}
	})
}

// Stop cancels the clock. After Stop no further deltas are applied, even if
// the scheduler keeps delivering the old timer.
func (c *DecayClock) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.gen++
	c.sched.Cancel(c.id)
	c.id = 0
}

// Running reports whether the clock is started.
func (c *DecayClock) Running() bool {
	return c.running
}

// Ticks returns how many times the clock has applied its vector.
func (c *DecayClock) Ticks() int {
	return c.ticks
}
