package pet

import "time"

// SessionConfig holds the tunables of one game scene.
type SessionConfig struct {
	Initial       Stats
	DecayInterval time.Duration
	Decay         DeltaVector
	SettleDelay   time.Duration

	// KeepDecayOnGameOver leaves the decay clock running through the
	// settle delay. The clock is always stopped by Close.
	KeepDecayOnGameOver bool
}

// DefaultSessionConfig returns the stock game scene settings.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Initial:       Stats{Health: 100, Fun: 100},
		DecayInterval: time.Second,
		Decay:         Delta(-10, -5),
		SettleDelay:   2 * time.Second,
	}
}

// Session is the state owned by one visit to the game scene. It is created
// on scene entry and must be closed on exit.
type Session struct {
	cfg       SessionConfig
	catalog   *ItemCatalog
	sched     Scheduler
	flow      *SceneFlow
	tracker   *StatTracker
	selection *Selection
	decay     *DecayClock

	listeners []func(Outcome)
	gameOver  bool
	settleID  TimerID
	closed    bool

	itemsUsed int
	rotations int
}

// NewSession wires a session. flow may be nil when no scene change should
// follow game over (tests, headless runs).
func NewSession(cfg SessionConfig, catalog *ItemCatalog, sched Scheduler, flow *SceneFlow) *Session {
	tracker := NewStatTracker(cfg.Initial)
	rotate, ok := catalog.Lookup(ItemRotate)
	if !ok {
		rotate = Item{ID: ItemRotate, Delta: NewDeltaVector(map[Stat]int{StatFun: 20})}
	}
	return &Session{
		cfg:       cfg,
		catalog:   catalog,
		sched:     sched,
		flow:      flow,
		tracker:   tracker,
		selection: NewSelection(rotate),
		decay:     NewDecayClock(sched, tracker),
	}
}

// OnOutcome registers fn to receive every outcome, from decay and from
// resolved actions alike.
func (s *Session) OnOutcome(fn func(Outcome)) {
	s.listeners = append(s.listeners, fn)
}

// Start begins decay.
func (s *Session) Start() {
	if s.closed || s.gameOver {
		return
	}
	s.decay.Start(s.cfg.DecayInterval, s.cfg.Decay, s.handle)
}

// Press handles a button: rotate rotates, anything else selects.
// It returns the pressed item and whether the press changed the selection.
func (s *Session) Press(id ItemID) (Item, bool) {
	item, err := s.catalog.Get(id)
	if err != nil {
		return Item{}, false
	}
	if item.IsAction() {
		_, ok := s.Rotate()
		return item, ok
	}
	return item, s.Select(item)
}

// Select picks item. Ignored while blocked.
func (s *Session) Select(item Item) bool {
	if s.closed {
		return false
	}
	return s.selection.Select(item)
}

// Cancel puts a selected item back.
func (s *Session) Cancel() bool {
	if s.closed {
		return false
	}
	return s.selection.Cancel()
}

// Place queues the selected item. The caller runs the presentation and
// then calls Resolve.
func (s *Session) Place() (Pending, bool) {
	if s.closed {
		return Pending{}, false
	}
	return s.selection.Place(s.catalog)
}

// Rotate queues the rotate action.
func (s *Session) Rotate() (Pending, bool) {
	if s.closed {
		return Pending{}, false
	}
	return s.selection.Rotate()
}

// Resolve reports that the presentation for the pending action finished.
func (s *Session) Resolve() (Outcome, bool) {
	if s.closed {
		return Outcome{}, false
	}
	kind := s.selection.State().Pending
	out, ok := s.selection.Resolve(s.tracker)
	if !ok {
		return Outcome{}, false
	}
	switch kind {
	case PendingPlace:
		s.itemsUsed++
	case PendingRotate:
		s.rotations++
	}
	s.handle(out)
	return out, true
}

func (s *Session) handle(out Outcome) {
	for _, fn := range s.listeners {
		fn(out)
	}
	if !out.GameOver || s.gameOver {
		return
	}
	s.gameOver = true
	s.selection.Lock()
	if !s.cfg.KeepDecayOnGameOver {
		s.decay.Stop()
	}
	s.settleID = s.sched.Schedule(s.cfg.SettleDelay, 0, func() {
		s.settleID = 0
		if s.closed || s.flow == nil {
			return
		}
		//nolint:errcheck // The flow only rejects this if the scene already left.
		s.flow.Fire(TriggerGameOverSettled)
	})
}

// Stats returns the current stats.
func (s *Session) Stats() Stats {
	return s.tracker.Stats()
}

// Selection returns the selection snapshot.
func (s *Session) Selection() SelectionState {
	return s.selection.State()
}

// GameOver reports whether a stat has run out.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Catalog returns the item catalog.
func (s *Session) Catalog() *ItemCatalog {
	return s.catalog
}

// DecayRunning reports whether the decay clock is active.
func (s *Session) DecayRunning() bool {
	return s.decay.Running()
}

// ItemsUsed returns how many placed items were resolved.
func (s *Session) ItemsUsed() int {
	return s.itemsUsed
}

// Rotations returns how many rotations were resolved.
func (s *Session) Rotations() int {
	return s.rotations
}

// Close tears the session down: decay stops and a pending settle never
// fires. Safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.decay.Stop()
	if s.settleID != 0 {
		s.sched.Cancel(s.settleID)
		s.settleID = 0
	}
}
