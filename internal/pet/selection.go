package pet

// Phase is the state of the single-slot selection machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseItemSelected
	PhaseBlocked
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseItemSelected:
		return "ItemSelected"
	case PhaseBlocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// PendingKind says what a Blocked selection is waiting to resolve.
type PendingKind int

const (
	PendingNone PendingKind = iota
	PendingPlace
	PendingRotate
)

// Pending is the action queued while the selection is Blocked. Its delta is
// applied when the presentation reports completion.
type Pending struct {
	Kind  PendingKind
	Item  Item
	Delta DeltaVector
}

// SelectionState is a snapshot for the platform (dimming buttons and so on).
type SelectionState struct {
	Phase   Phase
	Item    Item // selected or in-flight item, zero when Idle
	Pending PendingKind
}

// Selected reports whether id is the highlighted button.
func (s SelectionState) Selected(id ItemID) bool {
	return s.Phase != PhaseIdle && s.Item.ID == id
}

// Selection tracks which item is picked and whether input is blocked.
//
//	Idle --Select--> ItemSelected --Place--> Blocked --Resolve--> Idle
//	Idle --Rotate--> Blocked --Resolve--> Idle
//
// Requests that do not fit the current phase are ignored.
type Selection struct {
	phase   Phase
	item    Item
	pending Pending
	rotate  Item
}

// NewSelection creates an Idle selection. rotate is the action applied by
// Rotate; its delta is fixed here and never looked up again.
func NewSelection(rotate Item) *Selection {
	return &Selection{rotate: rotate}
}

// Phase returns the current phase.
func (s *Selection) Phase() Phase {
	return s.phase
}

// State returns a snapshot of the selection.
func (s *Selection) State() SelectionState {
	return SelectionState{Phase: s.phase, Item: s.item, Pending: s.pending.Kind}
}

// Select picks an item. Picking while another item is selected replaces it.
// Returns false if the selection is Blocked or the item is an action button.
func (s *Selection) Select(item Item) bool {
	if s.phase == PhaseBlocked || item.IsAction() {
		return false
	}
	s.ready()
	s.phase = PhaseItemSelected
	s.item = item
	return true
}

// Cancel drops the selected item. Only ItemSelected goes back to Idle;
// a Blocked selection finishes its presentation first.
func (s *Selection) Cancel() bool {
	if s.phase != PhaseItemSelected {
		return false
	}
	s.ready()
	return true
}

// Place starts resolving the selected item: the selection becomes Blocked
// and the item's delta, looked up in cat, is queued until Resolve.
// Returns false if nothing is selected or the item is no longer in cat.
func (s *Selection) Place(cat Catalog) (Pending, bool) {
	if s.phase != PhaseItemSelected {
		return Pending{}, false
	}
	item, ok := cat.Lookup(s.item.ID)
	if !ok {
		s.ready()
		return Pending{}, false
	}
	s.phase = PhaseBlocked
	s.item = item
	s.pending = Pending{Kind: PendingPlace, Item: item, Delta: item.Delta}
	return s.pending, true
}

// Rotate blocks the selection with the fixed rotate action queued. Any
// selected item is dropped first.
func (s *Selection) Rotate() (Pending, bool) {
	if s.phase == PhaseBlocked {
		return Pending{}, false
	}
	s.ready()
	s.phase = PhaseBlocked
	s.item = s.rotate
	s.pending = Pending{Kind: PendingRotate, Item: s.rotate, Delta: s.rotate.Delta}
	return s.pending, true
}

// Resolve is the presentation-complete signal. It applies the queued delta
// through t and returns to Idle unless the pet ran out of a stat, in which
// case the selection stays Blocked for good.
func (s *Selection) Resolve(t *StatTracker) (Outcome, bool) {
	if s.phase != PhaseBlocked || s.pending.Kind == PendingNone {
		return Outcome{}, false
	}
	out := t.ApplyDelta(s.pending.Delta)
	if out.GameOver {
		s.Lock()
		return out, true
	}
	s.ready()
	return out, true
}

// Lock blocks the selection with nothing to resolve. Used on game over.
func (s *Selection) Lock() {
	s.phase = PhaseBlocked
	s.item = Item{}
	s.pending = Pending{}
}

// ready clears the selection and unblocks input.
func (s *Selection) ready() {
	s.phase = PhaseIdle
	s.item = Item{}
	s.pending = Pending{}
}
