package core

// Action represents a semantic input intent, abstracted from physical key presses
// and mouse clicks. Scenes work with these intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move placement cursor up
	ActionDown           // S, J, Down arrow - move placement cursor down
	ActionLeft           // A, H, Left arrow - move placement cursor left
	ActionRight          // D, L, Right arrow - move placement cursor right
	ActionSelect         // item hotkey or button click - pick InputFrame.Item
	ActionPlace          // Enter, Space - place the selected item
	ActionRotate         // rotate hotkey or button click
	ActionTap            // mouse press at InputFrame.Pointer
	ActionConfirm        // any key on title screens
	ActionBack           // Esc - put a picked item back
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionPlace:
		return "Place"
	case ActionRotate:
		return "Rotate"
	case ActionTap:
		return "Tap"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Item is the item identifier carried by ActionSelect.
	Item string

	// Pointer is the cell carried by ActionTap.
	Pointer Point

	// Drag makes directional actions move the pet instead of the cursor.
	Drag bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SelectItem marks ActionSelect with the given item.
func (f *InputFrame) SelectItem(item string) {
	f.Set(ActionSelect)
	f.Item = item
}

// Tap marks ActionTap at the given cell.
func (f *InputFrame) Tap(x, y int) {
	f.Set(ActionTap)
	f.Pointer = Point{X: x, Y: y}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction returns the cursor movement requested this frame.
func (f InputFrame) Direction() Point {
	var d Point
	if f.Has(ActionUp) {
		d.Y--
	}
	if f.Has(ActionDown) {
		d.Y++
	}
	if f.Has(ActionLeft) {
		d.X--
	}
	if f.Has(ActionRight) {
		d.X++
	}
	return d
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Item = ""
	f.Pointer = Point{}
	f.Drag = false
}
