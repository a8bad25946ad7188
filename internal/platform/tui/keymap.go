package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/pet"
)

// KeyMapper translates Bubble Tea key messages to scene actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	catalog *pet.ItemCatalog
}

// NewKeyMapper creates a key mapper whose item hotkeys come from catalog.
// A nil catalog binds no item keys.
func NewKeyMapper(catalog *pet.ItemCatalog) *KeyMapper {
	return &KeyMapper{catalog: catalog}
}

func (km *KeyMapper) hotkey(key string) (pet.Item, bool) {
	if km.catalog == nil {
		return pet.Item{}, false
	}
	return km.catalog.ByHotkey(key)
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	if it, ok := km.hotkey(key); ok {
		if it.IsAction() {
			return core.ActionRotate, false
		}
		return core.ActionSelect, false
	}

	switch key {
	case "w", "up", "k", "shift+up":
		return core.ActionUp, false
	case "s", "down", "j", "shift+down":
		return core.ActionDown, false
	case "a", "left", "h", "shift+left":
		return core.ActionLeft, false
	case "d", "right", "l", "shift+right":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionPlace, false
	case "r":
		return core.ActionRotate, false
	case "esc", "b":
		// Puts a picked item back.
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Every key also counts as Confirm, so title screens start on any key.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	frame.Set(core.ActionConfirm)

	switch action {
	case core.ActionNone:
	case core.ActionSelect:
		it, _ := km.hotkey(msg.String())
		frame.SelectItem(string(it.ID))
	default:
		frame.Set(action)
	}

	if isDragKey(msg.String()) {
		frame.Drag = true
	}
	return false
}

// MapMouseToFrame records a left click as a tap.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	frame.Tap(msg.X, msg.Y)
}

// shift+arrows drag the pet instead of moving the placement cursor.
func isDragKey(key string) bool {
	switch key {
	case "shift+up", "shift+down", "shift+left", "shift+right":
		return true
	}
	return false
}
