package scenes

import (
	"fmt"

	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/pet"
)

// button is one item button of the bottom bar.
type button struct {
	item  pet.Item
	label string
	rect  core.Rect
}

// layout places the HUD, the yard and the button bar on a screen.
type layout struct {
	hud     int       // HUD row
	yard    core.Rect // yard including its border
	inner   core.Rect // where items can be placed
	petArea core.Rect // valid top-left corners for the pet sprite
	buttons []button
}

func newLayout(w, h int, items []pet.Item) layout {
	var l layout
	l.hud = 0
	l.yard = core.NewRect(0, 1, w, max(h-4, 3))
	l.inner = core.NewRect(l.yard.X+1, l.yard.Y+1, max(l.yard.W-2, 1), max(l.yard.H-2, 1))
	l.petArea = core.NewRect(l.inner.X, l.inner.Y, max(l.inner.W-spriteW+1, 1), max(l.inner.H-spriteH+1, 1))

	x := 1
	y := l.yard.Bottom()
	for _, it := range items {
		label := fmt.Sprintf("%s %c %s", it.Hotkey, it.Glyph, it.ID)
		if it.Hotkey == "" {
			label = fmt.Sprintf("%c %s", it.Glyph, it.ID)
		}
		width := len([]rune(label)) + 4
		l.buttons = append(l.buttons, button{item: it, label: label, rect: core.NewRect(x, y, width, 3)})
		x += width + 1
	}
	return l
}

// buttonAt returns the button under p.
func (l layout) buttonAt(p core.Point) (button, bool) {
	for _, b := range l.buttons {
		if b.rect.Contains(p.X, p.Y) {
			return b, true
		}
	}
	return button{}, false
}

// petTarget is the sprite corner that puts the pet's mouth on p.
func (l layout) petTarget(p core.Point) core.Point {
	return l.petArea.ClampPoint(core.Point{X: p.X - spriteW/2, Y: p.Y - spriteH/2})
}
