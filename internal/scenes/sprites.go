package scenes

import "github.com/vovakirdan/tui-pet/internal/core"

// Pet sprite frames, indexed like the sheet they stand in for:
// 0 neutral, 1-3 funny faces, 4 game over.
const (
	FrameNeutral  = 0
	FrameGameOver = 4

	spriteW = 7
	spriteH = 3
)

var petFrames = [][spriteH]string{
	{" ,---, ", "( o o )", " '-.-' "},
	{" ,---, ", "( ^ ^ )", " '-o-' "},
	{" ,---, ", "( > < )", " '-w-' "},
	{" ,---, ", "( o O )", " '-P-' "},
	{" ,---, ", "( x x )", " '---' "},
}

// blinkFrame replaces the neutral face for a moment while idle.
var blinkFrame = [spriteH]string{" ,---, ", "( - - )", " '-.-' "}

// spinFrames show the pet turning around: front, right, back, left.
var spinFrames = [][spriteH]string{
	{" ,---, ", "( o o )", " '-.-' "},
	{" ,---, ", "(   o )", " '--.' "},
	{" ,---, ", "(     )", " '---' "},
	{" ,---, ", "( o   )", " '.--' "},
}

// drawSprite draws rows at top-left p, leaving spaces transparent.
func drawSprite(dst *core.Screen, p core.Point, rows [spriteH]string, c core.Color) {
	for dy, row := range rows {
		for dx, r := range []rune(row) {
			if r == ' ' {
				continue
			}
			dst.SetColored(p.X+dx, p.Y+dy, r, c)
		}
	}
}

// drawPet draws frame n, falling back to neutral for unknown frames.
func drawPet(dst *core.Screen, p core.Point, n int, c core.Color) {
	if n < 0 || n >= len(petFrames) {
		n = FrameNeutral
	}
	drawSprite(dst, p, petFrames[n], c)
}

// drawBar draws a [####....] progress bar of the given inner width.
func drawBar(dst *core.Screen, x, y, width int, frac float64, c core.Color) {
	fill := int(core.ClampF(frac, 0, 1) * float64(width))
	dst.SetColored(x, y, '[', c)
	for i := 0; i < width; i++ {
		r := '.'
		if i < fill {
			r = '#'
		}
		dst.SetColored(x+1+i, y, r, c)
	}
	dst.SetColored(x+1+width, y, ']', c)
}
