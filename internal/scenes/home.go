package scenes

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pet/internal/audio"
	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/pet"
	"github.com/vovakirdan/tui-pet/internal/registry"
	"github.com/vovakirdan/tui-pet/internal/storage"
)

// Home is the title card. Any key or click starts the game.
type Home struct {
	ctx     *registry.Context
	elapsed time.Duration
	best    *storage.Run
	last    *storage.Run
}

// NewHome creates the home scene.
func NewHome() *Home { return &Home{} }

func (h *Home) Name() pet.SceneName { return pet.SceneHome }
func (h *Home) Title() string       { return "Virtual Pet" }

func (h *Home) Enter(ctx *registry.Context) {
	h.ctx = ctx
	h.elapsed = 0
	h.last = ctx.LastRun
	h.best = nil
	if ctx.Store != nil {
		best, err := ctx.Store.BestRun()
		if err != nil {
			if ctx.Logger != nil {
				ctx.Logger.Warn("could not load best run", "err", err)
			}
		} else {
			h.best = best
		}
	}
	if ctx.Sound != nil {
		ctx.Sound.Play(audio.CueHome)
	}
}

func (h *Home) Step(in core.InputFrame) core.StepResult {
	h.elapsed += h.ctx.Config.TickDuration()
	if in.Has(core.ActionConfirm) || in.Has(core.ActionTap) {
		if _, err := h.ctx.Flow.Fire(pet.TriggerTap); err != nil && h.ctx.Logger != nil {
			h.ctx.Logger.Debug("tap ignored", "err", err)
		}
	}
	return core.StepResult{State: core.SceneState{Elapsed: h.elapsed}}
}

func (h *Home) Render(dst *core.Screen) {
	w, ht := dst.Width(), dst.Height()
	top := core.Clamp(ht/2-5, 0, ht)

	dst.DrawTextCentered(top, "VIRTUAL PET", core.ColorBrightYellow)
	dst.DrawTextCentered(top+1, "~ "+h.ctx.Pet.Pet.Name+" ~", core.ColorYellow)

	drawPet(dst, core.Point{X: (w - spriteW) / 2, Y: top + 3}, h.idleFrame(), core.ColorYellow)

	// Blink the prompt twice a second.
	if (h.elapsed/(500*time.Millisecond))%2 == 0 {
		dst.DrawTextCentered(top+7, "press any key or click to start", core.ColorWhite)
	}

	line := top + 9
	if h.last != nil {
		dst.DrawTextCentered(line, fmt.Sprintf("last run: %s, %s ran out", formatSurvived(h.last.Survived), h.last.Cause), core.ColorGray)
		line++
	}
	if h.best != nil {
		dst.DrawTextCentered(line, fmt.Sprintf("best: %s by %s", formatSurvived(h.best.Survived), h.best.PetName), core.ColorGray)
	}
}

// idleFrame occasionally pulls a face on the title card.
func (h *Home) idleFrame() int {
	if (h.elapsed/time.Second)%4 == 3 {
		return 1
	}
	return FrameNeutral
}

func (h *Home) Exit() {
	if h.ctx.Sound != nil {
		h.ctx.Sound.Stop(audio.CueHome)
	}
}

// formatSurvived renders a duration as "12.3s".
func formatSurvived(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
