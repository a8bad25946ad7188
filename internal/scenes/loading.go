package scenes

import (
	"time"

	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/pet"
	"github.com/vovakirdan/tui-pet/internal/registry"
)

// loading is the shared body of the boot and preload scenes: it shows a
// progress bar, runs its work on entry and fires its trigger after a
// fixed delay.
type loading struct {
	ctx      *registry.Context
	sched    *pet.TickScheduler
	label    string
	duration time.Duration
	trigger  pet.Trigger
}

func (l *loading) enter(ctx *registry.Context, label string, d time.Duration, trigger pet.Trigger) {
	l.ctx = ctx
	l.sched = pet.NewTickScheduler()
	l.label = label
	l.duration = d
	l.trigger = trigger
	l.sched.Schedule(d, 0, func() {
		if _, err := ctx.Flow.Fire(trigger); err != nil && ctx.Logger != nil {
			ctx.Logger.Debug("loading trigger ignored", "trigger", trigger, "err", err)
		}
	})
}

func (l *loading) step() core.StepResult {
	l.sched.Advance(l.ctx.Config.TickDuration())
	return core.StepResult{State: core.SceneState{Elapsed: l.sched.Now()}}
}

func (l *loading) render(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, l.label, core.ColorCyan)
	width := core.Clamp(dst.Width()-10, 10, 30)
	frac := 1.0
	if l.duration > 0 {
		frac = float64(l.sched.Now()) / float64(l.duration)
	}
	drawBar(dst, (dst.Width()-width-2)/2, mid+1, width, frac, core.ColorGreen)
}

// Boot stands in for the asset loader.
type Boot struct {
	loading
}

// NewBoot creates the boot scene.
func NewBoot() *Boot { return &Boot{} }

func (b *Boot) Name() pet.SceneName { return pet.SceneBoot }
func (b *Boot) Title() string       { return "Boot" }

func (b *Boot) Enter(ctx *registry.Context) {
	b.enter(ctx, "Loading assets...", ctx.Pet.Timings.Boot, pet.TriggerAssetsLoaded)
}

func (b *Boot) Step(in core.InputFrame) core.StepResult { return b.step() }
func (b *Boot) Render(dst *core.Screen)                  { b.render(dst) }
func (b *Boot) Exit()                                    {}

// FunnyFaces is the key of the animation played after eating.
const FunnyFaces = "funnyfaces"

// Preload registers the sprite animations.
type Preload struct {
	loading
}

// NewPreload creates the preload scene.
func NewPreload() *Preload { return &Preload{} }

func (p *Preload) Name() pet.SceneName { return pet.ScenePreload }
func (p *Preload) Title() string       { return "Preload" }

func (p *Preload) Enter(ctx *registry.Context) {
	anim := ctx.Pet.Animation
	ctx.Animations.Register(registry.Animation{
		Key:       FunnyFaces,
		Frames:    append([]int(nil), anim.Frames...),
		FrameRate: anim.FrameRate,
		Yoyo:      anim.Yoyo,
	})
	p.enter(ctx, "Registering animations...", ctx.Pet.Timings.Preload, pet.TriggerAnimationsRegistered)
}

func (p *Preload) Step(in core.InputFrame) core.StepResult { return p.step() }
func (p *Preload) Render(dst *core.Screen)                  { p.render(dst) }
func (p *Preload) Exit()                                    {}
