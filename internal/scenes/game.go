package scenes

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-pet/internal/audio"
	"github.com/vovakirdan/tui-pet/internal/config"
	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/pet"
	"github.com/vovakirdan/tui-pet/internal/registry"
	"github.com/vovakirdan/tui-pet/internal/storage"
)

// Idle blinks come at a seeded random 2-6s apart.
const (
	blinkLength   = 150 * time.Millisecond
	blinkMinDelay = 2 * time.Second
	blinkJitter   = 4 * time.Second
)

// presentation is what the pet is busy showing while the selection is Blocked.
type presentation int

const (
	presNone presentation = iota
	presMove              // walking to a placed item
	presChew              // playing the funny faces animation
	presSpin              // rotating
)

// Game is the yard: HUD, pet, placement cursor and item buttons.
// All scene-level state lives in a pet.Session created on Enter and closed
// on Exit.
type Game struct {
	ctx     *registry.Context
	cfg     config.PetConfig
	sched   *pet.TickScheduler
	session *pet.Session
	layout  layout
	sound   audio.Player

	petPos core.Point // sprite top-left
	cursor core.Point
	frame  int

	pres      presentation
	presStart time.Duration
	moveFrom  core.Point
	moveTo    core.Point

	placed      core.Point
	placedGlyph rune
	placedShown bool

	rng      *rand.Rand
	blinking bool

	over     bool
	runSaved bool
	notice   string
}

// NewGame creates the game scene.
func NewGame() *Game { return &Game{} }

func (g *Game) Name() pet.SceneName { return pet.SceneGame }
func (g *Game) Title() string       { return "Game" }

// Enter builds a fresh session. Configuration errors fall back to the
// built-in catalog so the scene always starts.
func (g *Game) Enter(ctx *registry.Context) {
	*g = Game{ctx: ctx, cfg: ctx.Pet, sound: ctx.Sound}
	if g.sound == nil {
		g.sound = audio.Silent{}
	}
	if err := g.cfg.Validate(); err != nil {
		g.logWarn("invalid pet config, using defaults", "err", err)
		g.cfg = config.DefaultPetConfig()
	}

	catalog, err := g.cfg.Catalog()
	if err != nil {
		g.logWarn("invalid item config, using defaults", "err", err)
		catalog = pet.DefaultCatalog()
	}

	g.sched = pet.NewTickScheduler()
	g.session = pet.NewSession(g.cfg.SessionConfig(), catalog, g.sched, ctx.Flow)
	g.session.OnOutcome(g.onOutcome)

	g.layout = newLayout(ctx.Config.ScreenW, ctx.Config.ScreenH, catalog.Items())
	g.petPos = g.layout.petTarget(g.layout.inner.Center())
	g.cursor = g.layout.inner.ClampPoint(g.layout.inner.Center().Add(core.Point{X: g.layout.inner.W / 4}))
	g.frame = FrameNeutral
	g.rng = rand.New(rand.NewSource(ctx.Config.Seed))

	g.session.Start()
	g.scheduleBlink()
	g.sound.Play(audio.CueStart)
}

// Resize lays the yard out again, keeping the pet, cursor and any placed
// item inside it.
func (g *Game) Resize(w, h int) {
	if g.session == nil {
		return
	}
	g.layout = newLayout(w, h, g.session.Catalog().Items())
	g.petPos = g.layout.petArea.ClampPoint(g.petPos)
	g.cursor = g.layout.inner.ClampPoint(g.cursor)
	g.placed = g.layout.inner.ClampPoint(g.placed)
	g.moveTo = g.layout.petTarget(g.placed)
}

// Session exposes the running session.
func (g *Game) Session() *pet.Session {
	return g.session
}

// Step advances input, timers and the running presentation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}
	g.handleInput(in)
	g.sched.Advance(g.ctx.Config.TickDuration())
	g.advancePresentation()
	return core.StepResult{State: g.State()}
}

// State reports the scene state.
func (g *Game) State() core.SceneState {
	return core.SceneState{
		Elapsed:  g.sched.Now(),
		GameOver: g.session.GameOver(),
		Blocked:  g.session.Selection().Phase == pet.PhaseBlocked,
	}
}

func (g *Game) handleInput(in core.InputFrame) {
	if g.over {
		return
	}
	if in.Has(core.ActionBack) && g.session.Cancel() {
		g.notice = ""
	}
	if in.Has(core.ActionSelect) && in.Item != "" {
		g.press(pet.ItemID(in.Item))
	}
	if in.Has(core.ActionRotate) {
		g.rotate()
	}
	if in.Has(core.ActionTap) {
		g.tap(in.Pointer)
	}
	if d := in.Direction(); d != (core.Point{}) {
		if in.Drag {
			g.drag(d)
		} else {
			g.cursor = g.layout.inner.ClampPoint(g.cursor.Add(d))
		}
	}
	if in.Has(core.ActionPlace) {
		g.place(g.cursor)
	}
}

func (g *Game) press(id pet.ItemID) {
	item, ok := g.session.Press(id)
	if !ok {
		g.logDebug("press ignored", "item", id, "phase", g.session.Selection().Phase)
		return
	}
	if item.IsAction() {
		g.startSpin()
		return
	}
	g.notice = fmt.Sprintf("%s selected: click the yard or press enter, esc to put it back", item.ID)
	g.sound.Play(audio.CueSelect)
}

func (g *Game) rotate() {
	if _, ok := g.session.Rotate(); !ok {
		g.logDebug("rotate ignored", "phase", g.session.Selection().Phase)
		return
	}
	g.startSpin()
}

func (g *Game) startSpin() {
	g.notice = ""
	g.startPresentation(presSpin)
	g.sound.Play(audio.CueRotate)
}

// scheduleBlink queues the next idle blink.
func (g *Game) scheduleBlink() {
	delay := blinkMinDelay + time.Duration(g.rng.Int63n(int64(blinkJitter)))
	g.sched.Schedule(delay, 0, func() {
		if g.over {
			return
		}
		g.blinking = true
		g.sched.Schedule(blinkLength, 0, func() {
			g.blinking = false
			g.scheduleBlink()
		})
	})
}

func (g *Game) place(at core.Point) {
	pending, ok := g.session.Place()
	if !ok {
		g.logDebug("place ignored", "phase", g.session.Selection().Phase)
		return
	}
	g.notice = ""
	g.placed = at
	g.placedGlyph = pending.Item.Glyph
	g.placedShown = true
	g.moveFrom = g.petPos
	g.moveTo = g.layout.petTarget(at)
	g.startPresentation(presMove)
}

func (g *Game) tap(p core.Point) {
	if b, ok := g.layout.buttonAt(p); ok {
		g.press(b.item.ID)
		return
	}
	if g.layout.inner.Contains(p.X, p.Y) {
		g.cursor = p
		g.place(p)
	}
}

// drag moves the pet directly, like dragging its sprite. Not while it is busy.
func (g *Game) drag(d core.Point) {
	if g.pres != presNone {
		return
	}
	g.petPos = g.layout.petArea.ClampPoint(g.petPos.Add(d))
}

func (g *Game) startPresentation(p presentation) {
	g.pres = p
	g.presStart = g.sched.Now()
}

func (g *Game) advancePresentation() {
	elapsed := g.sched.Now() - g.presStart
	timings := g.cfg.Timings

	switch g.pres {
	case presMove:
		t := 1.0
		if timings.Move > 0 {
			t = float64(elapsed) / float64(timings.Move)
		}
		g.petPos = core.Lerp(g.moveFrom, g.moveTo, t)
		if t >= 1 {
			g.placedShown = false
			g.sound.Play(audio.CueEat)
			g.startPresentation(presChew)
		}

	case presChew:
		anim, ok := g.ctx.Animations.Get(FunnyFaces)
		if !ok {
			g.finishPresentation()
			return
		}
		frame, done := anim.Frame(elapsed)
		g.frame = frame
		if done {
			g.finishPresentation()
		}

	case presSpin:
		if elapsed >= timings.Rotate {
			g.finishPresentation()
		}
	}
}

// finishPresentation is the presentation-complete signal.
func (g *Game) finishPresentation() {
	g.pres = presNone
	g.frame = FrameNeutral
	if out, ok := g.session.Resolve(); ok {
		g.logDebug("action resolved", "stats", out.Stats)
	}
}

func (g *Game) onOutcome(out pet.Outcome) {
	if !out.GameOver || g.over {
		return
	}
	g.over = true
	g.pres = presNone
	g.placedShown = false
	g.frame = FrameGameOver
	g.notice = ""
	g.sound.Play(audio.CueGameOver)
	g.recordRun(out)
}

func (g *Game) recordRun(out pet.Outcome) {
	if g.runSaved {
		return
	}
	g.runSaved = true

	causes := make([]string, 0, len(out.Depleted))
	for _, s := range out.Depleted {
		causes = append(causes, string(s))
	}
	run := storage.Run{
		PetName:    g.cfg.Pet.Name,
		Survived:   g.sched.Now(),
		ItemsUsed:  g.session.ItemsUsed(),
		Rotations:  g.session.Rotations(),
		Cause:      strings.Join(causes, ","),
		Difficulty: string(g.cfg.Difficulty.Preset),
	}
	g.ctx.LastRun = &run

	if g.ctx.Logger != nil {
		g.ctx.Logger.Info("game over", "pet", run.PetName, "survived", run.Survived, "cause", run.Cause, "items", run.ItemsUsed)
	}
	if g.ctx.Store == nil {
		return
	}
	id, err := g.ctx.Store.SaveRun(run)
	if err != nil {
		g.logWarn("could not save run", "err", err)
		return
	}
	g.logDebug("run saved", "id", id)
}

func (g *Game) Exit() {
	if g.session != nil {
		g.session.Close()
	}
}

func (g *Game) Render(dst *core.Screen) {
	l := g.layout
	stats := g.session.Stats()

	hudColor := core.ColorGreen
	if min(stats.Health, stats.Fun) <= 20 {
		hudColor = core.ColorRed
	}
	dst.DrawTextColored(1, l.hud, stats.String(), hudColor)
	right := fmt.Sprintf("%s  %s", g.cfg.Pet.Name, formatSurvived(g.sched.Now()))
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, l.hud, right, core.ColorGray)

	dst.DrawBox(l.yard, core.ColorGray)

	if g.placedShown {
		dst.SetColored(g.placed.X, g.placed.Y, g.placedGlyph, core.ColorMagenta)
	}

	sel := g.session.Selection()
	if sel.Phase == pet.PhaseItemSelected {
		dst.SetColored(g.cursor.X, g.cursor.Y, sel.Item.Glyph, core.ColorDim)
	}

	petColor := core.ColorYellow
	if g.over {
		petColor = core.ColorGray
	}
	if g.pres == presSpin {
		idx := int((g.sched.Now() - g.presStart) / (time.Second / 8))
		drawSprite(dst, g.petPos, spinFrames[idx%len(spinFrames)], petColor)
	} else if g.blinking && !g.over && g.pres == presNone && g.frame == FrameNeutral {
		drawSprite(dst, g.petPos, blinkFrame, petColor)
	} else {
		drawPet(dst, g.petPos, g.frame, petColor)
	}

	if g.over {
		dst.DrawTextCentered(l.inner.Y+1, "GAME OVER", core.ColorBrightRed)
	} else if g.notice != "" {
		dst.DrawTextColored(l.inner.X+1, l.inner.Bottom()-1, g.notice, core.ColorDim)
	}

	for _, b := range l.buttons {
		c := core.ColorWhite
		switch {
		case g.over:
			c = core.ColorGray
		case sel.Selected(b.item.ID):
			c = core.ColorDim
		}
		dst.DrawBox(b.rect, c)
		dst.DrawTextColored(b.rect.X+2, b.rect.Y+1, b.label, c)
	}
}

func (g *Game) logDebug(msg string, kv ...any) {
	if g.ctx.Logger != nil {
		g.ctx.Logger.Debug(msg, kv...)
	}
}

func (g *Game) logWarn(msg string, kv ...any) {
	if g.ctx.Logger != nil {
		g.ctx.Logger.Warn(msg, kv...)
	}
}
