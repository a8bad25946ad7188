package registry

import (
	"fmt"

	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/pet"
)

// maxChainedStarts bounds scene changes handled after one step.
const maxChainedStarts = 8

// Director runs one scene at a time and implements pet.SceneSink: a scene
// started during a step replaces the current one once the step returns.
type Director struct {
	ctx        *Context
	current    Scene
	pending    pet.SceneName
	hasPending bool
	err        error
}

// NewDirector creates a director and, unless ctx already has one, a scene
// flow that reports to it.
func NewDirector(ctx *Context) *Director {
	d := &Director{ctx: ctx}
	if ctx.Flow == nil {
		ctx.Flow = pet.NewSceneFlow(d)
	}
	if ctx.Animations == nil {
		ctx.Animations = NewAnimations()
	}
	return d
}

// StartScene implements pet.SceneSink.
func (d *Director) StartScene(name pet.SceneName) {
	d.pending = name
	d.hasPending = true
}

// flowScenes are the scenes the flow can start.
var flowScenes = []pet.SceneName{pet.SceneBoot, pet.ScenePreload, pet.SceneHome, pet.SceneGame}

// Start checks that every scene of the flow is registered and enters the
// first one.
func (d *Director) Start() error {
	if missing := missingScenes(List()); len(missing) > 0 {
		return fmt.Errorf("registry: scenes not registered: %v", missing)
	}
	d.ctx.Flow.Start()
	return d.apply()
}

func missingScenes(registered []SceneInfo) []pet.SceneName {
	have := make(map[pet.SceneName]bool, len(registered))
	for _, info := range registered {
		have[info.Name] = true
	}
	var missing []pet.SceneName
	for _, name := range flowScenes {
		if !have[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// Current returns the running scene, nil before Start.
func (d *Director) Current() Scene {
	return d.current
}

// Context returns the shared scene context.
func (d *Director) Context() *Context {
	return d.ctx
}

// Err returns and clears the last scene creation error.
func (d *Director) Err() error {
	err := d.err
	d.err = nil
	return err
}

// Step advances the running scene and then switches scenes if one was
// started during the step.
func (d *Director) Step(in core.InputFrame) core.StepResult {
	if d.current == nil {
		return core.StepResult{}
	}
	res := d.current.Step(in)
	if err := d.apply(); err != nil {
		d.err = err
	}
	return res
}

// Render draws the running scene.
func (d *Director) Render(dst *core.Screen) {
	if d.current != nil {
		d.current.Render(dst)
	}
}

// Resizer is implemented by scenes that lay themselves out on entry.
type Resizer interface {
	Resize(w, h int)
}

// Resize updates the screen size for new scenes and tells the running one.
func (d *Director) Resize(w, h int) {
	d.ctx.Config.ScreenW = w
	d.ctx.Config.ScreenH = h
	if r, ok := d.current.(Resizer); ok {
		r.Resize(w, h)
	}
}

// Close exits the running scene.
func (d *Director) Close() {
	if d.current != nil {
		d.current.Exit()
		d.current = nil
	}
	d.hasPending = false
}

func (d *Director) apply() error {
	for i := 0; d.hasPending; i++ {
		if i == maxChainedStarts {
			return fmt.Errorf("registry: too many chained scene starts (last %q)", d.pending)
		}
		name := d.pending
		d.hasPending = false

		next, err := Create(name)
		if err != nil {
			return err
		}
		if d.current != nil {
			d.current.Exit()
		}
		if d.ctx.Logger != nil {
			d.ctx.Logger.Debug("scene started", "scene", name)
		}
		d.current = next
		next.Enter(d.ctx)
	}
	return nil
}
