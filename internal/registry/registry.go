// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the platform
// to start scenes by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pet/internal/audio"
	"github.com/vovakirdan/tui-pet/internal/config"
	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/pet"
	"github.com/vovakirdan/tui-pet/internal/storage"
)

// Scene is the interface every scene implements.
// Scenes contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Scene interface {
	// Name returns the scene's name in the scene flow.
	Name() pet.SceneName

	// Title returns a human-readable name for display.
	Title() string

	// Enter is called when the scene starts. The context is shared by all
	// scenes of one program.
	Enter(ctx *Context)

	// Step advances the scene by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the scene into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// Exit is called when another scene replaces this one. Scene-level
	// state must be torn down here.
	Exit()
}

// RunStore is the part of the run history a scene needs.
type RunStore interface {
	SaveRun(r storage.Run) (int64, error)
	BestRun() (*storage.Run, error)
}

// Context carries the services shared by all scenes of one program.
type Context struct {
	Config     core.RuntimeConfig
	Pet        config.PetConfig
	Flow       *pet.SceneFlow
	Logger     *log.Logger
	Sound      audio.Player
	Store      RunStore // nil when history is disabled
	Animations *Animations

	// LastRun is the most recent finished run of this program, shown on
	// the home scene.
	LastRun *storage.Run
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	Name  pet.SceneName
	Title string
}

// Factory is a function that creates a new instance of a scene.
type Factory func() Scene

var (
	factories = make(map[pet.SceneName]Factory)
	titles    = make(map[pet.SceneName]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a scene's init() function.
// Panics if a scene with the same name is already registered.
func Register(name pet.SceneName, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", name))
	}

	factories[name] = f

	// Get title by creating a temporary instance
	titles[name] = f().Title()
}

// List returns information about all registered scenes, sorted by name.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for name := range factories {
		result = append(result, SceneInfo{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new scene by its name.
// Returns an error if the scene is not registered.
func Create(name pet.SceneName) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", name)
	}

	return f(), nil
}
