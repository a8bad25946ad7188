package pet

import (
	"errors"
	"fmt"
)

// SceneName names one screen of the app.
type SceneName string

const (
	SceneBoot    SceneName = "boot"
	ScenePreload SceneName = "preload"
	SceneHome    SceneName = "home"
	SceneGame    SceneName = "game"
)

// Trigger is an event that moves the flow to the next scene.
type Trigger string

const (
	TriggerAssetsLoaded         Trigger = "assets-loaded"
	TriggerAnimationsRegistered Trigger = "animations-registered"
	TriggerTap                  Trigger = "tap"
	TriggerGameOverSettled      Trigger = "game-over-settled"
)

// ErrNoTransition is returned when a trigger does not apply to the current scene.
var ErrNoTransition = errors.New("pet: no transition")

var transitions = map[SceneName]map[Trigger]SceneName{
	SceneBoot:    {TriggerAssetsLoaded: ScenePreload},
	ScenePreload: {TriggerAnimationsRegistered: SceneHome},
	SceneHome:    {TriggerTap: SceneGame},
	SceneGame:    {TriggerGameOverSettled: SceneHome},
}

// SceneSink receives scene start requests.
type SceneSink interface {
	StartScene(name SceneName)
}

// SceneSinkFunc adapts a function to SceneSink.
type SceneSinkFunc func(name SceneName)

// StartScene implements SceneSink.
func (f SceneSinkFunc) StartScene(name SceneName) {
	f(name)
}

// SceneFlow walks the fixed scene graph
// boot → preload → home → game → home.
type SceneFlow struct {
	current SceneName
	sink    SceneSink
}

// NewSceneFlow creates a flow positioned at boot. Nothing is sent to sink
// until Start.
func NewSceneFlow(sink SceneSink) *SceneFlow {
	return &SceneFlow{current: SceneBoot, sink: sink}
}

// Start announces the boot scene to the sink.
func (f *SceneFlow) Start() {
	f.current = SceneBoot
	if f.sink != nil {
		f.sink.StartScene(SceneBoot)
	}
}

// Current returns the active scene.
func (f *SceneFlow) Current() SceneName {
	return f.current
}

// Fire moves to the scene the trigger leads to and tells the sink.
func (f *SceneFlow) Fire(t Trigger) (SceneName, error) {
	next, ok := transitions[f.current][t]
	if !ok {
		return f.current, fmt.Errorf("%w: %s on %s", ErrNoTransition, t, f.current)
	}
	f.current = next
	if f.sink != nil {
		f.sink.StartScene(next)
	}
	return next, nil
}
