package registry

import (
	"sort"
	"time"
)

// Animation is a named sprite frame sequence.
type Animation struct {
	Key       string
	Frames    []int
	FrameRate int  // frames per second
	Yoyo      bool // play back down to the first frame after reaching the last
	Repeat    int  // extra plays; -1 loops forever
}

// sequence expands yoyo into the played frame order: 1,2,3 -> 1,2,3,2,1.
func (a Animation) sequence() []int {
	if !a.Yoyo || len(a.Frames) < 2 {
		return a.Frames
	}
	seq := append([]int(nil), a.Frames...)
	for i := len(a.Frames) - 2; i >= 0; i-- {
		seq = append(seq, a.Frames[i])
	}
	return seq
}

// Duration returns how long one play takes. Zero for looping animations.
func (a Animation) Duration() time.Duration {
	if a.Repeat < 0 || a.FrameRate <= 0 {
		return 0
	}
	per := time.Second * time.Duration(len(a.sequence())) / time.Duration(a.FrameRate)
	return per * time.Duration(a.Repeat+1)
}

// Frame returns the frame shown at elapsed and whether the animation has
// completed by then.
func (a Animation) Frame(elapsed time.Duration) (frame int, done bool) {
	seq := a.sequence()
	if len(seq) == 0 || a.FrameRate <= 0 {
		return 0, true
	}
	if a.Repeat >= 0 && elapsed >= a.Duration() {
		return seq[len(seq)-1], true
	}
	idx := int(elapsed * time.Duration(a.FrameRate) / time.Second)
	return seq[idx%len(seq)], false
}

// Animations holds the animations registered while preloading.
type Animations struct {
	byKey map[string]Animation
}

// NewAnimations creates an empty set.
func NewAnimations() *Animations {
	return &Animations{byKey: make(map[string]Animation)}
}

// Register adds or replaces an animation.
func (s *Animations) Register(a Animation) {
	s.byKey[a.Key] = a
}

// Get returns the animation registered under key.
func (s *Animations) Get(key string) (Animation, bool) {
	if s == nil {
		return Animation{}, false
	}
	a, ok := s.byKey[key]
	return a, ok
}

// Keys lists the registered animations, sorted.
func (s *Animations) Keys() []string {
	keys := make([]string, 0, len(s.byKey))
	for k := range s.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
