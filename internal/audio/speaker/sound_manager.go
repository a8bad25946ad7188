// Package speaker plays audio cues on the local sound device. It is kept
// apart from package audio so that scenes and headless builds never link
// the device driver.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	beepspeaker "github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pet/internal/audio"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays cues on the local audio device through a shared mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	loops       map[audio.Cue]*beep.Ctrl
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager. volume is in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		loops:  make(map[audio.Cue]*beep.Ctrl),
		volume: volume,
	}
}

// Initialize opens the speaker. Safe to call twice.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := beepspeaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: failed to open speaker: %w", err)
	}

	beepspeaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play implements audio.Player. It is a no-op before Initialize. A looping
// cue that is already playing is not started twice.
func (sm *SoundManager) Play(c audio.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var s beep.Streamer
	if c.Loops() {
		if _, playing := sm.loops[c]; playing {
			return
		}
		loop := audio.LoopStreamer(c, sampleRate, sm.volume)
		if loop == nil {
			return
		}
		ctrl := &beep.Ctrl{Streamer: loop}
		sm.loops[c] = ctrl
		s = ctrl
	} else {
		s = audio.CueStreamer(c, sampleRate, sm.volume)
		if s == nil {
			return
		}
	}
	// The speaker goroutine streams from the mixer, so it has to be locked.
	beepspeaker.Lock()
	sm.mixer.Add(s)
	beepspeaker.Unlock()
}

// Stop implements audio.Player. The mixer drops the loop once its
// streamer is gone.
func (sm *SoundManager) Stop(c audio.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ctrl, ok := sm.loops[c]
	if !ok {
		return
	}
	delete(sm.loops, c)
	if !sm.initialized {
		return
	}
	beepspeaker.Lock()
	ctrl.Streamer = nil
	beepspeaker.Unlock()
}

// Cleanup drops queued sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	beepspeaker.Lock()
	sm.mixer.Clear()
	beepspeaker.Unlock()
	beepspeaker.Close()
	sm.loops = make(map[audio.Cue]*beep.Ctrl)
	sm.initialized = false
}

// Initialized reports whether the speaker is open.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
