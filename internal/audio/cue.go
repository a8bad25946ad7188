// Package audio plays short synthesized sound cues for game events.
package audio

// Cue names a game event that has a sound.
type Cue int

const (
	CueStart    Cue = iota // game scene entered
	CueSelect              // item button pressed
	CueEat                 // placed item reached
	CueRotate              // rotate started
	CueGameOver            // a stat ran out
	CueHome                // title music, loops until stopped
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueSelect:
		return "select"
	case CueEat:
		return "eat"
	case CueRotate:
		return "rotate"
	case CueGameOver:
		return "game-over"
	case CueHome:
		return "home"
	default:
		return "unknown"
	}
}

// Loops reports whether c repeats until it is stopped.
func (c Cue) Loops() bool {
	return c == CueHome
}

// Player plays cues. Implementations must not block the caller.
// Stop ends a looping cue and is a no-op for anything else.
type Player interface {
	Play(c Cue)
	Stop(c Cue)
}

// Silent is a Player that does nothing. Used when sound is off or the
// audio device is unavailable (SSH sessions, CI).
type Silent struct{}

// Play implements Player.
func (Silent) Play(Cue) {}

// Stop implements Player.
func (Silent) Stop(Cue) {}

// Recorder is a Player that remembers cues, for tests and headless runs.
type Recorder struct {
	Cues    []Cue
	Stopped []Cue
}

// Play implements Player.
func (r *Recorder) Play(c Cue) {
	r.Cues = append(r.Cues, c)
}

// Stop implements Player.
func (r *Recorder) Stop(c Cue) {
	r.Stopped = append(r.Stopped, c)
}
