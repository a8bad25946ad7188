package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// note is one step of a cue: a tone (or a rest when freq is 0).
type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

// tone generates a fixed-length wave.
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewTone creates a streamer that plays freq for duration and then drains.
// A zero frequency produces silence.
func NewTone(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch {
		case o.freq == 0:
			val = 0
		case o.wave == WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case o.wave == WaveNoise:
			val = o.rng.Float64()*2 - 1
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		// Short linear fade at both ends so notes don't click.
		fade := o.rate.N(5 * time.Millisecond)
		if fade > 0 {
			if o.position < fade {
				val *= float64(o.position) / float64(fade)
			}
			if left := o.duration - o.position; left < fade {
				val *= float64(left) / float64(fade)
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// cueNotes is the melody of each cue.
var cueNotes = map[Cue][]note{
	CueStart:    {{523, 80 * time.Millisecond, WaveSine}, {659, 80 * time.Millisecond, WaveSine}, {784, 120 * time.Millisecond, WaveSine}},
	CueSelect:   {{880, 40 * time.Millisecond, WaveSquare}},
	CueEat:      {{330, 60 * time.Millisecond, WaveSquare}, {0, 30 * time.Millisecond, WaveSine}, {392, 60 * time.Millisecond, WaveSquare}},
	CueRotate:   {{440, 70 * time.Millisecond, WaveSine}, {554, 70 * time.Millisecond, WaveSine}, {659, 70 * time.Millisecond, WaveSine}, {880, 90 * time.Millisecond, WaveSine}},
	CueHome: {
		{392, 240 * time.Millisecond, WaveSine}, {494, 240 * time.Millisecond, WaveSine}, {587, 240 * time.Millisecond, WaveSine}, {494, 240 * time.Millisecond, WaveSine},
		{440, 240 * time.Millisecond, WaveSine}, {523, 240 * time.Millisecond, WaveSine}, {659, 360 * time.Millisecond, WaveSine}, {0, 120 * time.Millisecond, WaveSine},
		{587, 240 * time.Millisecond, WaveSine}, {494, 240 * time.Millisecond, WaveSine}, {440, 240 * time.Millisecond, WaveSine}, {392, 480 * time.Millisecond, WaveSine},
		{0, 240 * time.Millisecond, WaveSine},
	},
	CueGameOver: {{392, 150 * time.Millisecond, WaveSine}, {330, 150 * time.Millisecond, WaveSine}, {262, 300 * time.Millisecond, WaveSine}, {0, 20 * time.Millisecond, WaveSine}, {120, 120 * time.Millisecond, WaveNoise}},
}

// CueStreamer returns a finite streamer for c at the given volume
// (0 silences, 1 is full scale). Unknown cues return nil.
func CueStreamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, NewTone(n.freq, n.dur, n.wave, rate))
	}
	return newVolume(beep.Seq(parts...), volume)
}

// LoopStreamer returns an endless streamer repeating c. Unknown cues
// return nil.
func LoopStreamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	i := 0
	next := func() beep.Streamer {
		n := notes[i%len(notes)]
		i++
		return NewTone(n.freq, n.dur, n.wave, rate)
	}
	return newVolume(beep.Iterate(next), volume)
}

// CueDuration returns how long c plays.
func CueDuration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.dur
	}
	return d
}

// newVolume scales s linearly; effects.Volume works in log2 steps.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	if vol > 1 {
		vol = 1
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
