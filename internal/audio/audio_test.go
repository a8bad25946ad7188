package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1.0 || buf[j][0] > 1.0 {
				t.Fatalf("sample %d out of range: %f", total+j, buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return total
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveNoise} {
		s := NewTone(440, 50*time.Millisecond, wave, rate)
		if got, want := drain(t, s), rate.N(50*time.Millisecond); got != want {
			t.Errorf("wave %d streamed %d samples, expected %d", wave, got, want)
		}
		if s.Err() != nil {
			t.Errorf("Err() = %v, expected nil", s.Err())
		}
	}
}

func TestRestIsSilent(t *testing.T) {
	s := NewTone(0, 10*time.Millisecond, WaveSine, beep.SampleRate(8000))
	buf := make([][2]float64, 80)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("rest sample %d = %v, expected silence", i, buf[i])
		}
	}
}

func TestCueStreamers(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, c := range []Cue{CueStart, CueSelect, CueEat, CueRotate, CueGameOver, CueHome} {
		t.Run(c.String(), func(t *testing.T) {
			s := CueStreamer(c, rate, 0.5)
			if s == nil {
				t.Fatal("CueStreamer() = nil")
			}
			got := drain(t, s)
			want := rate.N(CueDuration(c))
			// Each note rounds to whole samples on its own.
			if diff := got - want; diff < -len(cueNotes[c]) || diff > len(cueNotes[c]) {
				t.Errorf("streamed %d samples, expected about %d", got, want)
			}
		})
	}
	if CueStreamer(Cue(99), rate, 1) != nil {
		t.Error("CueStreamer(unknown) != nil")
	}
}

func TestLoopStreamerRepeats(t *testing.T) {
	rate := beep.SampleRate(8000)
	if !CueHome.Loops() || CueEat.Loops() {
		t.Fatalf("Loops() home=%v eat=%v, expected true false", CueHome.Loops(), CueEat.Loops())
	}
	s := LoopStreamer(CueHome, rate, 0.5)
	if s == nil {
		t.Fatal("LoopStreamer() = nil")
	}
	want := 3 * rate.N(CueDuration(CueHome))
	buf := make([][2]float64, 512)
	total := 0
	for total < want {
		n, ok := s.Stream(buf)
		if !ok {
			t.Fatalf("loop drained after %d samples, expected at least %d", total, want)
		}
		total += n
	}
	if LoopStreamer(Cue(99), rate, 1) != nil {
		t.Error("LoopStreamer(unknown) != nil")
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var p Player = &r
	p.Play(CueEat)
	p.Play(CueGameOver)
	if len(r.Cues) != 2 || r.Cues[1] != CueGameOver {
		t.Errorf("Cues = %v, expected [eat game-over]", r.Cues)
	}
	p.Stop(CueHome)
	if len(r.Stopped) != 1 || r.Stopped[0] != CueHome {
		t.Errorf("Stopped = %v, expected [home]", r.Stopped)
	}
	Silent{}.Play(CueStart)
	Silent{}.Stop(CueHome)
}
