package pet

import (
	"math/rand"
	"testing"
)

func TestApplyDelta(t *testing.T) {
	tests := []struct {
		name     string
		start    Stats
		delta    DeltaVector
		want     Stats
		gameOver bool
	}{
		{
			name:     "underflow clamps to zero",
			start:    Stats{Health: 100, Fun: 100},
			delta:    NewDeltaVector(map[Stat]int{StatHealth: -150}),
			want:     Stats{Health: 0, Fun: 100},
			gameOver: true,
		},
		{
			name:  "fun has no upper cap",
			start: Stats{Health: 100, Fun: 80},
			delta: NewDeltaVector(map[Stat]int{StatFun: 20}),
			want:  Stats{Health: 100, Fun: 100},
		},
		{
			name:  "above one hundred",
			start: Stats{Health: 95, Fun: 100},
			delta: Delta(20, 0),
			want:  Stats{Health: 115, Fun: 100},
		},
		{
			name:     "negative delta landing on zero ends the game",
			start:    Stats{Health: 10, Fun: 50},
			delta:    Delta(-10, -5),
			want:     Stats{Health: 0, Fun: 45},
			gameOver: true,
		},
		{
			name:  "zero delta on empty stat is harmless",
			start: Stats{Health: 50, Fun: 0},
			delta: Delta(20, 0),
			want:  Stats{Health: 70, Fun: 0},
		},
		{
			name:  "absent stats untouched",
			start: Stats{Health: 3, Fun: 4},
			delta: NewDeltaVector(map[Stat]int{}),
			want:  Stats{Health: 3, Fun: 4},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewStatTracker(tc.start)
			out := tr.ApplyDelta(tc.delta)
			if out.Stats != tc.want {
				t.Errorf("ApplyDelta() stats = %+v, want %+v", out.Stats, tc.want)
			}
			if tr.Stats() != tc.want {
				t.Errorf("tracker stats = %+v, want %+v", tr.Stats(), tc.want)
			}
			if out.GameOver != tc.gameOver {
				t.Errorf("ApplyDelta() GameOver = %v, want %v", out.GameOver, tc.gameOver)
			}
		})
	}
}

func TestApplyDeltaReportsDepletedStats(t *testing.T) {
	tr := NewStatTracker(Stats{Health: 5, Fun: 5})
	out := tr.ApplyDelta(Delta(-6, -6))

	if len(out.Depleted) != 2 || out.Depleted[0] != StatHealth || out.Depleted[1] != StatFun {
		t.Errorf("Depleted = %v, want [health fun]", out.Depleted)
	}
}

func TestApplyDeltaNeverBelowZero(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr := NewStatTracker(Stats{Health: 100, Fun: 100})

	for i := 0; i < 2000; i++ {
		out := tr.ApplyDelta(Delta(rng.Intn(81)-50, rng.Intn(81)-50))
		if out.Stats.Health < 0 || out.Stats.Fun < 0 {
			t.Fatalf("iteration %d: stats went negative: %+v", i, out.Stats)
		}
	}
}

func TestDeltaVectorIsImmutable(t *testing.T) {
	src := map[Stat]int{StatHealth: 5}
	v := NewDeltaVector(src)
	src[StatHealth] = 99

	if d, _ := v.Get(StatHealth); d != 5 {
		t.Errorf("vector changed with its source map: %d", d)
	}

	scaled := v.Scale(2)
	if d, _ := v.Get(StatHealth); d != 5 {
		t.Errorf("vector changed through Scale(): %d", d)
	}
	if d, _ := scaled.Get(StatHealth); d != 10 {
		t.Errorf("Scale(2) health = %d, want 10", d)
	}
}

func TestDeltaVectorDropsUnknownStats(t *testing.T) {
	v := NewDeltaVector(map[Stat]int{"hunger": -5, StatFun: 1})
	if got := v.Stats(); len(got) != 1 || got[0] != StatFun {
		t.Errorf("Stats() = %v, want [fun]", got)
	}
}

func TestDeltaVectorScaleAndString(t *testing.T) {
	v := Delta(-10, -5).Scale(1.5)

	if got := v.String(); got != "health-15 fun-8" {
		t.Errorf("String() = %q", got)
	}
	if got := Delta(20, 0).String(); got != "health+20 fun+0" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseStat(t *testing.T) {
	if s, err := ParseStat(" Health "); err != nil || s != StatHealth {
		t.Errorf("ParseStat(Health) = %q, %v", s, err)
	}
	if _, err := ParseStat("hunger"); err == nil {
		t.Error("ParseStat(hunger) should fail")
	}
}
