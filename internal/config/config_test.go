package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pet/internal/pet"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	def := DefaultPetConfig()

	if cfg.Stats != def.Stats {
		t.Errorf("Stats = %+v, expected %+v", cfg.Stats, def.Stats)
	}
	if cfg.Decay.Interval != def.Decay.Interval {
		t.Errorf("Decay.Interval = %v, expected %v", cfg.Decay.Interval, def.Decay.Interval)
	}
	if len(cfg.Items) != len(def.Items) {
		t.Fatalf("len(Items) = %d, expected %d", len(cfg.Items), len(def.Items))
	}
	for i := range cfg.Items {
		if cfg.Items[i].ID != def.Items[i].ID || cfg.Items[i].Glyph != def.Items[i].Glyph {
			t.Errorf("Items[%d] = %+v, expected %+v", i, cfg.Items[i], def.Items[i])
		}
	}
	if cfg.Timings != def.Timings {
		t.Errorf("Timings = %+v, expected %+v", cfg.Timings, def.Timings)
	}
	if cfg.Difficulty.Preset != DifficultyNormal {
		t.Errorf("Preset = %q, expected %q", cfg.Difficulty.Preset, DifficultyNormal)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("stats:\n  health: 50\ntimings:\n  settle: 3s\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Stats.Health != 50 {
		t.Errorf("Health = %d, expected 50", cfg.Stats.Health)
	}
	if cfg.Stats.Fun != 100 {
		t.Errorf("Fun = %d, expected default 100", cfg.Stats.Fun)
	}
	if cfg.Timings.Settle != 3*time.Second {
		t.Errorf("Settle = %v, expected 3s", cfg.Timings.Settle)
	}
	if cfg.Timings.Move != 500*time.Millisecond {
		t.Errorf("Move = %v, expected default 500ms", cfg.Timings.Move)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero interval", "decay:\n  interval: 0s\n", "decay.interval"},
		{"negative stat", "stats:\n  health: -1\n", "non-negative"},
		{"unknown stat", "decay:\n  delta:\n    hunger: -1\n", "unknown stat"},
		{"duplicate id", "items:\n  - {id: apple, glyph: a, delta: {health: 1}}\n  - {id: apple, glyph: b, delta: {health: 2}}\n", "duplicate item"},
		{"rotate in items", "items:\n  - {id: rotate, glyph: r, delta: {fun: 1}}\n", "rotate"},
		{"long glyph", "items:\n  - {id: pear, glyph: pp, delta: {health: 1}}\n", "single character"},
		{"no items", "items: []\n", "at least one item"},
		{"bad preset", "difficulty:\n  preset: brutal\n", "unknown difficulty"},
		{"key clash", "items:\n  - {id: pear, glyph: p, key: \"4\", delta: {health: 1}}\n", "bound to both"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Parse() error = nil, expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %q, expected it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadPetCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet.yaml")
	if err := os.WriteFile(path, []byte("pet:\n  name: Goose\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := LoadPet(path)
	if err != nil {
		t.Fatalf("LoadPet error: %v", err)
	}
	if cfg.Pet.Name != "Goose" {
		t.Errorf("Name = %q, expected %q", cfg.Pet.Name, "Goose")
	}

	if _, err := LoadPet(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadPet(missing) error = nil, expected error")
	}
}

func TestSessionConfigScalesDecay(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		health int
		fun    int
	}{
		{DifficultyEasy, -5, -3},
		{DifficultyNormal, -10, -5},
		{DifficultyHard, -15, -8},
		{DifficultyFixed, -10, -5},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPetConfig()
			ApplyPreset(&cfg, tt.preset)
			sc := cfg.SessionConfig()
			if h, _ := sc.Decay.Get(pet.StatHealth); h != tt.health {
				t.Errorf("health decay = %d, expected %d", h, tt.health)
			}
			if f, _ := sc.Decay.Get(pet.StatFun); f != tt.fun {
				t.Errorf("fun decay = %d, expected %d", f, tt.fun)
			}
		})
	}
}

func TestCatalogFromConfig(t *testing.T) {
	cat, err := DefaultPetConfig().Catalog()
	if err != nil {
		t.Fatalf("Catalog() error: %v", err)
	}
	want := []string{"apple", "candy", "toy", "rotate"}
	got := cat.Names()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Names() = %v, expected %v", got, want)
	}
	apple, err := cat.Get(pet.ItemApple)
	if err != nil {
		t.Fatalf("Get(apple) error: %v", err)
	}
	if apple.Glyph != '@' || apple.Hotkey != "1" {
		t.Errorf("apple = %+v, expected glyph @ key 1", apple)
	}
	if h, _ := apple.Delta.Get(pet.StatHealth); h != 20 {
		t.Errorf("apple health delta = %d, expected 20", h)
	}
	rot, ok := cat.ByHotkey("4")
	if !ok || rot.ID != pet.ItemRotate {
		t.Errorf("ByHotkey(4) = %+v, %v, expected rotate", rot, ok)
	}
}

func TestParsePreset(t *testing.T) {
	for in, want := range map[string]DifficultyPreset{"": DifficultyNormal, "EASY": DifficultyEasy, " hard ": DifficultyHard, "fixed": DifficultyFixed} {
		got, err := ParsePreset(in)
		if err != nil || got != want {
			t.Errorf("ParsePreset(%q) = %q, %v, expected %q", in, got, err, want)
		}
	}
}
