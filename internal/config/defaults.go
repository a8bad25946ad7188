package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pet.yaml
var defaultPetYAML []byte

// DefaultPetConfig returns the built-in pet configuration.
func DefaultPetConfig() PetConfig {
	return PetConfig{
		Pet: PetInfo{Name: "Duck"},
		Stats: StatsConfig{
			Health: 100,
			Fun:    100,
		},
		Decay: DecayConfig{
			Interval: time.Second,
			Delta:    map[string]int{"health": -10, "fun": -5},
		},
		Items: []ItemConfig{
			{ID: "apple", Glyph: "@", Key: "1", Delta: map[string]int{"health": 20, "fun": 0}},
			{ID: "candy", Glyph: "%", Key: "2", Delta: map[string]int{"health": -10, "fun": 10}},
			{ID: "toy", Glyph: "&", Key: "3", Delta: map[string]int{"health": 0, "fun": 15}},
		},
		Rotate: RotateConfig{
			Glyph: "~",
			Key:   "4",
			Delta: map[string]int{"fun": 20},
		},
		Timings: TimingsConfig{
			Boot:    300 * time.Millisecond,
			Preload: 700 * time.Millisecond,
			Move:    500 * time.Millisecond,
			Rotate:  time.Second,
			Settle:  2 * time.Second,
		},
		Animation: AnimationConfig{
			Frames:    []int{1, 2, 3},
			FrameRate: 7,
			Yoyo:      true,
		},
		Difficulty: DifficultyConfig{Preset: DifficultyNormal},
	}
}

// DefaultYAML returns the embedded default YAML, for `vpet config` style dumps.
func DefaultYAML() []byte {
	return defaultPetYAML
}
