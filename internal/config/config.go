// Package config provides YAML-based pet configuration loading and
// difficulty presets.
package config

import "time"

// PetConfig contains all tunables of the pet simulation.
type PetConfig struct {
	Pet        PetInfo          `yaml:"pet"`
	Stats      StatsConfig      `yaml:"stats"`
	Decay      DecayConfig      `yaml:"decay"`
	Items      []ItemConfig     `yaml:"items"`
	Rotate     RotateConfig     `yaml:"rotate"`
	Timings    TimingsConfig    `yaml:"timings"`
	Animation  AnimationConfig  `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PetInfo describes the pet itself.
type PetInfo struct {
	Name string `yaml:"name"`
}

// StatsConfig holds initial stat values for each visit to the game scene.
type StatsConfig struct {
	Health int `yaml:"health"`
	Fun    int `yaml:"fun"`
}

// DecayConfig defines the periodic stat loss.
type DecayConfig struct {
	Interval              time.Duration  `yaml:"interval"`
	Delta                 map[string]int `yaml:"delta"`
	KeepRunningOnGameOver bool           `yaml:"keep_running_on_game_over"`
}

// ItemConfig defines one placeable item button.
type ItemConfig struct {
	ID    string         `yaml:"id"`
	Glyph string         `yaml:"glyph"`
	Key   string         `yaml:"key"`
	Delta map[string]int `yaml:"delta"`
}

// RotateConfig defines the rotate action button.
type RotateConfig struct {
	Glyph string         `yaml:"glyph"`
	Key   string         `yaml:"key"`
	Delta map[string]int `yaml:"delta"`
}

// TimingsConfig holds presentation and scene durations.
type TimingsConfig struct {
	Boot    time.Duration `yaml:"boot"`    // boot scene before assets-loaded
	Preload time.Duration `yaml:"preload"` // preload scene before animations-registered
	Move    time.Duration `yaml:"move"`    // pet walking to a placed item
	Rotate  time.Duration `yaml:"rotate"`  // spin animation
	Settle  time.Duration `yaml:"settle"`  // pause between game over and home
}

// AnimationConfig defines the "funny faces" sprite animation played after eating.
type AnimationConfig struct {
	Frames    []int `yaml:"frames"`
	FrameRate int   `yaml:"frame_rate"`
	Yoyo      bool  `yaml:"yoyo"`
}

// DifficultyConfig selects a decay preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}
