package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-pet/internal/pet"
)

// Validate checks the configuration for values the simulation cannot run with.
func (c PetConfig) Validate() error {
	if c.Stats.Health < 0 || c.Stats.Fun < 0 {
		return fmt.Errorf("config: initial stats must be non-negative, got health=%d fun=%d", c.Stats.Health, c.Stats.Fun)
	}
	if c.Decay.Interval <= 0 {
		return fmt.Errorf("config: decay.interval must be positive, got %s", c.Decay.Interval)
	}
	if err := checkDelta("decay.delta", c.Decay.Delta); err != nil {
		return err
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.Items))
	keys := make(map[string]string, len(c.Items)+1)
	for i, it := range c.Items {
		if it.ID == "" {
			return fmt.Errorf("config: items[%d] has no id", i)
		}
		if it.ID == string(pet.ItemRotate) {
			return fmt.Errorf("config: %q is configured under rotate, not items", it.ID)
		}
		if seen[it.ID] {
			return fmt.Errorf("config: duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
		if utf8.RuneCountInString(it.Glyph) != 1 {
			return fmt.Errorf("config: item %q glyph must be a single character, got %q", it.ID, it.Glyph)
		}
		if err := checkDelta("item "+it.ID, it.Delta); err != nil {
			return err
		}
		if it.Key != "" {
			if other, dup := keys[it.Key]; dup {
				return fmt.Errorf("config: key %q bound to both %q and %q", it.Key, other, it.ID)
			}
			keys[it.Key] = it.ID
		}
	}
	if len(c.Items) == 0 {
		return fmt.Errorf("config: at least one item is required")
	}

	if c.Rotate.Delta == nil {
		return fmt.Errorf("config: rotate is missing")
	}
	if err := checkDelta("rotate", c.Rotate.Delta); err != nil {
		return err
	}
	if c.Rotate.Glyph != "" && utf8.RuneCountInString(c.Rotate.Glyph) != 1 {
		return fmt.Errorf("config: rotate glyph must be a single character, got %q", c.Rotate.Glyph)
	}
	if other, dup := keys[c.Rotate.Key]; dup && c.Rotate.Key != "" {
		return fmt.Errorf("config: key %q bound to both %q and rotate", c.Rotate.Key, other)
	}

	t := c.Timings
	for name, d := range map[string]int64{
		"boot": int64(t.Boot), "preload": int64(t.Preload), "move": int64(t.Move),
		"rotate": int64(t.Rotate), "settle": int64(t.Settle),
	} {
		if d < 0 {
			return fmt.Errorf("config: timings.%s must not be negative", name)
		}
	}
	if c.Animation.FrameRate <= 0 {
		return fmt.Errorf("config: animation.frame_rate must be positive, got %d", c.Animation.FrameRate)
	}
	if len(c.Animation.Frames) == 0 {
		return fmt.Errorf("config: animation.frames must not be empty")
	}
	return nil
}

func checkDelta(where string, m map[string]int) error {
	for name := range m {
		if _, err := pet.ParseStat(name); err != nil {
			return fmt.Errorf("config: %s: %w", where, err)
		}
	}
	return nil
}
