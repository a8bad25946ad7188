package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-pet/internal/pet"
)

// SessionConfig builds the game scene settings, scaling decay by the
// difficulty preset.
func (c PetConfig) SessionConfig() pet.SessionConfig {
	return pet.SessionConfig{
		Initial:             pet.Stats{Health: c.Stats.Health, Fun: c.Stats.Fun},
		DecayInterval:       c.Decay.Interval,
		Decay:               deltaVector(c.Decay.Delta).Scale(DecayMultiplier(c.Difficulty.Preset)),
		SettleDelay:         c.Timings.Settle,
		KeepDecayOnGameOver: c.Decay.KeepRunningOnGameOver,
	}
}

// Catalog builds the item catalog: configured items in order, then rotate.
func (c PetConfig) Catalog() (*pet.ItemCatalog, error) {
	items := make([]pet.Item, 0, len(c.Items)+1)
	for _, it := range c.Items {
		items = append(items, pet.Item{
			ID:     pet.ItemID(it.ID),
			Glyph:  glyph(it.Glyph, '?'),
			Hotkey: it.Key,
			Delta:  deltaVector(it.Delta),
		})
	}
	items = append(items, pet.Item{
		ID:     pet.ItemRotate,
		Glyph:  glyph(c.Rotate.Glyph, '~'),
		Hotkey: c.Rotate.Key,
		Delta:  deltaVector(c.Rotate.Delta),
	})
	cat, err := pet.NewItemCatalog(items...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cat, nil
}

func deltaVector(m map[string]int) pet.DeltaVector {
	out := make(map[pet.Stat]int, len(m))
	for name, d := range m {
		if stat, err := pet.ParseStat(name); err == nil {
			out[stat] = d
		}
	}
	return pet.NewDeltaVector(out)
}

func glyph(s string, fallback rune) rune {
	if r, _ := utf8.DecodeRuneInString(s); r != utf8.RuneError && s != "" {
		return r
	}
	return fallback
}
