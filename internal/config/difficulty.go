package config

import (
	"math"

	"github.com/vovakirdan/tui-flow/internal/games/flow/engine"
)

// DifficultyPreset names a play mode.
type DifficultyPreset string

const (
	DifficultyEasy       DifficultyPreset = "easy"
	DifficultyHard       DifficultyPreset = "hard"
	DifficultyImpossible DifficultyPreset = "impossible"
)

// Mode returns the engine mode for the preset. Unknown presets play easy.
func (p DifficultyPreset) Mode() engine.Mode {
	switch p {
	case DifficultyHard:
		return engine.ModeHard
	case DifficultyImpossible:
		return engine.ModeImpossible
	default:
		return engine.ModeEasy
	}
}

// Sizing converts the YAML sizing block to the engine formula.
func (s ModeSizing) Sizing() engine.Sizing {
	return engine.Sizing{
		BaseGrid:   s.BaseGrid,
		GridEvery:  s.GridEvery,
		MaxGrid:    s.MaxGrid,
		BasePairs:  s.BasePairs,
		PairsEvery: s.PairsEvery,
		MaxPairs:   s.MaxPairs,
	}
}

// GridSize returns the unclamped grid size for a level.
func (s ModeSizing) GridSize(level int) int {
	return s.Sizing().GridSize(level)
}

// PairCount returns the unclamped pair count for a level.
func (s ModeSizing) PairCount(level int) int {
	return s.Sizing().PairCount(level)
}

// ForMode returns the sizing block of a mode.
func (m ModesConfig) ForMode(mode engine.Mode) ModeSizing {
	switch mode {
	case engine.ModeHard:
		return m.Hard
	case engine.ModeImpossible:
		return m.Impossible
	default:
		return m.Easy
	}
}

// GenParams builds generator parameters from the configuration.
func (c FlowConfig) GenParams() engine.GenParams {
	return engine.GenParams{
		Easy:              c.Modes.Easy.Sizing(),
		Hard:              c.Modes.Hard.Sizing(),
		Impossible:        c.Modes.Impossible.Sizing(),
		MinGrid:           c.Placement.MinGrid,
		MaxAttempts:       c.Placement.MaxAttempts,
		MinDistance:       c.Placement.MinDistance,
		MaxDistanceFactor: c.Placement.MaxDistanceFactor,
		AdversarialAfter:  c.Adversarial.AfterLevel,
		AdversarialChance: c.Adversarial.Chance,
		MirrorChance:      c.Adversarial.MirrorChance,
	}
}

// Validate clamps nonsensical values so that generation always terminates
// with a playable grid.
func (c *FlowConfig) Validate() {
	def := DefaultFlowConfig()

	c.Modes.Easy.validate(def.Modes.Easy)
	c.Modes.Hard.validate(def.Modes.Hard)
	c.Modes.Impossible.validate(def.Modes.Impossible)

	c.Placement.MinGrid = clamp(c.Placement.MinGrid, 2, engine.MaxGridSize)
	if c.Placement.MaxAttempts <= 0 {
		c.Placement.MaxAttempts = def.Placement.MaxAttempts
	}
	if c.Placement.MinDistance <= 0 {
		c.Placement.MinDistance = def.Placement.MinDistance
	}
	if c.Placement.MaxDistanceFactor <= 0 {
		c.Placement.MaxDistanceFactor = def.Placement.MaxDistanceFactor
	}

	if c.Adversarial.AfterLevel < 0 {
		c.Adversarial.AfterLevel = 0
	}
	c.Adversarial.Chance = clampF(c.Adversarial.Chance, 0, 1)
	c.Adversarial.MirrorChance = clampF(c.Adversarial.MirrorChance, 0, 1)

	if c.UI.HintSeconds <= 0 {
		c.UI.HintSeconds = def.UI.HintSeconds
	}
	if c.UI.NoticeSeconds <= 0 {
		c.UI.NoticeSeconds = def.UI.NoticeSeconds
	}
	if c.UI.NoticeAfterAttempts < 0 {
		c.UI.NoticeAfterAttempts = 0
	}
}

func (s *ModeSizing) validate(def ModeSizing) {
	if *s == (ModeSizing{}) {
		*s = def
		return
	}
	if s.BaseGrid <= 0 {
		s.BaseGrid = def.BaseGrid
	}
	if s.MaxGrid <= 0 {
		s.MaxGrid = def.MaxGrid
	}
	s.MaxGrid = clamp(s.MaxGrid, 2, engine.MaxGridSize)
	if s.BasePairs <= 0 {
		s.BasePairs = def.BasePairs
	}
	if s.MaxPairs <= 0 {
		s.MaxPairs = def.MaxPairs
	}
	s.MaxPairs = clamp(s.MaxPairs, 1, engine.PaletteSize)
	if s.GridEvery < 0 {
		s.GridEvery = 0
	}
	if s.PairsEvery < 0 {
		s.PairsEvery = 0
	}
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
