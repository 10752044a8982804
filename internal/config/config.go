// Package config provides YAML-based configuration loading for level
// sizing, endpoint placement and UI timings of the flow puzzle.
package config

// FlowConfig contains all configuration for the flow puzzle.
type FlowConfig struct {
	Modes       ModesConfig       `yaml:"modes"`
	Placement   PlacementConfig   `yaml:"placement"`
	Adversarial AdversarialConfig `yaml:"adversarial"`
	UI          UIConfig          `yaml:"ui"`
}

// ModesConfig holds the sizing formula of each mode.
type ModesConfig struct {
	Easy       ModeSizing `yaml:"easy"`
	Hard       ModeSizing `yaml:"hard"`
	Impossible ModeSizing `yaml:"impossible"`
}

// ModeSizing derives grid size and pair count from the level number:
// grid = min(base_grid + level/grid_every, max_grid), likewise for pairs.
type ModeSizing struct {
	BaseGrid   int `yaml:"base_grid"`
	GridEvery  int `yaml:"grid_every"` // Levels per extra row/column
	MaxGrid    int `yaml:"max_grid"`
	BasePairs  int `yaml:"base_pairs"`
	PairsEvery int `yaml:"pairs_every"` // Levels per extra pair
	MaxPairs   int `yaml:"max_pairs"`
}

// PlacementConfig tunes connectable endpoint placement.
type PlacementConfig struct {
	MinGrid           int     `yaml:"min_grid"`
	MaxAttempts       int     `yaml:"max_attempts"`
	MinDistance       int     `yaml:"min_distance"`
	MaxDistanceFactor float64 `yaml:"max_distance_factor"` // Multiplied by grid size
}

// AdversarialConfig tunes impossible-mode placement.
type AdversarialConfig struct {
	AfterLevel   int     `yaml:"after_level"`   // Only levels above this use adversarial placement
	Chance       float64 `yaml:"chance"`        // Per-pair probability
	MirrorChance float64 `yaml:"mirror_chance"` // Mirror an earlier pair rather than use a corner
}

// UIConfig holds transient overlay timings.
type UIConfig struct {
	HintSeconds         int `yaml:"hint_seconds"`
	NoticeSeconds       int `yaml:"notice_seconds"`
	NoticeAfterAttempts int `yaml:"notice_after_attempts"` // Impossible-mode notice threshold
}
