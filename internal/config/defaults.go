package config

import (
	_ "embed"
)

//go:embed defaults/flow.yaml
var defaultFlowYAML []byte

// DefaultFlowConfig returns the built-in configuration used when no YAML
// source can be read.
func DefaultFlowConfig() FlowConfig {
	return FlowConfig{
		Modes: ModesConfig{
			Easy: ModeSizing{
				BaseGrid:   5,
				GridEvery:  10,
				MaxGrid:    8,
				BasePairs:  3,
				PairsEvery: 5,
				MaxPairs:   7,
			},
			Hard: ModeSizing{
				BaseGrid:   6,
				GridEvery:  8,
				MaxGrid:    10,
				BasePairs:  4,
				PairsEvery: 4,
				MaxPairs:   9,
			},
			Impossible: ModeSizing{
				BaseGrid:   5,
				GridEvery:  6,
				MaxGrid:    9,
				BasePairs:  4,
				PairsEvery: 3,
				MaxPairs:   9,
			},
		},
		Placement: PlacementConfig{
			MinGrid:           3,
			MaxAttempts:       100,
			MinDistance:       2,
			MaxDistanceFactor: 1.5,
		},
		Adversarial: AdversarialConfig{
			AfterLevel:   3,
			Chance:       0.7,
			MirrorChance: 0.8,
		},
		UI: UIConfig{
			HintSeconds:         2,
			NoticeSeconds:       3,
			NoticeAfterAttempts: 3,
		},
	}
}
