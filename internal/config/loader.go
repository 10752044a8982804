package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlow loads the flow configuration.
// Search order: customPath -> ~/.tui-flow/configs/flow.yaml -> ./configs/flow.yaml -> embedded default.
// Values missing from a file keep their defaults, and the result is validated.
func LoadFlow(customPath string) (FlowConfig, error) {
	cfg, _, err := LoadFlowWithSource(customPath)
	return cfg, err
}

// LoadFlowWithSource is LoadFlow that also reports where the configuration came from.
func LoadFlowWithSource(customPath string) (FlowConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFlowConfig(), "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseFlow(data)
		if err != nil {
			return DefaultFlowConfig(), "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flow.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseFlow(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "flow.yaml")
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := ParseFlow(data); err == nil {
			return cfg, local, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseFlow(defaultFlowYAML)
	if err != nil {
		return DefaultFlowConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// ParseFlow decodes YAML over the defaults and validates the result.
func ParseFlow(data []byte) (FlowConfig, error) {
	cfg := DefaultFlowConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultFlowConfig(), err
	}
	cfg.Validate()
	return cfg, nil
}

// MarshalFlow encodes a configuration as YAML.
func MarshalFlow(cfg FlowConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-flow", "configs", filename)
}
