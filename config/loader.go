package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// Default returns the embedded default configuration.
func Default() EngineConfig {
	var cfg EngineConfig
	if err := yaml.Unmarshal(defaultEngineYAML, &cfg); err != nil {
		// The embedded default is part of the build; a parse failure is a
		// packaging bug.
		panic(fmt.Sprintf("config: embedded default is invalid: %v", err))
	}
	return cfg
}

// Load reads the engine configuration.
// Search order: customPath -> ~/.twenty48/engine.yaml -> ./configs/engine.yaml -> embedded default.
func Load(customPath string) (EngineConfig, error) {
	if customPath != "" {
		var cfg EngineConfig
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath("engine.yaml"); userPath != "" {
		if cfg, ok := tryLoad(userPath); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryLoad(filepath.Join("configs", "engine.yaml")); ok {
		return cfg, nil
	}

	return Default(), nil
}

func tryLoad(path string) (EngineConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, false
	}
	var cfg EngineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, false
	}
	return cfg, true
}

func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".twenty48", filename)
}
