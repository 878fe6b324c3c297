package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "flappy.yaml"

// Load loads the flappy configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files found on the search path are decoded on top of the embedded defaults, so a
// partial file only overrides the keys it names.
func Load(customPath string) (FlappyConfig, error) {
	cfg, err := decode(defaultFlappyYAML, DefaultFlappyConfig())
	if err != nil {
		cfg = DefaultFlappyConfig() // Fallback to hardcoded if embed fails
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		custom, err := decode(data, cfg)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := custom.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return custom, nil
	}

	for _, path := range SearchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		found, err := decode(data, cfg)
		if err != nil || found.Validate() != nil {
			continue
		}
		return found, nil
	}

	return cfg, nil
}

// SearchPaths returns the implicit config locations in priority order.
func SearchPaths() []string {
	var paths []string
	if p := userConfigPath(ConfigFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

// Resolve returns the file Load would read for customPath, or "" for the embedded default.
func Resolve(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Marshal renders cfg as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func decode(data []byte, base FlappyConfig) (FlappyConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
