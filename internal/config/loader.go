package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "simplesmart.yaml"

// Sources reported by Load.
const (
	SourceEmbedded  = "embedded default"
	SourceHardcoded = "hardcoded default"
)

// Load loads the configuration.
// Search order: customPath -> ~/.simplesmart/config.yaml -> ./configs/simplesmart.yaml
// -> embedded default -> hardcoded default.
// Keys missing from a file keep their default values. A file found on the
// search path that cannot be read or parsed is reported, not skipped. The second return value
// names where the config came from.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	// Try user config directory, then local configs directory.
	// A file that exists but does not parse is an error, not a fall-through.
	for _, path := range []string{DefaultPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return validated(cfg, path)
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), SourceHardcoded, nil
	}
	return validated(cfg, SourceEmbedded)
}

// parse decodes YAML on top of the hardcoded defaults.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validated(cfg Config, source string) (Config, string, error) {
	if err := cfg.Validate(); err != nil {
		return Config{}, source, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

// DefaultPath returns the user config path, or empty if home is unavailable.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".simplesmart", "config.yaml")
}

// WriteDefault writes the embedded default config to path, creating parent
// directories. An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if path == "" {
		return errors.New("config: no path given and home directory is unavailable")
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s: %w", path, os.ErrExist)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, defaultYAML, 0644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}

// Marshal renders the config as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
