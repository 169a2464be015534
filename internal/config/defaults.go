package config

import (
	_ "embed"
)

//go:embed defaults/simplesmart.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
func DefaultConfig() Config {
	return Config{
		Matrix: MatrixConfig{
			Width:  7,
			Height: 7,
		},
		Screen: ScreenConfig{
			Width:  80,
			Height: 25,
		},
		PutApoInScreens: true,
		Trail: TrailConfig{
			StepMillis: 60,
		},
		RecordScores: false,
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
