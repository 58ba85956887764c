package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded YAML.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Scoring: ScoringConfig{
			PointsPerLine: 100,
		},
		Speed: SpeedConfig{
			InitialMS:     1000,
			MinMS:         100,
			DecayPerPoint: 0.8,
		},
		Window: WindowConfig{
			BlockSize: 30,
			Trail:     true,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
