package config

import (
	_ "embed"
)

//go:embed defaults/cube.yaml
var defaultCubeYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		DefaultSize: 3,
		Colors: ColorScheme{
			U: "#FFFFFF",
			L: "#FF8C00",
			F: "#00A651",
			R: "#D7263D",
			B: "#1E5EFF",
			D: "#FFD500",
		},
	}
}
