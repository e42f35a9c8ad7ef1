// Package config loads settings for the cube command from YAML.
package config

import (
	"fmt"

	"github.com/SeamusWaldron/cube"
)

// Config holds command-line defaults.
type Config struct {
	DefaultSize int            `yaml:"default_size"`
	Seed        *int64         `yaml:"seed"`
	Labeled     bool           `yaml:"labeled"`
	DBPath      string         `yaml:"db_path"`
	Scramble    ScrambleConfig `yaml:"scramble"`
	Colors      ColorScheme    `yaml:"colors"`
}

// ScrambleConfig holds scramble generation settings.
type ScrambleConfig struct {
	Length int `yaml:"length"` // 0 selects size^3
}

// ColorScheme maps each face's home colour to a terminal colour.
type ColorScheme struct {
	U string `yaml:"u"`
	L string `yaml:"l"`
	F string `yaml:"f"`
	R string `yaml:"r"`
	B string `yaml:"b"`
	D string `yaml:"d"`
}

// ForColor returns the terminal colour used for a sticker value.
// Values outside the six home colours get an empty string.
func (s ColorScheme) ForColor(c cube.Color) string {
	switch c {
	case cube.White:
		return s.U
	case cube.Orange:
		return s.L
	case cube.Green:
		return s.F
	case cube.Red:
		return s.R
	case cube.Blue:
		return s.B
	case cube.Yellow:
		return s.D
	default:
		return ""
	}
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	if c.DefaultSize < 2 || c.DefaultSize > cube.MaxSize {
		return fmt.Errorf("default_size must be between 2 and %d, got %d", cube.MaxSize, c.DefaultSize)
	}
	if c.Scramble.Length < 0 {
		return fmt.Errorf("scramble.length must not be negative, got %d", c.Scramble.Length)
	}
	return nil
}

// CubeOptions returns the library options this config selects.
func (c Config) CubeOptions() []cube.Option {
	opts := []cube.Option{cube.WithLabeledStickers(c.Labeled)}
	if c.Seed != nil {
		opts = append(opts, cube.WithSeed(*c.Seed))
	}
	return opts
}
