// Package config loads Color Catcher settings and color presets from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ayusman/colorcatch/internal/vision"
)

// HSV channel limits in OpenCV's 8-bit representation.
const (
	MaxHue        = 180
	MaxSaturation = 255
	MaxValue      = 255
)

// ErrNoPresets is returned when a configuration has no color presets.
var ErrNoPresets = errors.New("at least one color preset is required")

// Config holds every tunable setting of the game.
type Config struct {
	// CameraID is the capture device index.
	CameraID int `yaml:"camera"`
	// Width and Height are the requested capture and playfield size.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// FPS is the requested capture rate.
	FPS int `yaml:"fps"`
	// Mirror flips frames horizontally so movement matches the screen.
	Mirror bool `yaml:"mirror"`
	// MinArea is the smallest blob, in square pixels, that is tracked.
	MinArea float64 `yaml:"minArea"`
	// Sound enables synthesized sound effects.
	Sound bool `yaml:"sound"`
	// Tray shows a system tray menu with game controls.
	Tray bool `yaml:"tray"`
	// Presets is the list of trackable colors, cycled in order.
	Presets []vision.ColorPreset `yaml:"presets"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		CameraID: 0,
		Width:    1280,
		Height:   720,
		FPS:      30,
		Mirror:   true,
		MinArea:  vision.DefaultMinArea,
		Sound:    false,
		Tray:     false,
		Presets:  vision.DefaultPresets(),
	}
}

// Load reads a YAML file over the defaults and validates the result.
// Keys missing from the file keep their default values; a presets list in
// the file replaces the built-in one.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks resolution, capture rate, thresholds and presets.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("resolution must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.MinArea < 0 {
		return fmt.Errorf("minArea cannot be negative, got %f", c.MinArea)
	}
	if len(c.Presets) == 0 {
		return ErrNoPresets
	}

	for i, p := range c.Presets {
		if p.Name == "" {
			return fmt.Errorf("preset %d has no name", i)
		}
		if len(p.Ranges) == 0 || len(p.Ranges) > 2 {
			return fmt.Errorf("preset %s must have 1 or 2 ranges, got %d", p.Name, len(p.Ranges))
		}
		for j, r := range p.Ranges {
			if err := validateRange(r); err != nil {
				return fmt.Errorf("preset %s range %d: %w", p.Name, j, err)
			}
		}
	}

	return nil
}

func validateRange(r vision.ColorRange) error {
	for _, c := range []vision.HSV{r.Lower, r.Upper} {
		if c.H < 0 || c.H > MaxHue {
			return fmt.Errorf("hue %v out of range [0, %d]", c.H, MaxHue)
		}
		if c.S < 0 || c.S > MaxSaturation {
			return fmt.Errorf("saturation %v out of range [0, %d]", c.S, MaxSaturation)
		}
		if c.V < 0 || c.V > MaxValue {
			return fmt.Errorf("value %v out of range [0, %d]", c.V, MaxValue)
		}
	}

	if r.Lower.H > r.Upper.H || r.Lower.S > r.Upper.S || r.Lower.V > r.Upper.V {
		return fmt.Errorf("lower bound %+v exceeds upper bound %+v", r.Lower, r.Upper)
	}

	return nil
}

// PresetNames returns the preset names in cycling order.
func (c *Config) PresetNames() []string {
	names := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		names[i] = p.Name
	}
	return names
}
