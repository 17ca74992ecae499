// Package config provides configuration loading and management.
package config

import (
	"context"
	"image/color"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"github.com/user/snapreel/pkg/orchestrator"
)

// Config represents the full configuration for snapreel.
type Config struct {
	// Input/Output
	ImagePath  string `yaml:"image"`
	AudioPath  string `yaml:"audio"`
	OutputPath string `yaml:"output"`

	// Overlay
	Caption     string `yaml:"caption"`
	AccentColor string `yaml:"accent_color"`

	// Timing
	DurationSec int `yaml:"duration_sec" validate:"gte=5,lte=20"`

	// Tooling
	FFmpegPath string `yaml:"ffmpeg_path" env:"SNAPREEL_FFMPEG_PATH"`
	FontPath   string `yaml:"font_path" env:"SNAPREEL_FONT_PATH"`
	WorkDir    string `yaml:"work_dir" env:"SNAPREEL_WORK_DIR"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		OutputPath:  "snapreel.mp4",
		AccentColor: "#ffffff",
		DurationSec: 8,
		DebugDir:    "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ApplyEnv overlays environment variable overrides onto the config.
func (c *Config) ApplyEnv(ctx context.Context) error {
	return envconfig.Process(ctx, c)
}

var validate = validator.New()

// Validate checks the configuration against its domain constraints.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	var r, g, b uint8
	for i, c := range []byte{hex[0], hex[1]} {
		v := hexValue(c)
		if i == 0 {
			r = v << 4
		} else {
			r |= v
		}
	}
	for i, c := range []byte{hex[2], hex[3]} {
		v := hexValue(c)
		if i == 0 {
			g = v << 4
		} else {
			g |= v
		}
	}
	for i, c := range []byte{hex[4], hex[5]} {
		v := hexValue(c)
		if i == 0 {
			b = v << 4
		} else {
			b |= v
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		ImagePath:   c.ImagePath,
		AudioPath:   c.AudioPath,
		OutputPath:  c.OutputPath,
		Caption:     c.Caption,
		AccentColor: ParseColor(c.AccentColor),
		DurationSec: c.DurationSec,
	}
}
