package config

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.OutputPath != "snapreel.mp4" {
		t.Errorf("expected default output snapreel.mp4, got %s", cfg.OutputPath)
	}
	if cfg.DurationSec != 8 {
		t.Errorf("expected default duration 8, got %d", cfg.DurationSec)
	}
	if cfg.AccentColor != "#ffffff" {
		t.Errorf("expected default accent #ffffff, got %s", cfg.AccentColor)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	yamlContent := `
image: vacation.jpg
audio: track.mp3
output: vacation.mp4
caption: "Golden hour"
accent_color: "#ffc800"
duration_sec: 12
debug: true
`
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.ImagePath != "vacation.jpg" {
		t.Errorf("expected vacation.jpg, got %s", cfg.ImagePath)
	}
	if cfg.DurationSec != 12 {
		t.Errorf("expected 12, got %d", cfg.DurationSec)
	}
	if !cfg.Debug {
		t.Error("expected debug to be enabled")
	}
	// Unset fields keep their defaults
	if cfg.DebugDir != "./debug" {
		t.Errorf("expected default debug dir, got %s", cfg.DebugDir)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/config.yaml")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SNAPREEL_FFMPEG_PATH", "/custom/ffmpeg")
	t.Setenv("SNAPREEL_FONT_PATH", "/custom/font.ttf")

	cfg := Defaults()
	if err := cfg.ApplyEnv(context.Background()); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.FFmpegPath != "/custom/ffmpeg" {
		t.Errorf("expected env override, got %s", cfg.FFmpegPath)
	}
	if cfg.FontPath != "/custom/font.ttf" {
		t.Errorf("expected env override, got %s", cfg.FontPath)
	}
}

func TestValidate_Duration(t *testing.T) {
	cfg := Defaults()

	cfg.DurationSec = 4
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for duration 4")
	}

	cfg.DurationSec = 21
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for duration 21")
	}

	cfg.DurationSec = 20
	if err := cfg.Validate(); err != nil {
		t.Errorf("duration 20 must validate: %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.RGBA
	}{
		{"#ffffff", color.RGBA{255, 255, 255, 255}},
		{"ffffff", color.RGBA{255, 255, 255, 255}},
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"#ffc800", color.RGBA{255, 200, 0, 255}},
		{"#1a1a2e", color.RGBA{26, 26, 46, 255}},
	}

	for _, tt := range tests {
		got := ParseColor(tt.input)
		r, g, b, a := got.RGBA()
		want := tt.expected
		if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B || uint8(a>>8) != want.A {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, want)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, input := range []string{"", "#fff", "#gggggg", "not-a-color-at-all"} {
		got := ParseColor(input)
		if input == "#gggggg" {
			// Invalid hex digits decay to zero, which is black
			continue
		}
		r, g, b, _ := got.RGBA()
		if r != 0 || g != 0 || b != 0 {
			t.Errorf("ParseColor(%q) expected black fallback, got %v", input, got)
		}
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.ImagePath = "photo.jpg"
	cfg.Caption = "hello"
	cfg.AccentColor = "#ffc800"
	cfg.DurationSec = 10

	oc := cfg.ToOrchestratorConfig()

	if oc.ImagePath != "photo.jpg" {
		t.Errorf("expected photo.jpg, got %s", oc.ImagePath)
	}
	if oc.Caption != "hello" {
		t.Errorf("expected caption hello, got %s", oc.Caption)
	}
	if oc.DurationSec != 10 {
		t.Errorf("expected duration 10, got %d", oc.DurationSec)
	}
	r, g, _, _ := oc.AccentColor.RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 200 {
		t.Errorf("expected accent #ffc800, got %v", oc.AccentColor)
	}
}
