// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"mime"
	"path/filepath"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/user/snapreel/pkg/pipeline"
	"github.com/user/snapreel/pkg/ports"
)

// ErrNoInputImage is returned when no input image path is configured.
var ErrNoInputImage = errors.New("orchestrator: no input image")

// Config contains all configuration for one render.
type Config struct {
	// Input
	ImagePath string
	AudioPath string // optional
	Caption   string // optional

	// Output
	OutputPath string

	// Style
	AccentColor color.Color

	// Timing
	DurationSec int

	// OnProgress, when non-nil, receives encoder progress updates.
	OnProgress pipeline.ProgressFunc
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		OutputPath:  "snapreel.mp4",
		AccentColor: color.White,
		DurationSec: 8,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	normalizeStage pipeline.Stage[pipeline.NormalizeInput, *pipeline.SourceImage]
	composeStage   pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult]
	encodeStage    pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	fs             ports.FileSystem
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	normalizeStage pipeline.Stage[pipeline.NormalizeInput, *pipeline.SourceImage],
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		normalizeStage: normalizeStage,
		composeStage:   composeStage,
		encodeStage:    encodeStage,
		fs:             fs,
		logger:         logger,
	}
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	if config.ImagePath == "" {
		return RunResult{}, ErrNoInputImage
	}

	o.logger.Info(l10n.T("Starting render pipeline"))
	o.logger.Info(l10n.F("Rendering %s (%ds clip)...", config.ImagePath, config.DurationSec))

	// 1. Read inputs
	imageData, err := o.fs.ReadFile(config.ImagePath)
	if err != nil {
		o.logger.Error(l10n.F("Failed to read input image: %s", err))
		return RunResult{}, fmt.Errorf("read input image: %w", err)
	}

	var audioData []byte
	if config.AudioPath != "" {
		audioData, err = o.fs.ReadFile(config.AudioPath)
		if err != nil {
			o.logger.Error(l10n.F("Failed to read audio: %s", err))
			return RunResult{}, fmt.Errorf("read audio: %w", err)
		}
	}

	// 2. Normalize the input image
	source, err := o.normalizeStage.Execute(ctx, pipeline.NormalizeInput{
		Data:     imageData,
		MIMEType: mimeTypeFor(config.ImagePath),
	})
	if err != nil {
		return RunResult{}, fmt.Errorf("normalize stage: %w", err)
	}
	sourceWidth, sourceHeight := source.Width(), source.Height()

	// 3. Compose the still frame
	composed, err := o.composeStage.Execute(ctx, pipeline.ComposeInput{
		Source: source,
		Overlay: pipeline.OverlaySpec{
			Text:   config.Caption,
			Accent: config.AccentColor,
		},
	})
	if err != nil {
		return RunResult{}, fmt.Errorf("compose stage: %w", err)
	}

	// 4. Encode the video
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		FrameData:   composed.FrameData,
		AudioData:   audioData,
		DurationSec: config.DurationSec,
		OnProgress:  config.OnProgress,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode video: %s", err))
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}
	o.logger.Info(l10n.F("Video encoded: %d bytes", len(encoded.VideoData)))

	// 5. Write output file
	if err := o.fs.WriteFile(config.OutputPath, encoded.VideoData); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}
	o.logger.Info(l10n.F("Output saved to %s", config.OutputPath))

	o.logger.Info(l10n.T("Pipeline completed successfully"))

	return RunResult{
		OutputPath:    config.OutputPath,
		SourceWidth:   sourceWidth,
		SourceHeight:  sourceHeight,
		FrameCount:    config.DurationSec * pipeline.FrameRate,
		VideoDuration: encoded.DurationMs,
		VideoFileSize: encoded.FileSize,
		HasAudio:      encoded.HasAudio,
	}, nil
}

// mimeTypeFor maps a file extension to its declared MIME type. An unknown
// extension yields an empty string, which selects auto-detection downstream.
func mimeTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return ""
	}
	return mime.TypeByExtension(ext)
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	OutputPath string

	// Source image information
	SourceWidth  int
	SourceHeight int

	// Video information
	FrameCount    int
	VideoDuration int // in ms
	VideoFileSize int64
	HasAudio      bool
}
