// Package compose implements the frame composition stage.
package compose

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/user/snapreel/pkg/pipeline"
	"github.com/user/snapreel/pkg/ports"
	"github.com/user/snapreel/pkg/stages/caption"
)

// Theme colors for the composed frame.
var (
	// backgroundColor fills the letterbox area around the photo.
	backgroundColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	// panelColor is the translucent backdrop behind the caption.
	panelColor = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	// fillColor is the final solid text pass.
	fillColor = color.White
)

const panelCornerRadius = 16

// Stage composes the source image and caption overlay into one fixed
// resolution frame.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new compose stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("compose"),
	}
}

// Execute renders the frame and returns it as PNG bytes. The source image
// is released exactly once, whether or not composition succeeds.
func (s *Stage) Execute(ctx context.Context, input pipeline.ComposeInput) (pipeline.ComposeResult, error) {
	result := pipeline.ComposeResult{}
	canvas := s.renderer.CreateCanvas(pipeline.FrameWidth, pipeline.FrameHeight, backgroundColor)

	// Letterbox: scale to fit, centered.
	x, y, w, h := letterbox(input.Source.Width(), input.Source.Height())
	drawErr := input.Source.DrawInto(canvas, x, y, w, h)
	input.Source.Release()
	if drawErr != nil {
		return result, fmt.Errorf("draw source image: %w", drawErr)
	}
	s.logger.Debug("Letterboxed source at (%d,%d) %dx%d", x, y, w, h)

	if text := strings.TrimSpace(input.Overlay.Text); text != "" {
		if err := s.drawOverlay(canvas, text, input.Overlay.Accent); err != nil {
			return result, fmt.Errorf("draw overlay: %w", err)
		}
	}

	data, err := s.renderer.EncodeImage(canvas.ToImage(), ports.FormatPNG, 0)
	if err != nil {
		return result, fmt.Errorf("encode frame: %w", err)
	}

	if s.sink.Enabled() {
		if err := s.sink.SaveComposedFrame(canvas.ToImage()); err != nil {
			s.logger.Warn("Failed to save composed frame: %s", err)
		}
	}

	result.FrameData = data
	return result, nil
}

// letterbox computes the centered draw rectangle for a srcW x srcH image
// inside the output frame, preserving aspect ratio.
func letterbox(srcW, srcH int) (x, y, w, h int) {
	scale := math.Min(
		float64(pipeline.FrameWidth)/float64(srcW),
		float64(pipeline.FrameHeight)/float64(srcH),
	)
	w = int(math.Round(float64(srcW) * scale))
	h = int(math.Round(float64(srcH) * scale))
	x = (pipeline.FrameWidth - w) / 2
	y = (pipeline.FrameHeight - h) / 2
	return x, y, w, h
}

// drawOverlay renders the caption panel and text block.
func (s *Stage) drawOverlay(canvas ports.Canvas, text string, accent color.Color) error {
	metrics := caption.ComputeMetrics(pipeline.FrameWidth, pipeline.FrameHeight, 0)
	style := ports.TextStyle{
		FontSize: metrics.FontSize,
		Color:    fillColor,
		Align:    ports.AlignCenter,
	}

	lines := caption.Wrap(text, metrics.MaxTextWidth, func(t string) float64 {
		w, _ := canvas.MeasureText(t, style)
		return w
	})
	if len(lines) == 0 {
		return nil
	}
	metrics = caption.ComputeMetrics(pipeline.FrameWidth, pipeline.FrameHeight, len(lines))
	s.logger.Debug("Caption wrapped into %d lines", len(lines))

	if s.sink.Enabled() {
		if err := s.sink.SaveWrappedLines(lines); err != nil {
			s.logger.Warn("Failed to save wrapped lines: %s", err)
		}
	}

	canvas.DrawRoundedRect(
		int(math.Round(metrics.PanelX)),
		int(math.Round(metrics.PanelY)),
		int(math.Round(metrics.PanelWidth)),
		int(math.Round(metrics.PanelHeight)),
		panelCornerRadius,
		panelColor,
	)

	outline := ports.OutlineStyle{
		Color:        accent,
		Width:        2,
		ShadowOffset: 3,
	}
	centerX := float64(pipeline.FrameWidth) / 2
	for i, line := range lines {
		canvas.DrawTextOutlined(line, centerX, metrics.LineY(i, len(lines)), style, outline)
	}
	return nil
}
