// Package caption implements caption line wrapping and overlay geometry.
// Like the layout math, this is pure calculation with no external
// dependencies; the rendering backend supplies the measurement function.
package caption

import (
	"math"
	"regexp"
	"strings"

	"github.com/user/snapreel/pkg/pipeline"
)

// MeasureFunc returns the rendered pixel width of a string.
type MeasureFunc func(s string) float64

var paragraphSep = regexp.MustCompile(`\n+`)

// Wrap splits text into lines that fit maxWidth.
//
// The text is trimmed and split into paragraphs on runs of newlines, so
// consecutive newlines never produce an empty paragraph or a blank output
// line. Within a paragraph, words are packed greedily: a word is appended
// to the current line while the candidate still measures within maxWidth.
// A single word wider than maxWidth is emitted whole as its own
// overflowing line, never split. Empty trimmed text yields no lines.
func Wrap(text string, maxWidth float64, measure MeasureFunc) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var lines []string
	for _, paragraph := range paragraphSep.Split(text, -1) {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, line)
				line = word
			} else {
				line = candidate
			}
		}
		lines = append(lines, line)
	}

	return lines
}

// Metrics describes the caption block geometry for one frame.
type Metrics struct {
	FontSize     float64
	LineHeight   float64
	MaxTextWidth float64

	// Panel is the semi-transparent backdrop behind the text block.
	PanelX      float64
	PanelY      float64
	PanelWidth  float64
	PanelHeight float64
}

// Panel geometry constants.
const (
	bottomMargin  = 48.0 // gap between panel and frame bottom
	panelOverhang = 96.0 // extra panel width beyond the text width limit
	panelPadRatio = 0.9  // vertical panel padding as a share of font size
)

// ComputeMetrics calculates the overlay geometry for lineCount wrapped
// lines on a frameWidth x frameHeight frame.
func ComputeMetrics(frameWidth, frameHeight, lineCount int) Metrics {
	fontSize := math.Round(float64(frameHeight) * pipeline.FontSizeRatio)
	lineHeight := fontSize * pipeline.LineHeightRatio
	maxTextWidth := float64(frameWidth) * pipeline.MaxWidthRatio

	textHeight := float64(lineCount) * lineHeight
	panelHeight := textHeight + fontSize*panelPadRatio
	panelWidth := maxTextWidth + panelOverhang

	return Metrics{
		FontSize:     fontSize,
		LineHeight:   lineHeight,
		MaxTextWidth: maxTextWidth,
		PanelX:       (float64(frameWidth) - panelWidth) / 2,
		PanelY:       float64(frameHeight) - panelHeight - bottomMargin,
		PanelWidth:   panelWidth,
		PanelHeight:  panelHeight,
	}
}

// LineY returns the vertical center of line i, with the text block
// centered inside the panel.
func (m Metrics) LineY(i, lineCount int) float64 {
	textHeight := float64(lineCount) * m.LineHeight
	top := m.PanelY + (m.PanelHeight-textHeight)/2
	return top + float64(i)*m.LineHeight + m.LineHeight/2
}
