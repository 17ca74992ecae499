package caption

import (
	"strings"
	"testing"

	"github.com/user/snapreel/pkg/pipeline"
)

// measureByRunes gives every rune a width of 10 pixels.
func measureByRunes(s string) float64 {
	return float64(len([]rune(s))) * 10
}

func TestWrap_Empty(t *testing.T) {
	if lines := Wrap("", 500, measureByRunes); len(lines) != 0 {
		t.Errorf("expected 0 lines, got %d", len(lines))
	}
	if lines := Wrap("   \n\t ", 500, measureByRunes); len(lines) != 0 {
		t.Errorf("expected 0 lines for whitespace input, got %d", len(lines))
	}
}

func TestWrap_SingleLine(t *testing.T) {
	lines := Wrap("hello world", 500, measureByRunes)
	if len(lines) != 1 || lines[0] != "hello world" {
		t.Errorf("expected [hello world], got %v", lines)
	}
}

func TestWrap_GreedyFill(t *testing.T) {
	// Width limit of 110px fits 11 runes per line.
	lines := Wrap("one two three four", 110, measureByRunes)
	want := []string{"one two", "three four"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], line)
		}
	}
}

func TestWrap_NoLineExceedsLimit(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog near the riverbank at dawn"
	maxWidth := 150.0
	for _, line := range Wrap(text, maxWidth, measureByRunes) {
		if measureByRunes(line) > maxWidth && len(strings.Fields(line)) > 1 {
			t.Errorf("multi-word line %q exceeds width limit", line)
		}
	}
}

func TestWrap_OverwideWordEmittedWhole(t *testing.T) {
	lines := Wrap("hi incomprehensibility yo", 100, measureByRunes)
	found := false
	for _, line := range lines {
		if line == "incomprehensibility" {
			found = true
		}
		if strings.Contains(line, "incompre") && line != "incomprehensibility" {
			t.Errorf("over-wide word was split: %q", line)
		}
	}
	if !found {
		t.Errorf("over-wide word missing from output: %v", lines)
	}
}

func TestWrap_ParagraphsBreakLines(t *testing.T) {
	lines := Wrap("first\nsecond", 500, measureByRunes)
	want := []string{"first", "second"}
	if len(lines) != 2 || lines[0] != want[0] || lines[1] != want[1] {
		t.Errorf("expected %v, got %v", want, lines)
	}
}

func TestWrap_ConsecutiveNewlinesYieldNoBlankLine(t *testing.T) {
	// Runs of newlines are one paragraph break; no spurious empty line.
	lines := Wrap("first\n\n\nsecond", 500, measureByRunes)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	for _, line := range lines {
		if line == "" {
			t.Errorf("blank line emitted: %v", lines)
		}
	}
}

func TestComputeMetrics(t *testing.T) {
	m := ComputeMetrics(pipeline.FrameWidth, pipeline.FrameHeight, 3)

	if m.FontSize != 47 {
		t.Errorf("expected font size 47, got %v", m.FontSize)
	}
	if m.LineHeight != 47*1.35 {
		t.Errorf("expected line height %v, got %v", 47*1.35, m.LineHeight)
	}
	if m.MaxTextWidth != 960 {
		t.Errorf("expected max text width 960, got %v", m.MaxTextWidth)
	}
	if m.PanelWidth != 960+96 {
		t.Errorf("expected panel width 1056, got %v", m.PanelWidth)
	}

	wantPanelHeight := 3*m.LineHeight + m.FontSize*0.9
	if m.PanelHeight != wantPanelHeight {
		t.Errorf("expected panel height %v, got %v", wantPanelHeight, m.PanelHeight)
	}
	wantPanelY := 720 - wantPanelHeight - 48
	if m.PanelY != wantPanelY {
		t.Errorf("expected panel y %v, got %v", wantPanelY, m.PanelY)
	}
	if m.PanelX != (1280-m.PanelWidth)/2 {
		t.Errorf("panel not centered: x=%v width=%v", m.PanelX, m.PanelWidth)
	}
}

func TestMetrics_LineYCentersBlock(t *testing.T) {
	m := ComputeMetrics(pipeline.FrameWidth, pipeline.FrameHeight, 2)

	top := m.LineY(0, 2) - m.LineHeight/2
	bottom := m.LineY(1, 2) + m.LineHeight/2

	above := top - m.PanelY
	below := m.PanelY + m.PanelHeight - bottom
	if diff := above - below; diff > 0.001 || diff < -0.001 {
		t.Errorf("text block not vertically centered: above=%v below=%v", above, below)
	}
}
