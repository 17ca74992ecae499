package mocks

import (
	"image"

	"github.com/user/snapreel/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	enabled bool

	SavedLines  [][]string
	SavedFrames []image.Image
	SavedArgs   [][]string
}

// NewDebugSink creates a mock sink, enabled or not.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{enabled: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveWrappedLines(lines []string) error {
	m.SavedLines = append(m.SavedLines, lines)
	return nil
}

func (m *DebugSink) SaveComposedFrame(img image.Image) error {
	m.SavedFrames = append(m.SavedFrames, img)
	return nil
}

func (m *DebugSink) SaveEncodeArgs(args []string) error {
	m.SavedArgs = append(m.SavedArgs, args)
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
