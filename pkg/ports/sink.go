package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate pipeline results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveWrappedLines saves the wrapped caption lines.
	SaveWrappedLines(lines []string) error

	// SaveComposedFrame saves the composed still frame.
	SaveComposedFrame(img image.Image) error

	// SaveEncodeArgs saves the encoder argument list.
	SaveEncodeArgs(args []string) error
}
