// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"encoding/json"
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/snapreel/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveWrappedLines saves the wrapped caption lines as JSON.
func (s *Sink) SaveWrappedLines(lines []string) error {
	data, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal wrapped lines: %w", err)
	}
	path := filepath.Join(s.baseDir, "caption-lines.json")
	return s.fs.WriteFile(path, data)
}

// SaveComposedFrame saves the composed still frame as a PNG.
func (s *Sink) SaveComposedFrame(img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode composed frame: %w", err)
	}
	path := filepath.Join(s.baseDir, "frame.png")
	return s.fs.WriteFile(path, data)
}

// SaveEncodeArgs saves the encoder argument list as JSON.
func (s *Sink) SaveEncodeArgs(args []string) error {
	data, err := json.MarshalIndent(args, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal encode args: %w", err)
	}
	path := filepath.Join(s.baseDir, "encode-args.json")
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
