package ggrenderer

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSource parses a TrueType font once and hands out faces per size.
// Faces are cached because gg requires a new face for every point size.
type fontSource struct {
	font *truetype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// newFontSource loads a TrueType font from path. An empty path selects
// the embedded Go Regular font so text rendering works without any
// fonts installed on the host.
func newFontSource(path string) (*fontSource, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", path, err)
		}
		data = b
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	return &fontSource{
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// face returns a font.Face for the given point size.
func (s *fontSource) face(size float64) font.Face {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(s.font, &truetype.Options{Size: size})
	s.faces[size] = f
	return f
}
