package pipeline

import (
	"errors"
	"image"

	"github.com/user/snapreel/pkg/ports"
)

// ErrSourceReleased is returned when a released SourceImage is drawn.
var ErrSourceReleased = errors.New("pipeline: source image already released")

// SourceImage wraps decoded image pixels with explicit ownership. The call
// that decoded it must release it exactly once after compositing, including
// on error paths.
type SourceImage struct {
	img      image.Image
	width    int
	height   int
	released bool
}

// NewSourceImage wraps a decoded image.
func NewSourceImage(img image.Image) *SourceImage {
	bounds := img.Bounds()
	return &SourceImage{
		img:    img,
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
}

// Width returns the intrinsic width in pixels.
func (s *SourceImage) Width() int {
	return s.width
}

// Height returns the intrinsic height in pixels.
func (s *SourceImage) Height() int {
	return s.height
}

// DrawInto draws the image scaled into the target rectangle.
func (s *SourceImage) DrawInto(canvas ports.Canvas, x, y, w, h int) error {
	if s.released {
		return ErrSourceReleased
	}
	canvas.DrawImageScaled(s.img, x, y, w, h)
	return nil
}

// Release drops the pixel data. Safe to call once; later draws fail with
// ErrSourceReleased.
func (s *SourceImage) Release() {
	s.released = true
	s.img = nil
}

// Released reports whether Release has been called.
func (s *SourceImage) Released() bool {
	return s.released
}
