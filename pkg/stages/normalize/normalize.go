// Package normalize implements the image normalization stage.
package normalize

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/snapreel/pkg/pipeline"
	"github.com/user/snapreel/pkg/ports"
)

// ErrDecode is returned when both decode strategies reject the input.
var ErrDecode = errors.New("normalize: image could not be decoded")

// Stage decodes arbitrary input images into a SourceImage.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new normalize stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("normalize"),
	}
}

// Execute decodes the input image. The declared MIME type selects the fast
// decode path; if that decoder rejects the input, a generic auto-detecting
// decode is attempted. No third strategy exists.
func (s *Stage) Execute(ctx context.Context, input pipeline.NormalizeInput) (*pipeline.SourceImage, error) {
	img, err := s.renderer.DecodeImage(input.Data, input.MIMEType)
	if err != nil {
		s.logger.Debug("Primary decode (%s) rejected input: %s", input.MIMEType, err)
		img, err = s.renderer.DecodeImage(input.Data, "")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	}

	src := pipeline.NewSourceImage(img)
	s.logger.Debug("Decoded source image: %dx%d", src.Width(), src.Height())
	return src, nil
}
