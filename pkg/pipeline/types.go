package pipeline

import (
	"image/color"

	"github.com/go-playground/validator/v10"
)

// Output frame geometry and timing are fixed; they are not user-configurable.
const (
	FrameWidth  = 1280
	FrameHeight = 720
	FrameRate   = 30

	// MinDurationSec and MaxDurationSec bound the requested video length.
	MinDurationSec = 5
	MaxDurationSec = 20
)

// Caption overlay ratios, relative to the output frame.
const (
	FontSizeRatio   = 0.065 // font size as a share of frame height
	LineHeightRatio = 1.35  // line height as a multiple of font size
	MaxWidthRatio   = 0.75  // caption width limit as a share of frame width
)

// =============================================================================
// Normalize Stage Types
// =============================================================================

// NormalizeInput contains the raw image to decode.
type NormalizeInput struct {
	Data     []byte
	MIMEType string // declared type, e.g. "image/jpeg"; may be empty
}

// =============================================================================
// Compose Stage Types
// =============================================================================

// OverlaySpec describes the caption overlay. Empty trimmed text means no
// overlay is drawn.
type OverlaySpec struct {
	Text   string
	Accent color.Color
}

// ComposeInput contains parameters for frame composition.
type ComposeInput struct {
	Source  *SourceImage
	Overlay OverlaySpec
}

// ComposeResult contains the composed still frame as lossless PNG bytes.
// The bytes are immutable once produced.
type ComposeResult struct {
	FrameData []byte
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// ProgressFunc receives encoder progress updates during one encode call.
type ProgressFunc func(frame, totalFrames int)

// EncodeInput contains parameters for video encoding.
type EncodeInput struct {
	FrameData   []byte `validate:"required"`
	AudioData   []byte // nil means no audio track
	DurationSec int    `validate:"gte=5,lte=20"`

	// OnProgress, when non-nil, is invoked for each encoder progress update.
	OnProgress ProgressFunc `validate:"-"`
}

// HasAudio reports whether an audio track was supplied.
func (in EncodeInput) HasAudio() bool {
	return len(in.AudioData) > 0
}

// TotalFrames returns the pan/zoom frame count for the requested duration.
func (in EncodeInput) TotalFrames() int {
	return in.DurationSec * FrameRate
}

var validate = validator.New()

// Validate checks the encode request against its domain constraints.
func (in EncodeInput) Validate() error {
	return validate.Struct(in)
}

// EncodeResult contains the encoded video.
type EncodeResult struct {
	VideoData  []byte
	DurationMs int
	FileSize   int64
	HasAudio   bool
}
