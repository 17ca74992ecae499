package pipeline

import (
	"errors"
	"image"
	"testing"
)

func TestSourceImage_Dimensions(t *testing.T) {
	src := NewSourceImage(image.NewRGBA(image.Rect(0, 0, 640, 480)))

	if src.Width() != 640 || src.Height() != 480 {
		t.Errorf("expected 640x480, got %dx%d", src.Width(), src.Height())
	}
}

func TestSourceImage_DimensionsSurviveRelease(t *testing.T) {
	src := NewSourceImage(image.NewRGBA(image.Rect(0, 0, 640, 480)))
	src.Release()

	// Dimensions are cached at construction and stay readable
	if src.Width() != 640 || src.Height() != 480 {
		t.Errorf("expected 640x480 after release, got %dx%d", src.Width(), src.Height())
	}
	if !src.Released() {
		t.Error("expected source to report released")
	}
}

func TestSourceImage_DrawAfterRelease(t *testing.T) {
	src := NewSourceImage(image.NewRGBA(image.Rect(0, 0, 10, 10)))
	src.Release()

	err := src.DrawInto(nil, 0, 0, 10, 10)
	if !errors.Is(err, ErrSourceReleased) {
		t.Errorf("expected ErrSourceReleased, got %v", err)
	}
}

func TestSourceImage_ReleaseIsIdempotent(t *testing.T) {
	src := NewSourceImage(image.NewRGBA(image.Rect(0, 0, 10, 10)))

	src.Release()
	src.Release()

	if !src.Released() {
		t.Error("expected source to stay released")
	}
}

func TestEncodeInput_Validate(t *testing.T) {
	valid := EncodeInput{FrameData: []byte{0x89}, DurationSec: 8}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid input, got %v", err)
	}

	missing := EncodeInput{DurationSec: 8}
	if err := missing.Validate(); err == nil {
		t.Error("expected error for missing frame data")
	}

	tooShort := EncodeInput{FrameData: []byte{0x89}, DurationSec: 4}
	if err := tooShort.Validate(); err == nil {
		t.Error("expected error for duration below minimum")
	}

	tooLong := EncodeInput{FrameData: []byte{0x89}, DurationSec: 21}
	if err := tooLong.Validate(); err == nil {
		t.Error("expected error for duration above maximum")
	}
}

func TestEncodeInput_TotalFrames(t *testing.T) {
	in := EncodeInput{DurationSec: 8}
	if in.TotalFrames() != 240 {
		t.Errorf("expected 240 frames, got %d", in.TotalFrames())
	}
}

func TestEncodeInput_HasAudio(t *testing.T) {
	if (EncodeInput{}).HasAudio() {
		t.Error("expected no audio for empty input")
	}
	if !(EncodeInput{AudioData: []byte{0x49}}).HasAudio() {
		t.Error("expected audio when data is present")
	}
}
