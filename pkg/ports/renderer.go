package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts the raster backend used for frame composition.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas filled with the background color.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// DecodeImage decodes image data. A non-empty MIME type selects the
	// matching decoder directly; an empty MIME type auto-detects the format.
	DecodeImage(data []byte, mimeType string) (image.Image, error)

	// EncodeImage encodes an image to the specified format. Quality is
	// ignored for lossless formats.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)
}

// Canvas provides drawing operations for compositing a single frame.
type Canvas interface {
	// DrawImageScaled draws an image scaled to the specified dimensions.
	DrawImageScaled(img image.Image, x, y, width, height int)

	// DrawRoundedRect draws a filled rounded rectangle.
	DrawRoundedRect(x, y, w, h, radius int, c color.Color)

	// DrawTextOutlined draws text with a drop shadow and a colored outline
	// beneath the fill, keeping it legible over arbitrary backgrounds.
	DrawTextOutlined(text string, x, y float64, style TextStyle, outline OutlineStyle)

	// MeasureText returns the rendered width and height of the text.
	MeasureText(text string, style TextStyle) (width, height float64)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize float64
	Color    color.Color
	Align    TextAlign
}

// OutlineStyle defines the shadow and outline passes of outlined text.
type OutlineStyle struct {
	Color        color.Color
	Width        float64
	ShadowOffset float64
}

// TextAlign specifies horizontal text alignment around the anchor point.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)
