package mocks

import (
	"image"
	"image/color"

	"github.com/user/snapreel/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte, mimeType string) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)

	// LastCanvas is the canvas handed out by the default CreateCanvas.
	LastCanvas *Canvas
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	m.LastCanvas = &Canvas{Width: width, Height: height, Background: bg}
	return m.LastCanvas
}

func (m *Renderer) DecodeImage(data []byte, mimeType string) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, mimeType)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

var _ ports.Renderer = (*Renderer)(nil)

// ImageDrawCall records a call to DrawImageScaled.
type ImageDrawCall struct {
	X, Y, Width, Height int
}

// RectCall records a call to DrawRoundedRect.
type RectCall struct {
	X, Y, Width, Height int
	Radius              int
	Color               color.Color
}

// TextCall records a call to DrawTextOutlined.
type TextCall struct {
	Text    string
	X, Y    float64
	Style   ports.TextStyle
	Outline ports.OutlineStyle
}

// Canvas is a mock implementation of ports.Canvas that records draw
// operations for verification.
type Canvas struct {
	Width      int
	Height     int
	Background color.Color

	MeasureTextFunc func(text string, style ports.TextStyle) (float64, float64)

	ImageDraws   []ImageDrawCall
	RoundedRects []RectCall
	Texts        []TextCall
}

func (m *Canvas) DrawImageScaled(img image.Image, x, y, width, height int) {
	m.ImageDraws = append(m.ImageDraws, ImageDrawCall{X: x, Y: y, Width: width, Height: height})
}

func (m *Canvas) DrawRoundedRect(x, y, w, h, radius int, c color.Color) {
	m.RoundedRects = append(m.RoundedRects, RectCall{X: x, Y: y, Width: w, Height: h, Radius: radius, Color: c})
}

func (m *Canvas) DrawTextOutlined(text string, x, y float64, style ports.TextStyle, outline ports.OutlineStyle) {
	m.Texts = append(m.Texts, TextCall{Text: text, X: x, Y: y, Style: style, Outline: outline})
}

func (m *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	if m.MeasureTextFunc != nil {
		return m.MeasureTextFunc(text, style)
	}
	return float64(len([]rune(text))) * style.FontSize * 0.5, style.FontSize
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
}

var _ ports.Canvas = (*Canvas)(nil)
