// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/webp"

	"github.com/user/snapreel/pkg/ports"
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct {
	fonts *fontSource
}

// New creates a new Renderer. fontPath selects the TrueType font used
// for all text; an empty path falls back to the embedded Go Regular font.
func New(fontPath string) (*Renderer, error) {
	fonts, err := newFontSource(fontPath)
	if err != nil {
		return nil, err
	}
	return &Renderer{fonts: fonts}, nil
}

// CreateCanvas creates a new drawing canvas.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc, fonts: r.fonts}
}

// DecodeImage decodes image data. A recognized MIME type selects its
// decoder directly; anything else falls back to content sniffing.
func (r *Renderer) DecodeImage(data []byte, mimeType string) (image.Image, error) {
	reader := bytes.NewReader(data)

	switch mimeType {
	case "image/jpeg":
		return jpeg.Decode(reader)
	case "image/png":
		return png.Decode(reader)
	case "image/gif":
		return gif.Decode(reader)
	case "image/webp":
		return webp.Decode(reader)
	default:
		img, _, err := image.Decode(reader)
		return img, err
	}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc    *gg.Context
	fonts *fontSource
}

// DrawImageScaled draws an image scaled to the specified dimensions.
func (c *Canvas) DrawImageScaled(img image.Image, x, y, width, height int) {
	c.dc.Push()
	defer c.dc.Pop()

	bounds := img.Bounds()
	scaleX := float64(width) / float64(bounds.Dx())
	scaleY := float64(height) / float64(bounds.Dy())

	c.dc.Translate(float64(x), float64(y))
	c.dc.Scale(scaleX, scaleY)
	c.dc.DrawImage(img, 0, 0)
}

// DrawRoundedRect draws a filled rounded rectangle.
func (c *Canvas) DrawRoundedRect(x, y, w, h, radius int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRoundedRectangle(float64(x), float64(y), float64(w), float64(h), float64(radius))
	c.dc.Fill()
}

// DrawTextOutlined draws text in three passes: a drop shadow, an
// outline traced by offsetting the glyphs in eight directions, and
// the fill on top.
func (c *Canvas) DrawTextOutlined(text string, x, y float64, style ports.TextStyle, outline ports.OutlineStyle) {
	c.dc.SetFontFace(c.fonts.face(style.FontSize))
	ax := anchorX(style.Align)

	if outline.ShadowOffset > 0 {
		c.dc.SetColor(color.RGBA{0, 0, 0, 160})
		c.dc.DrawStringAnchored(text, x+outline.ShadowOffset, y+outline.ShadowOffset, ax, 0.5)
	}

	if outline.Width > 0 && outline.Color != nil {
		c.dc.SetColor(outline.Color)
		w := outline.Width
		for dx := -w; dx <= w; dx += w {
			for dy := -w; dy <= w; dy += w {
				if dx == 0 && dy == 0 {
					continue
				}
				c.dc.DrawStringAnchored(text, x+dx, y+dy, ax, 0.5)
			}
		}
	}

	c.dc.SetColor(style.Color)
	c.dc.DrawStringAnchored(text, x, y, ax, 0.5)
}

// MeasureText returns the rendered width and height of the text.
func (c *Canvas) MeasureText(text string, style ports.TextStyle) (width, height float64) {
	c.dc.SetFontFace(c.fonts.face(style.FontSize))
	return c.dc.MeasureString(text)
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

func anchorX(align ports.TextAlign) float64 {
	switch align {
	case ports.AlignCenter:
		return 0.5
	case ports.AlignRight:
		return 1.0
	default:
		return 0.0
	}
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
