package symbler

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas is a Surface backed by a software-rendered gg context.
type Canvas struct {
	dc   *gg.Context
	side int
}

// Verify at compile time that Canvas implements Surface.
var _ Surface = (*Canvas)(nil)

// NewCanvas creates a side×side canvas.
func NewCanvas(side int) *Canvas {
	return &Canvas{dc: gg.NewContext(side, side), side: side}
}

// Side returns the canvas side in pixels.
func (c *Canvas) Side() int { return c.side }

// Clear implements Surface.
func (c *Canvas) Clear(bg color.Color) error {
	c.dc.ClearWithColor(gg.FromColor(bg))
	return nil
}

// StrokeLine implements Surface.
func (c *Canvas) StrokeLine(a, b Point, col color.Color, width float64) error {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	return c.dc.Stroke()
}

// FillCircle implements Surface.
func (c *Canvas) FillCircle(center Point, r float64, col color.Color) error {
	c.dc.SetColor(col)
	c.dc.DrawCircle(center.X, center.Y, r)
	return c.dc.Fill()
}

// captionFont is the Go Regular font, parsed on first use.
var captionFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// DrawCaption prints s centered along the bottom edge.
func (c *Canvas) DrawCaption(s string, size float64, col color.Color) error {
	src, err := captionFont()
	if err != nil {
		return fmt.Errorf("symbler: caption font: %w", err)
	}
	c.dc.SetFont(src.Face(size))
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, float64(c.side)/2, float64(c.side)-size/2, 0.5, 0)
	return nil
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG writes the canvas as a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// Close releases the underlying context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
