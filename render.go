package symbler

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Surface is the drawing target of Render. Implementations make no
// geometric decisions: coordinates arrive already normalized.
type Surface interface {
	// Clear fills the whole surface with bg.
	Clear(bg color.Color) error
	// StrokeLine strokes the segment a-b.
	StrokeLine(a, b Point, c color.Color, width float64) error
	// FillCircle fills a disc.
	FillCircle(center Point, r float64, c color.Color) error
}

// Defaults used by DrawString and Render:
// a beige square with thick round-ended strokes.
const (
	DefaultSide      = 400
	DefaultMargin    = 10
	DefaultThickness = 15

	captionSize = 14
)

// DefaultBackground is the background color of a rendered symbol.
var DefaultBackground color.Color = colornames.Beige

// RenderOption configures Render and DrawString.
type RenderOption func(*renderOptions)

type renderOptions struct {
	side       int
	margin     float64
	thickness  float64
	roundEnds  bool
	background color.Color
	caption    string
	parse      []Option
	cache      *LineCache
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		side:       DefaultSide,
		margin:     DefaultMargin,
		thickness:  DefaultThickness,
		roundEnds:  true,
		background: DefaultBackground,
	}
}

// WithSide sets the side of the square canvas in pixels.
func WithSide(side int) RenderOption {
	return func(o *renderOptions) {
		if side > 0 {
			o.side = side
		}
	}
}

// WithMargin sets the empty border around the symbol.
func WithMargin(m float64) RenderOption {
	return func(o *renderOptions) {
		o.margin = m
	}
}

// WithThickness sets the stroke width.
func WithThickness(t float64) RenderOption {
	return func(o *renderOptions) {
		o.thickness = t
	}
}

// WithRoundEnds caps every endpoint with a disc of radius thickness/2.
func WithRoundEnds(on bool) RenderOption {
	return func(o *renderOptions) {
		o.roundEnds = on
	}
}

// WithBackground sets the color the surface is cleared to.
func WithBackground(c color.Color) RenderOption {
	return func(o *renderOptions) {
		if c != nil {
			o.background = c
		}
	}
}

// WithCaption prints s centered under the symbol. Only DrawString honors
// it.
func WithCaption(s string) RenderOption {
	return func(o *renderOptions) {
		o.caption = s
	}
}

// WithParseOptions forwards options to Parse. Only DrawString honors it.
func WithParseOptions(opts ...Option) RenderOption {
	return func(o *renderOptions) {
		o.parse = append(o.parse, opts...)
	}
}

// WithLineCache makes DrawString take its lines from c. The cache's own
// parse options then apply and WithParseOptions is ignored.
func WithLineCache(c *LineCache) RenderOption {
	return func(o *renderOptions) {
		o.cache = c
	}
}

// Render clears dst and strokes lines onto it in order.
func Render(dst Surface, lines []Line, opts ...RenderOption) error {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return render(dst, lines, o)
}

func render(dst Surface, lines []Line, o renderOptions) error {
	if err := dst.Clear(o.background); err != nil {
		return fmt.Errorf("symbler: clear: %w", err)
	}
	for i, l := range lines {
		if err := dst.StrokeLine(l.A, l.B, l.Color, o.thickness); err != nil {
			return fmt.Errorf("symbler: line %d: %w", i, err)
		}
		if !o.roundEnds {
			continue
		}
		r := o.thickness / 2
		for _, p := range [2]Point{l.A, l.B} {
			if err := dst.FillCircle(p, r, l.Color); err != nil {
				return fmt.Errorf("symbler: line %d cap: %w", i, err)
			}
		}
	}
	return nil
}

// DrawString parses input and renders it onto a new Canvas.
// The caller must Close the returned canvas.
func DrawString(input string, opts ...RenderOption) (*Canvas, error) {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var model []Line
	if o.cache != nil {
		model = o.cache.Lines(input)
	} else {
		model = Parse(input, o.parse...).Lines()
	}
	lines := Normalize(model, float64(o.side), o.margin+o.thickness/2)

	cv := NewCanvas(o.side)
	if err := render(cv, lines, o); err != nil {
		_ = cv.Close()
		return nil, err
	}
	if o.caption != "" {
		if err := cv.DrawCaption(o.caption, captionSize, Black); err != nil {
			_ = cv.Close()
			return nil, err
		}
	}
	return cv, nil
}
