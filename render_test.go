package symbler

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"testing"
)

// recordingSurface logs every call in order.
type recordingSurface struct {
	calls  []string
	failAt int // 1-based call index that fails, 0 never
}

func (r *recordingSurface) record(s string) error {
	r.calls = append(r.calls, s)
	if r.failAt == len(r.calls) {
		return errors.New("surface failure")
	}
	return nil
}

func (r *recordingSurface) Clear(bg color.Color) error {
	return r.record(fmt.Sprintf("clear %v", colorOf(bg)))
}

func (r *recordingSurface) StrokeLine(a, b Point, c color.Color, w float64) error {
	return r.record(fmt.Sprintf("line %v %v %v %g", a, b, colorOf(c), w))
}

func (r *recordingSurface) FillCircle(p Point, radius float64, c color.Color) error {
	return r.record(fmt.Sprintf("disc %v %g %v", p, radius, colorOf(c)))
}

func colorOf(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func TestRender_CallOrder(t *testing.T) {
	red := ColorFromNibbles(15, 0, 0)
	lines := []Line{
		{A: Pt(1, 2), B: Pt(3, 4), Color: red},
		{A: Pt(5, 5), B: Pt(5, 5), Color: Black},
	}

	tests := []struct {
		name string
		opts []RenderOption
		want []string
	}{
		{
			name: "plain",
			opts: []RenderOption{WithRoundEnds(false), WithThickness(2), WithBackground(color.White)},
			want: []string{
				"clear #ffffff",
				"line {1 2} {3 4} #ff0000 2",
				"line {5 5} {5 5} #000000 2",
			},
		},
		{
			name: "round ends on beige",
			opts: []RenderOption{WithThickness(4)},
			want: []string{
				"clear #f5f5dc",
				"line {1 2} {3 4} #ff0000 4",
				"disc {1 2} 2 #ff0000",
				"disc {3 4} 2 #ff0000",
				"line {5 5} {5 5} #000000 4",
				"disc {5 5} 2 #000000",
				"disc {5 5} 2 #000000",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec recordingSurface
			if err := Render(&rec, lines, tt.opts...); err != nil {
				t.Fatalf("Render() = %v", err)
			}
			if len(rec.calls) != len(tt.want) {
				t.Fatalf("calls = %q, want %q", rec.calls, tt.want)
			}
			for i := range rec.calls {
				if rec.calls[i] != tt.want[i] {
					t.Errorf("call %d = %q, want %q", i, rec.calls[i], tt.want[i])
				}
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	lines := []Line{{A: Pt(0, 0), B: Pt(1, 1)}}
	for failAt := 1; failAt <= 4; failAt++ {
		rec := recordingSurface{failAt: failAt}
		err := Render(&rec, lines)
		if err == nil {
			t.Errorf("failure at call %d not reported", failAt)
		}
		if len(rec.calls) != failAt {
			t.Errorf("failure at call %d: rendering continued to %d calls", failAt, len(rec.calls))
		}
	}
}

func TestDrawString(t *testing.T) {
	cv, err := DrawString("301", WithSide(100), WithMargin(10), WithThickness(10), WithRoundEnds(false))
	if err != nil {
		t.Fatalf("DrawString() = %v", err)
	}
	defer func() { _ = cv.Close() }()

	img := cv.Image()
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("image is %v, want 100x100", b)
	}

	// A horizontal stroke through the middle of the canvas.
	if c := colorOf(img.At(50, 50)); c.R > 64 || c.G > 64 || c.B > 64 {
		t.Errorf("center pixel = %v, want the black stroke", c)
	}
	if c := colorOf(img.At(2, 2)); c != (Color{0xf5, 0xf5, 0xdc}) {
		t.Errorf("corner pixel = %v, want beige", c)
	}

	var buf bytes.Buffer
	if err := cv.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestDrawString_Empty(t *testing.T) {
	cv, err := DrawString("", WithSide(20))
	if err != nil {
		t.Fatalf("DrawString() = %v", err)
	}
	defer func() { _ = cv.Close() }()
	if c := colorOf(cv.Image().At(10, 10)); c != (Color{0xf5, 0xf5, 0xdc}) {
		t.Errorf("pixel = %v, want beige background only", c)
	}
}

func TestDrawString_Caption(t *testing.T) {
	cv, err := DrawString("301", WithSide(120), WithCaption("301"))
	if err != nil {
		t.Fatalf("DrawString() = %v", err)
	}
	defer func() { _ = cv.Close() }()

	// Some pixel in the bottom band must have been darkened by the text.
	img := cv.Image()
	dark := false
	for y := 100; y < 120 && !dark; y++ {
		for x := 0; x < 120; x++ {
			if c := colorOf(img.At(x, y)); c.B < 0xc0 {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Error("caption left no mark on the bottom band")
	}
}
