package text

import (
	"image"
	"image/color"

	"tinygo.org/x/tinyfont"

	"github.com/gogpu/softras"
)

// bounded is implemented by destinations that know their size.
type bounded interface {
	Bounds() image.Rectangle
}

// displayer adapts a PixelSetter to tinygo.org/x/drivers.Displayer.
// Pixels outside bounds are dropped: fallback fonts carry their own
// metrics and may reach past the cell.
type displayer struct {
	dst    PixelSetter
	bounds image.Rectangle
}

func newDisplayer(dst PixelSetter) *displayer {
	d := &displayer{dst: dst, bounds: image.Rect(0, 0, 1<<15-1, 1<<15-1)}
	if b, ok := dst.(bounded); ok {
		d.bounds = b.Bounds()
	}
	return d
}

func (d *displayer) Size() (x, y int16) {
	return int16(d.bounds.Dx()), int16(d.bounds.Dy())
}

func (d *displayer) SetPixel(x, y int16, c color.RGBA) {
	if !image.Pt(int(x), int(y)).In(d.bounds) {
		return
	}
	d.dst.SetPixel(int(x), int(y), softras.Color{R: c.R, G: c.G, B: c.B})
}

func (d *displayer) Display() error { return nil }

// drawFallback draws ch from f with its baseline at y.
func drawFallback(dst PixelSetter, f tinyfont.Fonter, ch rune, x, baseline int, c softras.Color) {
	tinyfont.DrawChar(newDisplayer(dst), f, int16(x), int16(baseline), ch, c.RGBA())
}
