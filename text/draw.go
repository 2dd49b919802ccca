package text

import (
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/gogpu/softras"
	"github.com/gogpu/softras/bdf"
)

// PixelSetter is the single-pixel write primitive text is drawn through.
// *softras.Rasterizer and *softras.Pixmap implement it.
type PixelSetter interface {
	SetPixel(x, y int, c softras.Color)
}

// Renderer draws strings with one font.
//
// A Renderer holds no per-draw state and may be shared; the destination
// it draws into is not safe for concurrent use.
type Renderer struct {
	font *bdf.Font
	cfg  config
}

// NewRenderer creates a renderer for f.
func NewRenderer(f *bdf.Font, opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{font: f, cfg: cfg}
}

// Draw renders s with f at (x, y) using a one-off Renderer.
func Draw(dst PixelSetter, s string, f *bdf.Font, x, y int, c softras.Color, opts ...Option) error {
	return NewRenderer(f, opts...).Draw(dst, s, x, y, c)
}

// Draw renders s with its first glyph origin at (x, y).
//
// Glyph pixels go through dst.SetPixel unclipped, so the whole string
// must fit inside the destination. The returned error joins one error per
// rune that could not be drawn with the font; the rest of the string is
// still drawn.
func (r *Renderer) Draw(dst PixelSetter, s string, x, y int, c softras.Color) error {
	var errs []error
	i := 0
	for _, ch := range s {
		gx := x + i*r.cfg.advance
		i++

		bm, err := r.shape(ch)
		if err == nil {
			blit(dst, bm, gx, y, c)
			continue
		}

		softras.Logger().Warn("text: missing glyph",
			slog.String("rune", string(ch)), slog.Any("err", err))
		errs = append(errs, err)
		r.placeholder(dst, ch, gx, y, c)
	}
	return errors.Join(errs...)
}

// Measure returns the size of the box s occupies: the advance times the
// rune count, by the font's line height.
func (r *Renderer) Measure(s string) (width, height int) {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0, 0
	}
	return n * r.cfg.advance, r.font.Metrics().LineHeight()
}

func (r *Renderer) shape(ch rune) (bdf.Bitmap, error) {
	cp, ok := bdf.Codepoint(ch)
	if !ok {
		return nil, &bdf.ParseError{
			Codepoint: ch,
			Reason:    "no single-byte code point",
			Err:       bdf.ErrGlyphNotFound,
		}
	}
	return r.font.ShapeChar(cp)
}

// placeholder fills the cell of a rune the font cannot draw.
func (r *Renderer) placeholder(dst PixelSetter, ch rune, x, y int, c softras.Color) {
	if r.cfg.defaultChar {
		if dc := r.font.Metrics().DefaultChar; dc >= 0 {
			if bm, err := r.font.ShapeChar(dc); err == nil {
				blit(dst, bm, x, y, c)
				return
			}
		}
	}
	if r.cfg.fallback != nil {
		drawFallback(dst, r.cfg.fallback, ch, x, y+r.font.Metrics().Ascent, c)
	}
}

func blit(dst PixelSetter, bm bdf.Bitmap, x, y int, c softras.Color) {
	for _, p := range bm {
		dst.SetPixel(x+p.X, y+p.Y, c)
	}
}
