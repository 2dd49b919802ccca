package bdf

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// face adapts a Font to golang.org/x/image/font.Face.
type face struct {
	f       *Font
	advance int
}

// NewFace returns a font.Face drawing f with a fixed advance in pixels.
// An advance <= 0 means DefaultAdvance.
//
// Glyphs hang from the ascent: a glyph's first bitmap row sits Ascent
// pixels above the dot. Runes without a Latin-1 code point, or without a
// glyph in f, report ok == false.
func NewFace(f *Font, advance int) font.Face {
	if advance <= 0 {
		advance = DefaultAdvance
	}
	return &face{f: f, advance: advance}
}

func (a *face) Close() error { return nil }

func (a *face) bitmap(r rune) (Bitmap, bool) {
	cp, ok := Codepoint(r)
	if !ok {
		return nil, false
	}
	bm, err := a.f.ShapeChar(cp)
	if err != nil {
		return nil, false
	}
	return bm, true
}

func (a *face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	bm, ok := a.bitmap(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}

	b := bm.Bounds()
	alpha := image.NewAlpha(b)
	for _, p := range bm {
		alpha.Pix[alpha.PixOffset(p.X, p.Y)] = 0xff
	}

	origin := image.Point{
		X: dot.X.Floor(),
		Y: dot.Y.Floor() - a.f.metrics.Ascent,
	}
	return b.Add(origin), alpha, image.Point{}, fixed.I(a.advance), true
}

func (a *face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	bm, ok := a.bitmap(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	b := bm.Bounds()
	asc := a.f.metrics.Ascent
	bounds = fixed.Rectangle26_6{
		Min: fixed.P(b.Min.X, b.Min.Y-asc),
		Max: fixed.P(b.Max.X, b.Max.Y-asc),
	}
	return bounds, fixed.I(a.advance), true
}

func (a *face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	if _, ok := a.bitmap(r); !ok {
		return 0, false
	}
	return fixed.I(a.advance), true
}

// Kern always returns 0; the font is monospaced.
func (a *face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (a *face) Metrics() font.Metrics {
	m := a.f.metrics
	return font.Metrics{
		Height:     fixed.I(m.LineHeight()),
		Ascent:     fixed.I(m.Ascent),
		Descent:    fixed.I(m.Descent),
		XHeight:    fixed.I(m.Ascent),
		CapHeight:  fixed.I(m.Ascent),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}
