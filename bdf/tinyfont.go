package bdf

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// fonter adapts a Font to tinygo.org/x/tinyfont.Fonter so tinyfont's
// WriteLine and DrawChar can draw it on any drivers.Displayer.
type fonter struct {
	f       *Font
	advance uint8
}

// NewFonter returns a tinyfont.Fonter for f with a fixed advance in
// pixels. An advance <= 0 means DefaultAdvance.
//
// tinyfont positions glyphs on the baseline; the first bitmap row is
// drawn Ascent pixels above it. Runes without a glyph draw nothing but
// still advance.
func NewFonter(f *Font, advance int) tinyfont.Fonter {
	if advance <= 0 || advance > 255 {
		advance = DefaultAdvance
	}
	return &fonter{f: f, advance: uint8(advance)}
}

func (t *fonter) GetGlyph(r rune) tinyfont.Glypher {
	g := &glyph{r: r, advance: t.advance, ascent: t.f.metrics.Ascent}
	if cp, ok := Codepoint(r); ok {
		if bm, err := t.f.ShapeChar(cp); err == nil {
			g.bm = bm
		}
	}
	return g
}

func (t *fonter) GetYAdvance() uint8 {
	h := t.f.metrics.LineHeight()
	if h <= 0 || h > 255 {
		return DefaultHeight
	}
	return uint8(h)
}

// glyph is one decoded glyph as a tinyfont.Glypher.
type glyph struct {
	r       rune
	bm      Bitmap
	advance uint8
	ascent  int
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	top := int(y) - g.ascent
	for _, p := range g.bm {
		display.SetPixel(x+int16(p.X), int16(top+p.Y), c)
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	b := g.bm.Bounds()
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    uint8(b.Dx()),
		Height:   uint8(b.Dy()),
		XAdvance: g.advance,
		XOffset:  0,
		YOffset:  int8(-g.ascent),
	}
}
