package bdf

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func TestFace_DrawString(t *testing.T) {
	f := parseSample(t)
	dst := image.NewRGBA(image.Rect(0, 0, 20, 12))

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: NewFace(f, 0),
		Dot:  fixed.P(2, 10),
	}
	d.DrawString("AA")

	// Ascent is 7, so the first row of 'A' sits at y = 3.
	lit := map[image.Point]bool{}
	for _, p := range pts(0, 0, 0, 1, 0, 2, 1, 2, 0, 3, 0, 4) {
		lit[p.Add(image.Pt(2, 3))] = true
		lit[p.Add(image.Pt(2+DefaultAdvance, 3))] = true
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 20; x++ {
			a := dst.RGBAAt(x, y).A
			if lit[image.Pt(x, y)] && a == 0 {
				t.Errorf("pixel (%d, %d) not drawn", x, y)
			}
			if !lit[image.Pt(x, y)] && a != 0 {
				t.Errorf("unexpected pixel (%d, %d)", x, y)
			}
		}
	}

	if got := d.Dot.X; got != fixed.I(2+2*DefaultAdvance) {
		t.Errorf("Dot.X after two glyphs = %v, want %v", got, fixed.I(2+2*DefaultAdvance))
	}
}

func TestFace_Advance(t *testing.T) {
	face := NewFace(parseSample(t), 9)

	if adv, ok := face.GlyphAdvance('A'); !ok || adv != fixed.I(9) {
		t.Errorf("GlyphAdvance('A') = (%v, %v), want (9, true)", adv, ok)
	}
	for _, r := range []rune{'Z', '€'} {
		if _, ok := face.GlyphAdvance(r); ok {
			t.Errorf("GlyphAdvance(%q) ok = true, want false", r)
		}
		if _, _, _, _, ok := face.Glyph(fixed.P(0, 0), r); ok {
			t.Errorf("Glyph(%q) ok = true, want false", r)
		}
	}
	if k := face.Kern('A', 'A'); k != 0 {
		t.Errorf("Kern = %v, want 0", k)
	}
	if err := face.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestFace_GlyphBounds(t *testing.T) {
	face := NewFace(parseSample(t), 0)

	b, adv, ok := face.GlyphBounds('A')
	if !ok {
		t.Fatal("GlyphBounds('A') not ok")
	}
	want := fixed.Rectangle26_6{Min: fixed.P(0, -7), Max: fixed.P(2, -2)}
	if b != want {
		t.Errorf("GlyphBounds('A') = %v, want %v", b, want)
	}
	if adv != fixed.I(DefaultAdvance) {
		t.Errorf("advance = %v, want %v", adv, fixed.I(DefaultAdvance))
	}
}

func TestFace_Metrics(t *testing.T) {
	m := NewFace(parseSample(t), 0).Metrics()
	if m.Height != fixed.I(8) || m.Ascent != fixed.I(7) || m.Descent != fixed.I(1) {
		t.Errorf("Metrics() = %+v, want height 8, ascent 7, descent 1", m)
	}
}
