package text

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/gogpu/softras"
	"github.com/gogpu/softras/bdf"
)

const testFont = `STARTFONT 2.1
FONTBOUNDINGBOX 6 8 0 -1
STARTPROPERTIES 3
FONT_ASCENT 7
FONT_DESCENT 1
DEFAULT_CHAR 63
ENDPROPERTIES
STARTCHAR A
ENCODING 65
BITMAP
80
80
C0
80
80
ENDCHAR
STARTCHAR question
ENCODING 63
BITMAP
F8
ENDCHAR
STARTCHAR space
ENCODING 32
BITMAP
00
ENDCHAR
ENDFONT`

// glyphA is the lit pattern of 'A' in testFont.
var glyphA = []image.Point{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {0, 3}, {0, 4}}

func loadTestFont(t *testing.T) *bdf.Font {
	t.Helper()
	f, err := bdf.Parse(strings.NewReader(testFont))
	if err != nil {
		t.Fatalf("bdf.Parse: %v", err)
	}
	return f
}

func newTarget() *softras.Rasterizer {
	r := softras.NewRasterizer(softras.NewPixmap(32, 16))
	r.Clear(softras.Black)
	return r
}

func litPixels(pm *softras.Pixmap) map[image.Point]softras.Color {
	out := make(map[image.Point]softras.Color)
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if c := pm.GetPixel(x, y); c != softras.Black {
				out[image.Pt(x, y)] = c
			}
		}
	}
	return out
}

func wantGlyphs(origins ...image.Point) map[image.Point]bool {
	want := make(map[image.Point]bool)
	for _, o := range origins {
		for _, p := range glyphA {
			want[p.Add(o)] = true
		}
	}
	return want
}

func checkLit(t *testing.T, pm *softras.Pixmap, want map[image.Point]bool) {
	t.Helper()
	got := litPixels(pm)
	for p := range want {
		if _, ok := got[p]; !ok {
			t.Errorf("pixel %v not drawn", p)
		}
	}
	for p := range got {
		if !want[p] {
			t.Errorf("unexpected pixel %v", p)
		}
	}
}

func TestDraw_FixedAdvance(t *testing.T) {
	r := newTarget()
	if err := Draw(r, "A A", loadTestFont(t), 1, 2, softras.White); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	checkLit(t, r.Pixmap(), wantGlyphs(image.Pt(1, 2), image.Pt(13, 2)))
}

func TestDraw_Color(t *testing.T) {
	r := newTarget()
	if err := Draw(r, "A", loadTestFont(t), 0, 0, softras.Red); err != nil {
		t.Fatal(err)
	}
	for p, c := range litPixels(r.Pixmap()) {
		if c != softras.Red {
			t.Errorf("pixel %v = %+v, want Red", p, c)
		}
	}
}

func TestDraw_PixmapTarget(t *testing.T) {
	pm := softras.NewPixmap(16, 8)
	pm.Clear(softras.Black)
	if err := Draw(pm, "AA", loadTestFont(t), 0, 0, softras.White); err != nil {
		t.Fatal(err)
	}
	checkLit(t, pm, wantGlyphs(image.Pt(0, 0), image.Pt(6, 0)))
}

func TestDraw_WithAdvance(t *testing.T) {
	r := newTarget()
	if err := Draw(r, "AA", loadTestFont(t), 0, 0, softras.White, WithAdvance(10)); err != nil {
		t.Fatal(err)
	}
	checkLit(t, r.Pixmap(), wantGlyphs(image.Pt(0, 0), image.Pt(10, 0)))
}

func TestDraw_MissingUsesDefaultChar(t *testing.T) {
	r := newTarget()
	err := Draw(r, "ZA", loadTestFont(t), 0, 0, softras.White)
	if !errors.Is(err, bdf.ErrGlyphNotFound) {
		t.Fatalf("Draw error = %v, want ErrGlyphNotFound", err)
	}

	// '?' is a single row of five pixels in the first cell.
	want := wantGlyphs(image.Pt(6, 0))
	for x := 0; x < 5; x++ {
		want[image.Pt(x, 0)] = true
	}
	checkLit(t, r.Pixmap(), want)
}

func TestDraw_MissingLeavesBlankCell(t *testing.T) {
	r := newTarget()
	err := Draw(r, "€A", loadTestFont(t), 0, 0, softras.White, WithoutDefaultChar())
	if !errors.Is(err, bdf.ErrGlyphNotFound) {
		t.Fatalf("Draw error = %v, want ErrGlyphNotFound", err)
	}
	var pe *bdf.ParseError
	if !errors.As(err, &pe) || pe.Codepoint != '€' {
		t.Errorf("error = %v, want *bdf.ParseError for '€'", err)
	}
	checkLit(t, r.Pixmap(), wantGlyphs(image.Pt(6, 0)))
}

// dotFont is a tinyfont.Fonter whose every glyph is one pixel on the
// baseline, with a second pixel far outside any test target.
type dotFont struct{}

type dotGlyph struct{ r rune }

func (dotFont) GetGlyph(r rune) tinyfont.Glypher { return dotGlyph{r} }
func (dotFont) GetYAdvance() uint8               { return 8 }

func (g dotGlyph) Draw(d drivers.Displayer, x, y int16, c color.RGBA) {
	d.SetPixel(x, y, c)
	d.SetPixel(x+1000, y, c)
}

func (g dotGlyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{Rune: g.r, Width: 1, Height: 1, XAdvance: 6}
}

func TestDraw_Fallback(t *testing.T) {
	r := newTarget()
	err := Draw(r, "AZ", loadTestFont(t), 2, 1, softras.White,
		WithoutDefaultChar(), WithFallback(dotFont{}))
	if !errors.Is(err, bdf.ErrGlyphNotFound) {
		t.Fatalf("Draw error = %v, want ErrGlyphNotFound", err)
	}

	// The fallback baseline is the cell top plus the font ascent.
	want := wantGlyphs(image.Pt(2, 1))
	want[image.Pt(8, 1+7)] = true
	checkLit(t, r.Pixmap(), want)
}

func TestDraw_DefaultFallback(t *testing.T) {
	r := newTarget()
	_ = Draw(r, "Z", loadTestFont(t), 4, 2, softras.White,
		WithoutDefaultChar(), WithDefaultFallback())

	if len(litPixels(r.Pixmap())) == 0 {
		t.Error("default fallback drew nothing")
	}
}

func TestDraw_OutOfBoundsPanics(t *testing.T) {
	r := newTarget()
	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, softras.ErrOutOfBounds) {
			t.Errorf("recover() = %v, want *softras.BoundsError", rec)
		}
	}()
	_ = Draw(r, "AAAAAAA", loadTestFont(t), 0, 0, softras.White)
}

func TestRenderer_Measure(t *testing.T) {
	tr := NewRenderer(loadTestFont(t))
	if w, h := tr.Measure("héllo"); w != 30 || h != 8 {
		t.Errorf("Measure = (%d, %d), want (30, 8)", w, h)
	}
	if w, h := tr.Measure(""); w != 0 || h != 0 {
		t.Errorf("Measure(\"\") = (%d, %d), want (0, 0)", w, h)
	}
}
