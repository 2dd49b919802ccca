// Package demo draws the animated scene shown by the softras commands.
package demo

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/softras"
	"github.com/gogpu/softras/bdf"
	"github.com/gogpu/softras/text"
)

//go:embed font6x8.bdf
var font6x8 []byte

// MinSize is the smallest pixmap side the scene fits in.
const MinSize = 64

// Background is the clear color of every frame.
var Background = softras.Hex("#101820")

// Font returns the built-in 6x8 font: upper case letters, digits and a
// little punctuation, with '?' as DEFAULT_CHAR.
func Font() *bdf.Font {
	f, err := bdf.Parse(bytes.NewReader(font6x8))
	if err != nil {
		panic(err)
	}
	return f
}

// Curve is the plotted function: |x|^(2/3) + sqrt(|8 - x^2|) * sin(16πx).
func Curve(x float64) float64 {
	return math.Pow(math.Abs(x), 2.0/3.0) +
		math.Sqrt(math.Abs(8-x*x))*math.Sin(16*math.Pi*x)
}

// Draw renders frame number frame. f may be nil, in which case the scene
// has no captions. The returned error only reports runes missing from f;
// the frame is complete either way.
func Draw(r *softras.Rasterizer, f *bdf.Font, frame int) error {
	b := r.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < MinSize || h < MinSize {
		return fmt.Errorf("demo: pixmap %dx%d smaller than %dx%d", w, h, MinSize, MinSize)
	}

	r.Clear(Background)

	scale := float64(w) * 24 / 512
	r.DrawFunc(Curve, softras.Hex("#f0f0f0"), scale, scale, 0, 0)

	// Line fan from the bottom-left corner, rotating with the frame.
	origin := softras.Pt(0, h-1)
	for i := 0; i < 8; i++ {
		a := float64(i)*math.Pi/16 + float64(frame%60)*math.Pi/480
		end := softras.Pt(
			clamp(int(float64(w/3)*math.Cos(a)), 0, w-1),
			clamp(h-1-int(float64(h/3)*math.Sin(a)), 0, h-1),
		)
		r.DrawLine(origin, end, softras.Hex("#3a6ea5"))
	}

	r.DrawFilledTriangle(
		softras.Pt(w*5/8, h/8), softras.Pt(w*7/8, h*3/8), softras.Pt(w/2, h*3/8),
		softras.Hex("#c0392b"))

	pulse := 0.5 + 0.5*math.Sin(float64(frame)/30)
	g0, g1, g2 := softras.Pt(w*5/8, h*5/8), softras.Pt(w*15/16, h*15/16), softras.Pt(w/2, h*15/16)
	r.DrawGradientTriangle(g0, g1, g2, softras.Hex("#27ae60"), pulse, 1-pulse, 0.25)
	r.DrawWireTriangle(g0, g1, g2, softras.White)

	if f == nil {
		return nil
	}

	tr := text.NewRenderer(f)
	caption := fitText(fmt.Sprintf("SOFTRAS FRAME %d", frame), w-8)
	err := tr.Draw(r, caption, 4, 4, softras.Yellow)

	drawFooter(r.Pixmap(), f, fitText("BDF VIA X/IMAGE", w-8), h-4)
	return err
}

// drawFooter draws s through the golang.org/x/image font.Drawer with its
// baseline at y. The drawer clips to the pixmap.
func drawFooter(pm *softras.Pixmap, f *bdf.Font, s string, y int) {
	d := &font.Drawer{
		Dst:  pm,
		Src:  image.NewUniform(softras.Cyan.RGBA()),
		Face: bdf.NewFace(f, 0),
		Dot:  fixed.P(4, y),
	}
	d.DrawString(s)
}

// LogCacheStats reports the glyph cache usage of f at debug level.
func LogCacheStats(f *bdf.Font) {
	st := f.CacheStats()
	softras.Logger().Debug("demo: glyph cache",
		slog.Int("glyphs", st.Glyphs),
		slog.Int("limit", st.Limit),
		slog.Uint64("hits", st.Hits),
		slog.Uint64("misses", st.Misses))
}

// fitText truncates s to the glyphs that fit in width pixels.
func fitText(s string, width int) string {
	n := width / bdf.DefaultAdvance
	if n <= 0 {
		return ""
	}
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
