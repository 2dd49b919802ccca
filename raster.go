package softras

import (
	"image"
	"math"
)

// Rasterizer draws primitives into a Pixmap.
//
// Every draw call is independent: the only state carried between calls is
// the pixmap contents. Coordinates are not clipped, so every pixel a
// primitive touches must lie inside the pixmap or the call panics with a
// *BoundsError. DrawFunc is the exception, it clamps rows according to
// its ClampPolicy.
//
// Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	pm   *Pixmap
	opts options
}

// NewRasterizer creates a rasterizer drawing into pm.
func NewRasterizer(pm *Pixmap, opts ...Option) *Rasterizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Rasterizer{pm: pm, opts: o}
}

// Pixmap returns the target pixmap.
func (r *Rasterizer) Pixmap() *Pixmap {
	return r.pm
}

// Bounds returns the bounds of the target pixmap.
func (r *Rasterizer) Bounds() image.Rectangle {
	return r.pm.Bounds()
}

// Clear fills the whole target with c.
func (r *Rasterizer) Clear(c Color) {
	r.pm.Clear(c)
}

// SetPixel writes a single pixel. It is the primitive every other draw
// call, and the text renderer, writes through.
func (r *Rasterizer) SetPixel(x, y int, c Color) {
	r.pm.SetPixel(x, y, c)
}

// DrawFunc plots f with one sample per pixel column.
//
// Column i is mapped to x = (i - width/2 - xoff) / xscale and the sample
// is drawn at row height/2 + yoff - f(x)*yscale, so larger values move up
// the screen. Rows are kept in range by the rasterizer's ClampPolicy.
// Samples that are NaN are skipped.
func (r *Rasterizer) DrawFunc(f func(float64) float64, c Color, xscale, yscale, xoff, yoff float64) {
	w, h := r.pm.Width(), r.pm.Height()
	cx := xoff + float64(w/2)
	cy := yoff + float64(h/2)

	for i := 0; i < w; i++ {
		v := f((float64(i) - cx) / xscale)
		if math.IsNaN(v) {
			continue
		}
		r.pm.SetPixel(i, r.clampRow(cy-v*yscale, h), c)
	}
}

func (r *Rasterizer) clampRow(y float64, h int) int {
	last := float64(h - 1)
	switch r.opts.clamp {
	case ClampUpper:
		if y >= last {
			return h - 1
		}
		if y < -1 {
			y = -1
		}
		return int(y)
	default:
		if y >= last {
			return h - 1
		}
		if y <= 0 {
			return 0
		}
		return int(y)
	}
}

// DrawLine draws a line from p0 towards p1.
//
// The line walks its major axis one pixel at a time and interpolates the
// minor axis, so steep lines have no gaps. The end point on the major
// axis is excluded. A zero-length line paints the single pixel p0.
func (r *Rasterizer) DrawLine(p0, p1 Point, c Color) {
	if abs(p1.X-p0.X) > abs(p1.Y-p0.Y) {
		if p0.X > p1.X {
			p0, p1 = p1, p0
		}
		ys := InterpolateInt(p0.X, p0.Y, p1.X, p1.Y)
		for i, y := range ys {
			r.pm.SetPixel(p0.X+i, y, c)
		}
		return
	}

	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	xs := InterpolateInt(p0.Y, p0.X, p1.Y, p1.X)
	for i, x := range xs {
		r.pm.SetPixel(x, p0.Y+i, c)
	}
}

// DrawWireTriangle draws the edges p0→p1, p1→p2 and p2→p0.
func (r *Rasterizer) DrawWireTriangle(p0, p1, p2 Point, c Color) {
	r.DrawLine(p0, p1, c)
	r.DrawLine(p1, p2, c)
	r.DrawLine(p2, p0, c)
}

// DrawFilledTriangle fills the triangle p0, p1, p2 with a solid color.
// A triangle whose vertices all share one row is skipped.
func (r *Rasterizer) DrawFilledTriangle(p0, p1, p2 Point, c Color) {
	e, ok := newTriangleEdges(
		[3]Point{p0, p1, p2}, [3]float64{1, 1, 1}, false)
	if !ok {
		return
	}

	for k := 0; k < e.rows(); k++ {
		y := e.y0 + k
		for x := e.left[k]; x < e.right[k]; x++ {
			r.pm.SetPixel(x, y, c)
		}
	}
}

// DrawGradientTriangle fills the triangle p0, p1, p2 shading c by a
// per-vertex intensity h0, h1, h2 in [0, 1].
//
// Intensities are interpolated down the two boundary edges and then
// across each scanline; every channel of c is multiplied by the result.
// A triangle whose vertices all share one row is skipped.
func (r *Rasterizer) DrawGradientTriangle(p0, p1, p2 Point, c Color, h0, h1, h2 float64) {
	e, ok := newTriangleEdges(
		[3]Point{p0, p1, p2}, [3]float64{h0, h1, h2}, true)
	if !ok {
		return
	}

	for k := 0; k < e.rows(); k++ {
		y := e.y0 + k
		xl, xr := e.left[k], e.right[k]
		if xl >= xr {
			continue
		}
		hs := Interpolate(xl, e.hLeft[k], xr, e.hRight[k])
		for x := xl; x < xr; x++ {
			r.pm.SetPixel(x, y, c.Scale(hs[x-xl]))
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
