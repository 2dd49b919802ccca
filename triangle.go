package softras

import "log/slog"

// triangleEdges holds the left and right boundary of a triangle for every
// scanline from y0, plus the boundary intensities when shading.
type triangleEdges struct {
	y0, y2 int

	left, right   []int
	hLeft, hRight []float64
}

// rows returns the number of scanlines to fill, covering [y0, y2-1).
func (e *triangleEdges) rows() int {
	return e.y2 - e.y0 - 1
}

// newTriangleEdges sorts the vertices by row and builds the two boundary
// series. The long edge v0→v2 spans the whole height; the two short edges
// v0→v1 and v1→v2 are joined to form the other one. The long edge is the
// left boundary when v1 lies to its right.
//
// It returns false for a zero-height triangle.
func newTriangleEdges(p [3]Point, h [3]float64, shaded bool) (triangleEdges, bool) {
	if p[1].Y < p[0].Y {
		p[0], p[1] = p[1], p[0]
		h[0], h[1] = h[1], h[0]
	}
	if p[2].Y < p[0].Y {
		p[0], p[2] = p[2], p[0]
		h[0], h[2] = h[2], h[0]
	}
	if p[2].Y < p[1].Y {
		p[1], p[2] = p[2], p[1]
		h[1], h[2] = h[2], h[1]
	}

	if p[0].Y == p[2].Y {
		Logger().Debug("softras: skipping zero-height triangle",
			slog.Int("y", p[0].Y),
			slog.Int("x0", p[0].X), slog.Int("x1", p[1].X), slog.Int("x2", p[2].X))
		return triangleEdges{}, false
	}

	x01 := InterpolateInt(p[0].Y, p[0].X, p[1].Y, p[1].X)
	x12 := InterpolateInt(p[1].Y, p[1].X, p[2].Y, p[2].X)
	x02 := InterpolateInt(p[0].Y, p[0].X, p[2].Y, p[2].X)
	flatTop, flatBottom := p[0].Y == p[1].Y, p[1].Y == p[2].Y
	x012 := joinEdges(x01, x12, flatTop, flatBottom)

	e := triangleEdges{y0: p[0].Y, y2: p[2].Y}
	x02Left := cross(p[0], p[1], p[2]) > 0
	if x02Left {
		e.left, e.right = x02, x012
	} else {
		e.left, e.right = x012, x02
	}

	if shaded {
		h01 := Interpolate(p[0].Y, h[0], p[1].Y, h[1])
		h12 := Interpolate(p[1].Y, h[1], p[2].Y, h[2])
		h02 := Interpolate(p[0].Y, h[0], p[2].Y, h[2])
		h012 := joinEdges(h01, h12, flatTop, flatBottom)
		if x02Left {
			e.hLeft, e.hRight = h02, h012
		} else {
			e.hLeft, e.hRight = h012, h02
		}
	}
	return e, true
}

// joinEdges concatenates the short edge series a (v0→v1) and b (v1→v2)
// into one sample per row from y0 to y2. A zero-height edge is a single
// sample on the other edge's first or last row and is left out.
func joinEdges[T any](a, b []T, flatTop, flatBottom bool) []T {
	switch {
	case flatTop:
		return b
	case flatBottom:
		return a
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// cross returns the z component of (p1-p0)×(p2-p0) with y pointing down:
// positive when p1 lies right of the edge p0→p2.
func cross(p0, p1, p2 Point) int {
	return (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
}
