// Package softras is a small software rasterizer drawing into an in-memory
// RGBA pixel buffer without any GPU involvement.
//
// # Overview
//
// The package provides:
//   - Pixmap: a fixed-size RGBA buffer with strict, bounds-checked writes
//   - Interpolate: the linear interpolation every primitive is built on
//   - Rasterizer: lines, wireframe, filled and gradient-shaded triangles,
//     and sampled function plots
//
// Bitmap text lives in the sub-packages: [github.com/gogpu/softras/bdf]
// parses BDF fonts into per-glyph pixel sets and
// [github.com/gogpu/softras/text] blits strings through the rasterizer.
//
// # Quick Start
//
//	pm := softras.NewPixmap(512, 512)
//	r := softras.NewRasterizer(pm)
//
//	r.Clear(softras.Black)
//	r.DrawFilledTriangle(softras.Pt(10, 10), softras.Pt(200, 40), softras.Pt(60, 180), softras.Red)
//	r.DrawLine(softras.Pt(0, 0), softras.Pt(511, 300), softras.White)
//
//	pm.SavePNG("output.png")
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Bounds
//
// Writes are not clipped. Drawing outside the pixmap is a bug in the
// caller and panics with a *BoundsError, so it shows up in tests instead of
// as a silently corrupted frame. The only primitive that clamps is
// DrawFunc, see ClampPolicy.
//
// # Thread Safety
//
// Pixmap and Rasterizer are not safe for concurrent use. A frame is drawn
// by a single goroutine, which then hands Pixmap.Data to the display.
package softras
