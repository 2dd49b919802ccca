package softras

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Pixmap is a fixed-size RGBA pixel buffer, 4 bytes per pixel, row-major
// with the origin at the top-left corner.
//
// Pixel accessors do not clip. A coordinate outside the pixmap is a
// programming error and panics with a *BoundsError.
//
// Pixmap is not safe for concurrent use.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
// The pixmap starts out transparent black; call Clear before presenting it.
// Panics if either dimension is less than 1.
func NewPixmap(width, height int) *Pixmap {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("softras: invalid pixmap size %dx%d", width, height))
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
// The slice aliases the pixmap and is meant for bulk copies into a
// display surface once per frame.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// InBounds reports whether (x, y) addresses a pixel of p.
func (p *Pixmap) InBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

func (p *Pixmap) offset(x, y int) int {
	if !p.InBounds(x, y) {
		panic(&BoundsError{X: x, Y: y, Width: p.width, Height: p.height})
	}
	return (y*p.width + x) * 4
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	i := p.offset(x, y)
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = 0xff
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) Color {
	i := p.offset(x, y)
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = 0xff
	}
}

// Packed returns the pixmap as one 0x00RRGGBB word per pixel, for display
// surfaces that take the 3-byte format packed into 32-bit words.
func (p *Pixmap) Packed() []uint32 {
	out := make([]uint32, p.width*p.height)
	for i := range out {
		j := i * 4
		out[i] = uint32(p.data[j])<<16 | uint32(p.data[j+1])<<8 | uint32(p.data[j+2])
	}
	return out
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// EncodePNG writes the pixmap to w as a PNG image.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return p.EncodePNG(f)
}

// At implements the image.Image interface.
// Unlike GetPixel it returns transparent black outside the bounds, as the
// image.Image contract requires.
func (p *Pixmap) At(x, y int) color.Color {
	if !p.InBounds(x, y) {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Set implements the draw.Image interface. It writes through SetPixel,
// so out-of-bounds coordinates panic.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
