package softras

import (
	"image/color"
	"math"
)

// Color is an opaque 8-bit RGB triple.
// It is written into the pixmap with alpha forced to 0xFF.
type Color struct {
	R, G, B uint8
}

// Common colors
var (
	Black   = Color{0x00, 0x00, 0x00}
	White   = Color{0xff, 0xff, 0xff}
	Red     = Color{0xff, 0x00, 0x00}
	Green   = Color{0x00, 0xff, 0x00}
	Blue    = Color{0x00, 0x00, 0xff}
	Yellow  = Color{0xff, 0xff, 0x00}
	Cyan    = Color{0x00, 0xff, 0xff}
	Magenta = Color{0xff, 0x00, 0xff}
)

// RGB creates a color from its three channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with an optional leading '#'.
// Any alpha digits ("RGBA", "RRGGBBAA") are accepted and ignored.
// Unrecognized input yields Black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3, 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6, 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return Black
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Scale multiplies every channel by k. k is clamped to [0, 1] first,
// so the result is never brighter than c.
func (c Color) Scale(k float64) Color {
	if math.IsNaN(k) || k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}
	return Color{
		R: uint8(math.Round(float64(c.R) * k)),
		G: uint8(math.Round(float64(c.G) * k)),
		B: uint8(math.Round(float64(c.B) * k)),
	}
}

// Packed returns the color as a 0x00RRGGBB word.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA converts the color to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// FromColor converts a standard color.Color to Color.
// Alpha is discarded after un-premultiplying; a fully transparent
// color becomes Black.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return Black
	}
	return Color{R: n.R, G: n.G, B: n.B}
}
