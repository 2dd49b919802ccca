package bdf

import (
	"strconv"
	"strings"
)

// Default cell used when the header has no FONTBOUNDINGBOX, and the fixed
// horizontal advance between glyphs (glyph width plus spacing).
const (
	DefaultWidth  = 6
	DefaultHeight = 8

	DefaultAdvance = 6
)

// Metrics is the font-level metadata from the BDF header.
type Metrics struct {
	// Name is the FONT record, empty if absent.
	Name string

	// Width, Height, XOffset and YOffset are the FONTBOUNDINGBOX.
	Width, Height    int
	XOffset, YOffset int

	// Ascent and Descent are FONT_ASCENT and FONT_DESCENT. When absent
	// they are derived from the bounding box.
	Ascent, Descent int

	// DefaultChar is the DEFAULT_CHAR property, or -1.
	DefaultChar rune
}

// LineHeight returns the distance between consecutive baselines.
func (m Metrics) LineHeight() int {
	return m.Ascent + m.Descent
}

// parseMetrics reads the header records that precede the first glyph.
func parseMetrics(lines []string) Metrics {
	m := Metrics{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		DefaultChar: -1,
	}
	ascent, descent := -1, -1

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "STARTCHAR":
			return finishMetrics(m, ascent, descent)
		case "FONT":
			m.Name = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "FONT"))
		case "FONTBOUNDINGBOX":
			if v, ok := atois(fields[1:], 4); ok && v[0] > 0 && v[1] > 0 {
				m.Width, m.Height, m.XOffset, m.YOffset = v[0], v[1], v[2], v[3]
			}
		case "FONT_ASCENT":
			if v, ok := atois(fields[1:], 1); ok {
				ascent = v[0]
			}
		case "FONT_DESCENT":
			if v, ok := atois(fields[1:], 1); ok {
				descent = v[0]
			}
		case "DEFAULT_CHAR":
			if v, ok := atois(fields[1:], 1); ok {
				m.DefaultChar = rune(v[0])
			}
		}
	}
	return finishMetrics(m, ascent, descent)
}

func finishMetrics(m Metrics, ascent, descent int) Metrics {
	if descent < 0 {
		descent = max(-m.YOffset, 0)
	}
	if ascent < 0 {
		ascent = max(m.Height-descent, 0)
	}
	m.Ascent, m.Descent = ascent, descent
	return m
}

// atois parses exactly n integer fields.
func atois(fields []string, n int) ([]int, bool) {
	if len(fields) < n {
		return nil, false
	}
	v := make([]int, n)
	for i := 0; i < n; i++ {
		x, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, false
		}
		v[i] = x
	}
	return v, true
}
