package bdf

import (
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/softras/internal/cache"
)

// MaxCodepoint is the largest code point a glyph can be requested for.
const MaxCodepoint = 255

// Bitmap is the set of lit pixels of one glyph, relative to the glyph
// origin: x grows right from the glyph's left edge and y grows down from
// its first bitmap row.
//
// Bitmaps returned by a Font may be shared with its cache and must not
// be modified.
type Bitmap []image.Point

// Bounds returns the smallest rectangle anchored at the origin that
// contains every lit pixel.
func (b Bitmap) Bounds() image.Rectangle {
	var r image.Rectangle
	for _, p := range b {
		if p.X+1 > r.Max.X {
			r.Max.X = p.X + 1
		}
		if p.Y+1 > r.Max.Y {
			r.Max.Y = p.Y + 1
		}
	}
	return r
}

// Font is a loaded BDF font.
//
// The source lines are immutable after loading and the glyph cache is
// guarded internally, so a Font is safe for concurrent use.
type Font struct {
	lines   []string
	metrics Metrics
	glyphs  *cache.Cache[rune, Bitmap] // nil when caching is disabled

	// onScan, when set, is called every time a glyph is decoded from the
	// source lines.
	onScan func(cp rune)
}

// Load reads a BDF font from a file.
func Load(path string, opts ...Option) (*Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	f, err := newFontFromText(data, opts)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return f, nil
}

// Parse reads a BDF font from r.
func Parse(r io.Reader, opts ...Option) (*Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	f, err := newFontFromText(data, opts)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	return f, nil
}

// NewFont creates a font from its source lines. The slice is copied.
func NewFont(lines []string, opts ...Option) (*Font, error) {
	if len(lines) == 0 {
		return nil, &ConfigError{Err: ErrEmptyFont}
	}
	src := make([]string, len(lines))
	for i, l := range lines {
		src[i] = strings.TrimRight(l, "\r")
	}
	return newFont(src, opts), nil
}

func newFontFromText(data []byte, opts []Option) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}
	if !utf8.Valid(data) {
		return nil, ErrNotText
	}

	lines := strings.Split(string(data), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return newFont(lines, opts), nil
}

func newFont(lines []string, opts []Option) *Font {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Font{
		lines:   lines,
		metrics: parseMetrics(lines),
	}
	if cfg.cache {
		f.glyphs = cache.New[rune, Bitmap](cfg.cacheLimit)
	}
	return f
}

// Metrics returns the font-level metadata read from the header.
func (f *Font) Metrics() Metrics {
	return f.metrics
}

// ShapeChar returns the lit pixels of the glyph for code point cp.
//
// The error is ErrCodepointRange for code points outside 0-255, or a
// *ParseError wrapping ErrGlyphNotFound or ErrMalformed. None of them are
// fatal: the caller can draw a placeholder and carry on.
func (f *Font) ShapeChar(cp rune) (Bitmap, error) {
	if cp < 0 || cp > MaxCodepoint {
		return nil, fmt.Errorf("%w: %d", ErrCodepointRange, cp)
	}
	if f.glyphs == nil {
		return f.shape(cp)
	}
	return f.glyphs.GetOrCreate(cp, func() (Bitmap, error) {
		return f.shape(cp)
	})
}

// HasGlyph reports whether the font can shape cp.
func (f *Font) HasGlyph(cp rune) bool {
	_, err := f.ShapeChar(cp)
	return err == nil
}

// Glyphs returns the code points of every ENCODING record in source
// order, including ones outside the 0-255 range.
func (f *Font) Glyphs() []rune {
	var cps []rune
	for _, line := range f.lines {
		if cp, ok := parseEncoding(line); ok {
			cps = append(cps, cp)
		}
	}
	return cps
}

// CacheLen returns the number of decoded glyphs held in the cache.
func (f *Font) CacheLen() int {
	if f.glyphs == nil {
		return 0
	}
	return f.glyphs.Len()
}

// CacheStats reports glyph cache usage.
type CacheStats struct {
	// Glyphs is the number of decoded glyphs held.
	Glyphs int
	// Limit is the cache limit, 0 when unbounded.
	Limit int
	// Hits counts lookups served without scanning the source.
	Hits uint64
	// Misses counts lookups that scanned the source, failed ones included.
	Misses uint64
}

// CacheStats returns glyph cache usage. It is zero when the cache is
// disabled.
func (f *Font) CacheStats() CacheStats {
	if f.glyphs == nil {
		return CacheStats{}
	}
	st := f.glyphs.Stats()
	return CacheStats{Glyphs: st.Len, Limit: st.Capacity, Hits: st.Hits, Misses: st.Misses}
}

// parseEncoding reports the code point of an "ENCODING <n>" line.
func parseEncoding(line string) (rune, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "ENCODING" {
		return 0, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, false
	}
	return rune(n), true
}
