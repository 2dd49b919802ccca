package text

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/gogpu/softras/bdf"
)

// Option configures a Renderer.
type Option func(*config)

// config holds configuration for Renderer.
type config struct {
	advance     int
	fallback    tinyfont.Fonter
	defaultChar bool
}

// defaultConfig returns the default renderer configuration.
func defaultConfig() config {
	return config{
		advance:     bdf.DefaultAdvance,
		defaultChar: true,
	}
}

// WithAdvance sets the horizontal distance between glyph origins.
// Values <= 0 are ignored.
func WithAdvance(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.advance = n
		}
	}
}

// WithFallback draws runes the font is missing with f instead of
// leaving their cell blank. Fallback glyphs are clipped to the
// destination.
func WithFallback(f tinyfont.Fonter) Option {
	return func(c *config) {
		c.fallback = f
	}
}

// WithDefaultFallback is WithFallback with tinyfont's Proggy TinySZ 8pt.
func WithDefaultFallback() Option {
	return WithFallback(&proggy.TinySZ8pt7b)
}

// WithoutDefaultChar stops the renderer from substituting the font's
// DEFAULT_CHAR glyph for missing runes.
func WithoutDefaultChar() Option {
	return func(c *config) {
		c.defaultChar = false
	}
}
