package bdf

// Option configures a Font during loading.
type Option func(*config)

// config holds configuration for Font.
type config struct {
	cache      bool
	cacheLimit int
}

// defaultConfig returns the default font configuration.
func defaultConfig() config {
	return config{
		cache:      true,
		cacheLimit: 0, // Unbounded; a byte-addressed font has at most 256 glyphs
	}
}

// WithoutCache disables the decoded glyph cache. Every ShapeChar call
// rescans the font source.
func WithoutCache() Option {
	return func(c *config) {
		c.cache = false
	}
}

// WithCacheLimit bounds the number of cached glyphs.
// A value of 0 disables the limit.
func WithCacheLimit(n int) Option {
	return func(c *config) {
		c.cacheLimit = n
	}
}
