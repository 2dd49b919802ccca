// Package cache provides the memo table behind decoded glyph bitmaps.
//
// Cache[K, V] is a thread-safe map with an optional soft limit. Lookups and
// the fill-on-miss path run under one mutex, so two goroutines asking for
// the same missing key never both build it:
//
//	c := cache.New[rune, []image.Point](0)
//	bm, err := c.GetOrCreate('A', func() ([]image.Point, error) {
//	    return decode('A')
//	})
//
// Failed creations are not stored; the next lookup tries again.
//
// Cache must not be copied after creation (it holds a mutex).
package cache
