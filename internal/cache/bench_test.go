package cache

import (
	"image"
	"testing"
)

func BenchmarkCacheHit(b *testing.B) {
	c := New[rune, []image.Point](0)
	for r := rune(0); r < 256; r++ {
		_, _ = c.GetOrCreate(r, func() ([]image.Point, error) {
			return []image.Point{{X: int(r) % 8, Y: 0}}, nil
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.GetOrCreate('A', nil)
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[rune, []image.Point](0)
	create := func() ([]image.Point, error) {
		return []image.Point{{X: 0, Y: 0}}, nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.GetOrCreate(rune(i%256), create)
	}
}
