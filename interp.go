package softras

import "math"

// Interpolate returns the values of the line through (i0, d0) and (i1, d1)
// sampled at every integer step from i0 towards i1, excluding i1.
//
// The series has |i1-i0| samples, the first being d0 and each following
// sample differing by (d1-d0)/|i1-i0|. When i0 == i1 the result is the
// single sample d0.
func Interpolate(i0 int, d0 float64, i1 int, d1 float64) []float64 {
	if i0 == i1 {
		return []float64{d0}
	}

	n := i1 - i0
	if n < 0 {
		n = -n
	}
	step := (d1 - d0) / float64(n)

	values := make([]float64, n)
	for i := range values {
		values[i] = d0 + float64(i)*step
	}
	return values
}

// InterpolateInt is Interpolate with every sample rounded to the nearest
// integer. It is used for pixel coordinates along edges.
func InterpolateInt(i0, d0, i1, d1 int) []int {
	f := Interpolate(i0, float64(d0), i1, float64(d1))
	values := make([]int, len(f))
	for i, v := range f {
		values[i] = int(math.Round(v))
	}
	return values
}
