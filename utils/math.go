// Package utils contains small math helpers shared across the library.
package utils

// Linspace returns n evenly spaced values from start to stop, inclusive of
// both endpoints. n must be at least 2.
func Linspace(start, stop float64, n int) []float64 {
	step := (stop - start) / float64(n-1)
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = start + float64(i)*step
	}
	// guard against accumulated rounding at the far endpoint
	pts[n-1] = stop
	return pts
}
