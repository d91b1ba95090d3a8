package internal

import "math"

// Percent returns current as a percentage of total. Degenerate totals
// yield 0 instead of NaN or Inf.
func Percent(total, current uint64) float64 {
	p := float64(current) / (float64(total) / 100)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}

// FillCount returns how many of width cells are complete, rounded up and
// clamped to [0, width].
func FillCount(total, current uint64, width int) int {
	if width <= 0 {
		return 0
	}
	n := math.Ceil(float64(current) / float64(total) * float64(width))
	switch {
	case math.IsNaN(n), n < 0:
		return 0
	case n > float64(width):
		return width
	}
	return int(n)
}
