package calc

import "math"

// Round1 rounds to one decimal place, the display precision used across the
// calculators and the distribution tables.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
