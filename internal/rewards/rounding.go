package rewards

import "math"

// Round2 rounds to 2 decimal places, half away from zero. All credit
// balance movements go through this.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds to 4 decimal places, half away from zero. Reward draws
// are stated at this granularity.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
