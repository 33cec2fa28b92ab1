package game

import (
	"math"
	"math/rand/v2"
)

// round2 rounds a currency amount to cent precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
