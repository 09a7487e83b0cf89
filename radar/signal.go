package radar

import "math"

// Synthesize renders the superposition of unit-amplitude tones on the
// grid: one sine per frequency, no window, no normalization.
func Synthesize(times, freqs []float64) []float64 {
	sig := make([]float64, len(times))
	for i, t := range times {
		s := 0.0
		for _, f := range freqs {
			s += math.Sin(2 * math.Pi * f * t)
		}
		sig[i] = s
	}
	return sig
}

// NearestIndex returns the index whose time lies closest to t. The first
// match wins ties.
func NearestIndex(times []float64, t float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, v := range times {
		if d := math.Abs(v - t); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
