package radar

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FrequencyAt returns the transmitted frequency at time t. Each chirp
// duration is one sawtooth ramp from the carrier up through the full
// bandwidth. Panics if the chirp sequence has no positive span; Validate
// reports that as an error first.
func (c Config) FrequencyAt(t float64) float64 {
	total := c.TotalDuration()
	if total <= 0 {
		panic("radar: chirp sequence has no positive duration")
	}
	// math.Mod keeps the sign of t; a negative time must still land on
	// the cycle in [0, total).
	tw := math.Mod(t, total)
	if tw < 0 {
		tw += total
	}
	offset := 0.0
	for _, d := range c.ChirpDurations {
		if tw < offset+d {
			return c.CarrierHz + (tw-offset)/d*c.BandwidthHz
		}
		offset += d
	}
	// Accumulated rounding can push tw past the last segment.
	return c.CarrierHz
}

// Timeline renders the transmitted sweep over one full sawtooth cycle on an
// n-point grid, endpoints included.
func (c Config) Timeline(n int) (times, freqs []float64) {
	times = floats.Span(make([]float64, n), 0, c.TotalDuration())
	freqs = make([]float64, n)
	for i, t := range times {
		freqs[i] = c.FrequencyAt(t)
	}
	return times, freqs
}
