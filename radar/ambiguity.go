package radar

// RangeVel is a point in the range-velocity plane.
type RangeVel struct {
	Range    float64 `json:"range"`
	Velocity float64 `json:"velocity"`
}

// Line is the locus of range/velocity pairs consistent with one measured
// beat frequency under one chirp slope, swept across the velocity search
// interval.
type Line struct {
	From RangeVel `json:"from"`
	To   RangeVel `json:"to"`
}

// Project inverts the beat equation for a tone of bf Hz measured under a
// chirp of chirpDur seconds, with f0 the transmitted frequency at the
// capture start. One measurement cannot split range from velocity; the
// segment carries every hypothesis between vmin and vmax.
func Project(f0, bf, chirpDur, bandwidthHz, vmin, vmax float64) Line {
	rangeAt := func(v float64) float64 {
		return -(Doppler(f0, v) - bf) * chirpDur / bandwidthHz / 2 * speedOfLight
	}
	return Line{
		From: RangeVel{Range: rangeAt(vmin), Velocity: -vmin},
		To:   RangeVel{Range: rangeAt(vmax), Velocity: -vmax},
	}
}
