package radar

// BeatSeries mixes the transmitted sweep against the target's return and
// reports the frequency difference at every grid instant. times and freqs
// come from Timeline. The return is the sweep delayed by the round trip
// plus the Doppler shift of the instantaneous carrier.
func (c Config) BeatSeries(times, freqs []float64, tgt Target) []float64 {
	delay := 2 * tgt.Range / speedOfLight
	beats := make([]float64, len(times))
	for i, t := range times {
		beats[i] = Doppler(freqs[i], tgt.Velocity) + c.FrequencyAt(t-delay) - freqs[i]
	}
	return beats
}
