package radar

// FindPeaks scans magnitudes left to right and returns the indices of
// local maxima rising above a two-sample forward baseline: the mean of
// the current value and its successor, clamped at the end. While a value
// exceeds its baseline the running maximum is the open candidate; a value
// strictly below its baseline emits and closes the candidate, and one
// still open at the end is emitted.
func FindPeaks(mags []float64) []int {
	var peaks []int
	peak, open := 0, false
	for i, v := range mags {
		next := i + 1
		if next >= len(mags) {
			next = len(mags) - 1
		}
		baseline := (v + mags[next]) / 2
		switch {
		case v > baseline:
			if !open || v > mags[peak] {
				peak, open = i, true
			}
		case v < baseline && open:
			peaks = append(peaks, peak)
			open = false
		}
	}
	if open {
		peaks = append(peaks, peak)
	}
	return peaks
}
