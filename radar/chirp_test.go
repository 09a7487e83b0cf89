package radar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		CarrierHz:       77e9,
		BandwidthHz:     2e9,
		ChirpDurations:  []float64{40e-6, 40e-6},
		SampleRateHz:    40.1e6,
		CaptureDuration: 10e-6,
	}
}

func TestFrequencyAtStaysInSweep(t *testing.T) {
	cfg := testConfig()
	cfg.ChirpDurations = []float64{40e-6, 80e-6, 25e-6}
	total := cfg.TotalDuration()
	for i := 0; i <= 4000; i++ {
		tm := (float64(i)/4000*6 - 3) * total
		f := cfg.FrequencyAt(tm)
		require.GreaterOrEqual(t, f, cfg.CarrierHz, "t=%g", tm)
		require.Less(t, f, cfg.CarrierHz+cfg.BandwidthHz, "t=%g", tm)
	}
}

func TestFrequencyAtPeriodic(t *testing.T) {
	cfg := testConfig()
	cfg.ChirpDurations = []float64{30e-6, 50e-6}
	total := cfg.TotalDuration()
	for i := 0; i < 500; i++ {
		tm := (float64(i)/500 - 0.5) * 3 * total
		assert.InDelta(t, cfg.FrequencyAt(tm), cfg.FrequencyAt(tm+total), 1.0, "t=%g", tm)
	}
}

func TestFrequencyAtRamp(t *testing.T) {
	cfg := testConfig()
	cfg.ChirpDurations = []float64{40e-6}
	assert.InDelta(t, cfg.CarrierHz, cfg.FrequencyAt(0), 1e-3)
	assert.InDelta(t, cfg.CarrierHz+cfg.BandwidthHz/2, cfg.FrequencyAt(20e-6), 1.0)
	// The ramp resets right at its period.
	assert.InDelta(t, cfg.CarrierHz, cfg.FrequencyAt(40e-6), 1.0)
}

func TestFrequencyAtNegativeTime(t *testing.T) {
	cfg := testConfig()
	cfg.ChirpDurations = []float64{10e-6, 30e-6}
	// -5us wraps to 35us: 25us into the second segment.
	want := cfg.CarrierHz + 25.0/30.0*cfg.BandwidthHz
	assert.InDelta(t, want, cfg.FrequencyAt(-5e-6), 1.0)
	assert.InDelta(t, want, cfg.FrequencyAt(-5e-6-cfg.TotalDuration()), 1.0)
}

func TestFrequencyAtPanicsWithoutSpan(t *testing.T) {
	cfg := testConfig()
	cfg.ChirpDurations = nil
	require.Error(t, cfg.Validate())
	require.Panics(t, func() { cfg.FrequencyAt(0) })
}

func TestTimeline(t *testing.T) {
	cfg := testConfig()
	times, freqs := cfg.Timeline(257)
	require.Len(t, times, 257)
	require.Len(t, freqs, 257)
	assert.Zero(t, times[0])
	assert.InDelta(t, cfg.TotalDuration(), times[len(times)-1], 1e-12)
	for i, f := range freqs {
		assert.InDelta(t, cfg.FrequencyAt(times[i]), f, 1e-6)
	}
}
