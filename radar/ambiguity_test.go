package radar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectEndpoints(t *testing.T) {
	line := Project(77e9, 1e7, 40e-6, 2e9, -50, 50)
	// Plot velocities are negated sweep velocities. An approaching
	// explanation leaves less of the beat to range, so the line slopes
	// down toward positive velocity.
	assert.Equal(t, 50.0, line.From.Velocity)
	assert.Equal(t, -50.0, line.To.Velocity)
	assert.Less(t, line.From.Range, line.To.Range)
}

func TestProjectRecoversTarget(t *testing.T) {
	cfg := testConfig()
	cfg.ChirpDurations = []float64{40e-6}
	tgt := Target{ID: "t", Range: 30, Velocity: 10, Enabled: true}

	// The steady-state tone this target mixes down to.
	delay := 2 * tgt.Range / speedOfLight
	bf := cfg.BandwidthHz*delay/cfg.ChirpDurations[0] - Doppler(cfg.CarrierHz, tgt.Velocity)

	line := Project(cfg.CarrierHz, bf, cfg.ChirpDurations[0], cfg.BandwidthHz, -50, 50)
	require.Equal(t, 50.0, line.From.Velocity)
	require.Equal(t, -50.0, line.To.Velocity)

	// The true target state lies on its own ambiguity line.
	frac := (line.From.Velocity - tgt.Velocity) / (line.From.Velocity - line.To.Velocity)
	require.GreaterOrEqual(t, frac, 0.0)
	require.LessOrEqual(t, frac, 1.0)
	r := line.From.Range + frac*(line.To.Range-line.From.Range)
	assert.InDelta(t, tgt.Range, r, 1e-3)
}

func TestProjectStationaryZeroBeat(t *testing.T) {
	// A zero beat explained by a stationary target pins range zero.
	line := Project(77e9, 0, 40e-6, 2e9, 0, 1)
	assert.InDelta(t, 0, line.From.Range, 1e-9)
	assert.InDelta(t, 0, line.From.Velocity, 1e-12)
}
