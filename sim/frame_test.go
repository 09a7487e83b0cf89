package sim

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GRASBOCK/fmcw-radar-demo-0/radar"
	"github.com/GRASBOCK/fmcw-radar-demo-0/store"
)

func demoConfig() radar.Config {
	return radar.Config{
		CarrierHz:       77e9,
		BandwidthHz:     2e9,
		ChirpDurations:  []float64{40e-6, 40e-6},
		SampleRateHz:    40.1e6,
		CaptureDuration: 10e-6,
	}
}

func TestComputeFrameShape(t *testing.T) {
	cfg := demoConfig()
	f, err := Compute(cfg, nil, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, f.Times, DefaultOptions().TimelinePoints)
	assert.Len(t, f.TxHz, len(f.Times))
	assert.Empty(t, f.Beats)
	require.Len(t, f.Windows, len(cfg.ChirpDurations))
	n := cfg.SamplesPerWindow()
	for _, res := range f.Windows {
		assert.Len(t, res.Signal, n)
		assert.Len(t, res.Spectrum, n/2)
		assert.Len(t, res.Lines, len(res.Peaks))
	}
}

func TestComputeEndToEnd(t *testing.T) {
	tgt := radar.Target{ID: "tgt", Range: 30, Velocity: 10, Enabled: true}
	f, err := Compute(demoConfig(), []radar.Target{tgt}, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, f.Windows, 2)

	// The plateau beat tone for a 30m target is ~10.01MHz; each capture
	// should detect it within a bin and its ambiguity line should pass
	// close to the true target state.
	delay := 2 * tgt.Range / 299792458.0
	wantHz := demoConfig().BandwidthHz * delay / demoConfig().ChirpDurations[0]
	binHz := demoConfig().SampleRateHz / float64(demoConfig().SamplesPerWindow())
	for wi, res := range f.Windows {
		require.NotEmpty(t, res.Peaks, "window %d", wi)
		best := 0
		for j, p := range res.Peaks {
			if p.Mag > res.Peaks[best].Mag {
				best = j
			}
		}
		assert.InDelta(t, wantHz, res.Peaks[best].Hz, binHz, "window %d", wi)

		line := res.Lines[best]
		frac := (line.From.Velocity - tgt.Velocity) / (line.From.Velocity - line.To.Velocity)
		require.GreaterOrEqual(t, frac, 0.0, "window %d", wi)
		require.LessOrEqual(t, frac, 1.0, "window %d", wi)
		r := line.From.Range + frac*(line.To.Range-line.From.Range)
		assert.InDelta(t, tgt.Range, r, 1.0, "window %d", wi)
	}
}

func TestComputeDeterministic(t *testing.T) {
	sc := store.DefaultScene()
	a, err := Compute(sc.Config, sc.Targets, DefaultOptions())
	require.NoError(t, err)
	b, err := Compute(sc.Config, sc.Targets, DefaultOptions())
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("frames differ (-first +second):\n%s", diff)
	}
}

func TestComputeDisabledTargets(t *testing.T) {
	on := radar.Target{ID: "on", Range: 20, Velocity: 5, Enabled: true}
	off := radar.Target{ID: "off", Range: 40, Velocity: -5, Enabled: false}
	f, err := Compute(demoConfig(), []radar.Target{on, off}, DefaultOptions())
	require.NoError(t, err)
	// Disabled targets still get a beat series for display.
	assert.Len(t, f.Beats, 2)

	f, err = Compute(demoConfig(), []radar.Target{off}, DefaultOptions())
	require.NoError(t, err)
	for _, res := range f.Windows {
		for _, v := range res.Signal {
			assert.Zero(t, v)
		}
		assert.Empty(t, res.Peaks)
		assert.Empty(t, res.Lines)
	}
}

func TestComputeRejectsBadInput(t *testing.T) {
	cfg := demoConfig()
	opts := DefaultOptions()

	_, err := Compute(radar.Config{}, nil, opts)
	assert.True(t, errors.Is(err, radar.ErrInvalidConfig), "got %v", err)

	_, err = Compute(cfg, []radar.Target{{Range: 1, Enabled: true}}, opts)
	assert.True(t, errors.Is(err, radar.ErrInvalidConfig), "got %v", err)

	dup := radar.Target{ID: "x", Range: 1, Enabled: true}
	_, err = Compute(cfg, []radar.Target{dup, dup}, opts)
	assert.True(t, errors.Is(err, radar.ErrInvalidConfig), "got %v", err)

	_, err = Compute(cfg, []radar.Target{{ID: "x", Range: 1, Velocity: 3e8, Enabled: true}}, opts)
	assert.True(t, errors.Is(err, radar.ErrSuperluminal), "got %v", err)

	bad := opts
	bad.TimelinePoints = 1
	_, err = Compute(cfg, nil, bad)
	assert.True(t, errors.Is(err, radar.ErrInvalidConfig), "got %v", err)

	bad = opts
	bad.VMin, bad.VMax = 10, -10
	_, err = Compute(cfg, nil, bad)
	assert.True(t, errors.Is(err, radar.ErrInvalidConfig), "got %v", err)
}
