package sim

import (
	"fmt"

	"github.com/GRASBOCK/fmcw-radar-demo-0/radar"
)

// Options tune the derived frame resolution and the ambiguity search.
type Options struct {
	TimelinePoints int     `json:"timeline_points" yaml:"timeline_points"`
	VMin           float64 `json:"v_min" yaml:"v_min"`
	VMax           float64 `json:"v_max" yaml:"v_max"`
}

func DefaultOptions() Options {
	return Options{TimelinePoints: 1024, VMin: -50, VMax: 50}
}

func (o Options) validate() error {
	if o.TimelinePoints < 2 {
		return fmt.Errorf("%w: %d timeline points", radar.ErrInvalidConfig, o.TimelinePoints)
	}
	if o.VMin >= o.VMax {
		return fmt.Errorf("%w: velocity search %g..%g", radar.ErrInvalidConfig, o.VMin, o.VMax)
	}
	return nil
}

// WindowResult is the spectral pipeline output for one capture window.
// Peaks[i] pairs with Lines[i].
type WindowResult struct {
	Window   radar.Window `json:"window"`
	Signal   []float64    `json:"signal"`
	Spectrum []radar.Bin  `json:"spectrum"`
	Peaks    []radar.Bin  `json:"peaks"`
	Lines    []radar.Line `json:"lines"`
}

// Frame is the complete derived state for one scene. It is rebuilt whole
// on every recompute and never patched in place.
type Frame struct {
	Times   []float64            `json:"times"`
	TxHz    []float64            `json:"tx_hz"`
	Beats   map[string][]float64 `json:"beats"`
	Windows []WindowResult       `json:"windows"`
}

// Compute runs the pipeline in dependency order: sweep timeline, one beat
// series per target, then per capture window the sampled mix of enabled
// targets, its spectrum, the detected peaks and one ambiguity line per
// peak. Identical inputs always produce identical frames.
func Compute(cfg radar.Config, targets []radar.Target, opts Options) (*Frame, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(targets))
	for _, tgt := range targets {
		if err := tgt.Validate(); err != nil {
			return nil, err
		}
		if tgt.ID == "" {
			return nil, fmt.Errorf("%w: target without id", radar.ErrInvalidConfig)
		}
		if seen[tgt.ID] {
			return nil, fmt.Errorf("%w: duplicate target id %q", radar.ErrInvalidConfig, tgt.ID)
		}
		seen[tgt.ID] = true
	}

	f := &Frame{Beats: make(map[string][]float64, len(targets))}
	f.Times, f.TxHz = cfg.Timeline(opts.TimelinePoints)
	// Disabled targets keep a series for display; they just never reach
	// the capture windows.
	for _, tgt := range targets {
		f.Beats[tgt.ID] = cfg.BeatSeries(f.Times, f.TxHz, tgt)
	}

	for i, w := range cfg.Windows() {
		res := WindowResult{Window: w}
		at := radar.NearestIndex(f.Times, w.Start)
		var tones []float64
		for _, tgt := range targets {
			if tgt.Enabled {
				tones = append(tones, f.Beats[tgt.ID][at])
			}
		}
		res.Signal = radar.Synthesize(w.Times(), tones)
		spec, err := radar.Spectrum(res.Signal, cfg.SampleRateHz)
		if err != nil {
			return nil, err
		}
		res.Spectrum = spec
		for _, p := range radar.FindPeaks(magnitudes(spec)) {
			res.Peaks = append(res.Peaks, spec[p])
			res.Lines = append(res.Lines,
				radar.Project(f.TxHz[at], spec[p].Hz, cfg.ChirpDurations[i], cfg.BandwidthHz, opts.VMin, opts.VMax))
		}
		f.Windows = append(f.Windows, res)
	}
	return f, nil
}

func magnitudes(bins []radar.Bin) []float64 {
	mags := make([]float64, len(bins))
	for i, b := range bins {
		mags[i] = b.Mag
	}
	return mags
}
