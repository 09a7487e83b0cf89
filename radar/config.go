package radar

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var ErrInvalidConfig = errors.New("invalid radar config")

// Config describes the transmitted chirp sequence and the capture window
// sampled at the start of each chirp.
type Config struct {
	CarrierHz       float64   `json:"carrier_hz" yaml:"carrier_hz"`
	BandwidthHz     float64   `json:"bandwidth_hz" yaml:"bandwidth_hz"`
	ChirpDurations  []float64 `json:"chirp_durations" yaml:"chirp_durations"`
	SampleRateHz    float64   `json:"sample_rate_hz" yaml:"sample_rate_hz"`
	CaptureDuration float64   `json:"capture_duration" yaml:"capture_duration"`
}

// TotalDuration is the period of the full sawtooth sequence.
func (c Config) TotalDuration() float64 {
	total := 0.0
	for _, d := range c.ChirpDurations {
		total += d
	}
	return total
}

func (c Config) SamplesPerWindow() int {
	return int(math.Round(c.CaptureDuration * c.SampleRateHz))
}

func (c Config) Validate() error {
	if c.CarrierHz <= 0 {
		return fmt.Errorf("%w: carrier %g Hz", ErrInvalidConfig, c.CarrierHz)
	}
	if c.BandwidthHz <= 0 {
		return fmt.Errorf("%w: bandwidth %g Hz", ErrInvalidConfig, c.BandwidthHz)
	}
	if c.SampleRateHz <= 0 {
		return fmt.Errorf("%w: sample rate %g Hz", ErrInvalidConfig, c.SampleRateHz)
	}
	if c.CaptureDuration <= 0 {
		return fmt.Errorf("%w: capture duration %g s", ErrInvalidConfig, c.CaptureDuration)
	}
	if len(c.ChirpDurations) == 0 {
		return fmt.Errorf("%w: no chirp durations", ErrInvalidConfig)
	}
	for i, d := range c.ChirpDurations {
		if d <= 0 {
			return fmt.Errorf("%w: chirp duration %d is %g s", ErrInvalidConfig, i, d)
		}
	}
	if n := c.SamplesPerWindow(); n < 2 {
		return fmt.Errorf("%w: %d samples per capture window", ErrInvalidConfig, n)
	}
	return nil
}

// Window is one capture interval, aligned to the start of a chirp segment.
type Window struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Samples  int     `json:"samples"`
}

// Times returns the window's sample instants, both endpoints included.
// The step divides by Samples-1; Validate guarantees at least two samples.
func (w Window) Times() []float64 {
	return floats.Span(make([]float64, w.Samples), w.Start, w.Start+w.Duration)
}

// Windows derives one capture window per chirp segment.
func (c Config) Windows() []Window {
	n := c.SamplesPerWindow()
	ws := make([]Window, len(c.ChirpDurations))
	start := 0.0
	for i, d := range c.ChirpDurations {
		ws[i] = Window{Start: start, Duration: c.CaptureDuration, Samples: n}
		start += d
	}
	return ws
}
