package radar

import (
	"errors"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

var ErrEmptySignal = errors.New("empty signal")

// Bin is one point of a one-sided magnitude spectrum.
type Bin struct {
	Hz  float64 `json:"hz"`
	Mag float64 `json:"mag"`
}

// Spectrum computes the one-sided amplitude spectrum of a real signal
// sampled at rateHz: a complex FFT over the zero-imaginary input, keeping
// the first n/2 bins with single-sided 2/n scaling.
func Spectrum(signal []float64, rateHz float64) ([]Bin, error) {
	n := len(signal)
	if n == 0 {
		return nil, ErrEmptySignal
	}
	src := make([]complex128, n)
	for i, v := range signal {
		src[i] = complex(v, 0)
	}
	coeffs := fourier.NewCmplxFFT(n).Coefficients(nil, src)
	bins := make([]Bin, n/2)
	for i := range bins {
		bins[i] = Bin{
			Hz:  float64(i) * rateHz / float64(n),
			Mag: cmplx.Abs(coeffs[i]) / float64(n) * 2,
		}
	}
	return bins, nil
}
