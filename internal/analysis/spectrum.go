package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var ErrShortSeries = errors.New("analysis: need at least two samples")

// PowerSpectrum returns |X[k]| for the non-negative frequency bins of a
// real series. An empty series has an empty spectrum.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return []float64{}
	}
	spec := fft.FFTReal(data)
	ps := make([]float64, len(spec)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-DC frequency, in cycles per
// unit time, of a series sampled every dt.
func DominantFrequency(data []float64, dt float64) (float64, error) {
	if len(data) < 2 {
		return 0, ErrShortSeries
	}
	if dt <= 0 {
		return 0, errors.New("analysis: dt must be positive")
	}

	ps := PowerSpectrum(data)
	peak, peakIdx := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > peak {
			peak, peakIdx = ps[i], i
		}
	}
	return float64(peakIdx) / (float64(len(data)) * dt), nil
}
