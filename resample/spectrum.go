package resample

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-interp/internal/numeric"
)

// ErrEmptySignal is returned when a spectrum is requested for no samples.
var ErrEmptySignal = errors.New("resample: signal is empty")

// Spectrum returns the magnitude spectrum of a uniformly spaced signal.
//
// The signal is zero-padded to the next power of two before the
// transform; the result holds fftSize/2 + 1 bins from DC to Nyquist.
func Spectrum(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}

	fftSize := numeric.NextPowerOf2(len(signal))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("resample: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range signal {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("resample: forward FFT failed: %w", err)
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	out := make([]float64, binCount)
	vecmath.Magnitude(out, re, im)

	return out, nil
}

// NormalizePeak scales the signal so its largest absolute value is 1.
// An all-zero signal is returned unchanged. The input is not modified.
func NormalizePeak(signal []float64) []float64 {
	out := make([]float64, len(signal))

	peak := vecmath.MaxAbs(signal)
	if peak == 0 {
		copy(out, signal)
		return out
	}

	vecmath.ScaleBlock(out, signal, 1/peak)

	return out
}
