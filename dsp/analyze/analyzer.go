package analyze

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-audioedit/dsp/core"
)

const (
	// FloorDB is the value reported for silent bins.
	FloorDB = -130.0

	eps = 1e-20
)

// Analyzer computes Hann-windowed magnitude spectra at a fixed FFT size.
// It reuses its FFT plan and scratch buffers across calls and is not
// safe for concurrent use.
type Analyzer struct {
	fftSize    int
	sampleRate float64

	window     []float64
	windowGain float64

	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
	re   []float64
	im   []float64
	mags []float64
}

// NewAnalyzer creates an analyzer for the given FFT size (a power of two,
// at least 16) and sample rate.
func NewAnalyzer(fftSize int, sampleRate float64) (*Analyzer, error) {
	if fftSize < 16 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("analyzer fft size must be a power of two >= 16: %d", fftSize)
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("analyzer sample rate must be positive and finite: %f", sampleRate)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("analyzer fft plan: %w", err)
	}

	window := make([]float64, fftSize)
	sum := 0.0
	for i := range window {
		// Periodic Hann, matching streaming analyzer convention.
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(fftSize)))
		sum += window[i]
	}

	bins := fftSize/2 + 1

	return &Analyzer{
		fftSize:    fftSize,
		sampleRate: sampleRate,
		window:     window,
		windowGain: sum / float64(fftSize),
		plan:       plan,
		in:         make([]complex128, fftSize),
		out:        make([]complex128, fftSize),
		re:         make([]float64, bins),
		im:         make([]float64, bins),
		mags:       make([]float64, bins),
	}, nil
}

// FFTSize returns the configured FFT length.
func (a *Analyzer) FFTSize() int { return a.fftSize }

// Bins returns the number of spectrum bins (fftSize/2 + 1).
func (a *Analyzer) Bins() int { return a.fftSize/2 + 1 }

// BinFrequency returns the center frequency in Hz for bin i.
func (a *Analyzer) BinFrequency(i int) float64 {
	return float64(i) * a.sampleRate / float64(a.fftSize)
}

// MagnitudesDB computes the dBFS magnitude spectrum of the leading
// fftSize samples. Shorter inputs are zero-padded. The returned slice is
// owned by the analyzer and valid until the next call.
func (a *Analyzer) MagnitudesDB(samples []float64) ([]float64, error) {
	n := len(samples)
	if n > a.fftSize {
		n = a.fftSize
	}

	for i := 0; i < n; i++ {
		a.in[i] = complex(samples[i]*a.window[i], 0)
	}
	for i := n; i < a.fftSize; i++ {
		a.in[i] = 0
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("analyzer forward fft: %w", err)
	}

	bins := a.Bins()
	for k := 0; k < bins; k++ {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}

	vecmath.Magnitude(a.mags, a.re, a.im)

	norm := float64(a.fftSize) * math.Max(a.windowGain, eps)
	for k := 0; k < bins; k++ {
		mag := a.mags[k] / norm
		if k > 0 && k < bins-1 {
			mag *= 2
		}

		db := core.LinearToDB(math.Max(mag, eps))
		if db < FloorDB {
			db = FloorDB
		}

		a.mags[k] = db
	}

	return a.mags, nil
}
