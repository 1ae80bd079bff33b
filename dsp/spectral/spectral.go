package spectral

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-voicedetect/dsp/fft"
)

// Hann returns symmetric Hann window coefficients:
//
//	w[i] = 0.5 * (1 - cos(2*pi*i/(n-1)))
func Hann(n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = 0
		return out
	}
	for i := range out {
		out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return out
}

// Transform computes magnitude spectra of fixed-size analysis frames.
//
// Each call windows the frame with a precomputed Hann window, runs the
// radix-2 FFT and keeps the lower half of the magnitude spectrum (the upper
// half mirrors it for real input). A Transform owns its scratch buffers and
// must not be shared across goroutines.
type Transform struct {
	size   int
	window []float64
	re     []float64
	im     []float64
}

// NewTransform creates a transform for frames of the given power-of-two size.
func NewTransform(size int) (*Transform, error) {
	if !fft.IsPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: %d", fft.ErrNotPowerOfTwo, size)
	}

	return &Transform{
		size:   size,
		window: Hann(size),
		re:     make([]float64, size),
		im:     make([]float64, size),
	}, nil
}

// Size returns the frame size in samples.
func (t *Transform) Size() int { return t.size }

// BinCount returns the number of spectrum bins (half the frame size).
func (t *Transform) BinCount() int { return t.size / 2 }

// BinWidth returns the frequency width of one bin in Hz.
func (t *Transform) BinWidth(sampleRate float64) float64 {
	return sampleRate / float64(t.size)
}

// Magnitudes computes the magnitude spectrum of frame into dst and returns it.
// dst must have length [Transform.BinCount]; pass nil to allocate. The frame
// itself is left untouched.
func (t *Transform) Magnitudes(frameData, dst []float64) ([]float64, error) {
	if len(frameData) != t.size {
		return nil, fmt.Errorf("spectral frame length mismatch: %d != %d", len(frameData), t.size)
	}

	half := t.size / 2
	if dst == nil {
		dst = make([]float64, half)
	}
	if len(dst) != half {
		return nil, fmt.Errorf("spectral destination length mismatch: %d != %d", len(dst), half)
	}

	vecmath.MulBlock(t.re, frameData, t.window)
	for i := range t.im {
		t.im[i] = 0
	}

	if err := fft.Forward(t.re, t.im); err != nil {
		return nil, err
	}

	vecmath.Magnitude(dst, t.re[:half], t.im[:half])
	return dst, nil
}
