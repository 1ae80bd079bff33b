package fft

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotPowerOfTwo is returned when the transform length is not a power of two.
var ErrNotPowerOfTwo = errors.New("fft length must be a power of two")

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func validate(re, im []float64) error {
	if len(re) != len(im) {
		return fmt.Errorf("fft real/imaginary length mismatch: %d != %d", len(re), len(im))
	}
	if !IsPowerOfTwo(len(re)) {
		return fmt.Errorf("%w: %d", ErrNotPowerOfTwo, len(re))
	}
	return nil
}

// Forward computes the in-place discrete Fourier transform of the complex
// sequence given as separate real and imaginary slices.
//
// The transform is an explicit recursive radix-2 decimation-in-time
// Cooley-Tukey: even/odd halves are transformed recursively, then combined
// with twiddle factors W = exp(-2*pi*i*k/N) in butterflies at indices k and
// k+N/2. The output is unnormalized. The length is restricted to powers of
// two; there is no mixed-radix fallback, so bin spacing stays exactly
// sampleRate/N for the fixed analysis frame size.
func Forward(re, im []float64) error {
	if err := validate(re, im); err != nil {
		return err
	}
	recurse(re, im)
	return nil
}

// Inverse computes the in-place inverse transform, normalized by 1/N, via the
// conjugation identity ifft(x) = conj(fft(conj(x))) / N.
func Inverse(re, im []float64) error {
	if err := validate(re, im); err != nil {
		return err
	}

	for i := range im {
		im[i] = -im[i]
	}
	recurse(re, im)

	invN := 1 / float64(len(re))
	for i := range re {
		re[i] *= invN
		im[i] *= -invN
	}
	return nil
}

func recurse(re, im []float64) {
	n := len(re)
	if n <= 1 {
		return
	}

	half := n / 2
	evenRe := make([]float64, half)
	evenIm := make([]float64, half)
	oddRe := make([]float64, half)
	oddIm := make([]float64, half)

	for i := 0; i < half; i++ {
		evenRe[i] = re[2*i]
		evenIm[i] = im[2*i]
		oddRe[i] = re[2*i+1]
		oddIm[i] = im[2*i+1]
	}

	recurse(evenRe, evenIm)
	recurse(oddRe, oddIm)

	for k := 0; k < half; k++ {
		angle := -2 * math.Pi * float64(k) / float64(n)
		wRe := math.Cos(angle)
		wIm := math.Sin(angle)

		tRe := wRe*oddRe[k] - wIm*oddIm[k]
		tIm := wRe*oddIm[k] + wIm*oddRe[k]

		re[k] = evenRe[k] + tRe
		im[k] = evenIm[k] + tIm
		re[k+half] = evenRe[k] - tRe
		im[k+half] = evenIm[k] - tIm
	}
}
