package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// WithZeroRun returns a copy of data with an exact-zero run of runLength
// samples written at the given offset. Runs past the end are truncated.
func WithZeroRun(data []float64, offset, runLength int) []float64 {
	out := append([]float64(nil), data...)
	for i := offset; i < offset+runLength && i < len(out); i++ {
		if i >= 0 {
			out[i] = 0
		}
	}
	return out
}

// AppendZeroRun returns data extended by runLength exact-zero samples.
func AppendZeroRun(data []float64, runLength int) []float64 {
	out := append([]float64(nil), data...)
	return append(out, make([]float64, runLength)...)
}
