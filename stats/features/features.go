package features

import "math"

const (
	// VoicingGate is the frame RMS above which spectral descriptors are
	// computed. Frames at or below the gate contribute only their RMS to
	// aggregation.
	VoicingGate = 0.01

	// RolloffFraction is the cumulative spectral-energy fraction defining
	// the rolloff frequency.
	RolloffFraction = 0.85

	// centroidEpsilon keeps the centroid denominator away from zero on
	// near-silent voiced frames. Fixed constant, not adaptive.
	centroidEpsilon = 1e-4

	// flatnessEpsilon offsets magnitudes before the log so the geometric
	// mean stays finite on zero bins.
	flatnessEpsilon = 1e-10
)

// Features holds the scalar descriptors of one analysis frame.
//
// RMS is always present. The spectral descriptors are only meaningful when
// Voiced is true; unvoiced frames carry zero values there rather than
// sentinel magic numbers.
type Features struct {
	RMS        float64
	Voiced     bool
	RolloffHz  float64
	CentroidHz float64
	Flatness   float64
}

// RMS returns the root-mean-square amplitude of the frame samples.
func RMS(frameData []float64) float64 {
	if len(frameData) == 0 {
		return 0
	}

	sumSq := 0.0
	for _, x := range frameData {
		sumSq += x * x
	}
	return math.Sqrt(sumSq / float64(len(frameData)))
}

// Rolloff returns the frequency in Hz below which [RolloffFraction] of the
// spectral energy lies: the smallest bin j whose cumulative squared-magnitude
// sum reaches the threshold. A zero-energy spectrum rolls off at bin 0.
func Rolloff(mag []float64, binWidth float64) float64 {
	total := 0.0
	for _, v := range mag {
		total += v * v
	}
	if total == 0 {
		return 0
	}

	threshold := RolloffFraction * total
	cum := 0.0
	for j, v := range mag {
		cum += v * v
		if cum >= threshold {
			return float64(j) * binWidth
		}
	}
	return float64(len(mag)-1) * binWidth
}

// Centroid returns the magnitude-weighted average frequency in Hz:
//
//	centroid = sum(j * mag[j]) / (sum(mag[j]) + 1e-4) * binWidth
func Centroid(mag []float64, binWidth float64) float64 {
	weighted := 0.0
	total := 0.0
	for j, v := range mag {
		weighted += float64(j) * v
		total += v
	}
	return weighted / (total + centroidEpsilon) * binWidth
}

// Flatness returns the ratio of geometric to arithmetic mean of the offset
// magnitudes, computed via log-sum to avoid overflow. Range (0, 1]; values
// near 1 indicate noise-like spectra, near 0 tonal ones.
func Flatness(mag []float64) float64 {
	if len(mag) == 0 {
		return 0
	}

	sumLog := 0.0
	sumLin := 0.0
	for _, v := range mag {
		sumLog += math.Log(v + flatnessEpsilon)
		sumLin += v + flatnessEpsilon
	}

	n := float64(len(mag))
	return math.Exp(sumLog/n) / (sumLin/n + flatnessEpsilon)
}

// Extract computes the descriptors of one frame from its precomputed RMS and
// magnitude spectrum. Callers may pass a nil spectrum for frames at or below
// the voicing gate; such frames come back unvoiced with RMS only.
func Extract(rms float64, mag []float64, binWidth float64) Features {
	f := Features{RMS: rms}
	if rms <= VoicingGate || mag == nil {
		return f
	}

	f.Voiced = true
	f.RolloffHz = Rolloff(mag, binWidth)
	f.CentroidHz = Centroid(mag, binWidth)
	f.Flatness = Flatness(mag)
	return f
}
