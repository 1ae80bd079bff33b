package detect

import "github.com/cwbudde/algo-voicedetect/stats/aggregate"

// Classification labels a recording as naturally or synthetically produced.
type Classification int

const (
	Human Classification = iota
	AI
)

// String returns a display label.
func (c Classification) String() string {
	if c == AI {
		return "AI"
	}
	return "Human"
}

// Metrics holds the display-oriented values derived from the aggregated
// statistics.
type Metrics struct {
	// NoiseFloorDB is the quietest non-silent frame level in dB.
	NoiseFloorDB float64

	// FrequencyCutoffHz is the average spectral rolloff of voiced frames.
	FrequencyCutoffHz float64

	// HarmonicRegularityScore maps rolloff rigidity to 0..100: a rolloff
	// standard deviation of 0 Hz scores 100, 300 Hz or more scores 0.
	HarmonicRegularityScore float64

	// EnergyVariationScore is the RMS coefficient of variation scaled to
	// 0..100 and capped at 100. It inherits NaN from a fully silent input.
	EnergyVariationScore float64

	// BreathingArtifactsDetected reports a raised noise floor without
	// digital silence, the texture of natural room tone and breath.
	BreathingArtifactsDetected bool
}

// Result is the terminal output of one analysis.
type Result struct {
	Classification Classification

	// Confidence is an integer percentage in [60, 99].
	Confidence int

	// Explanation concatenates the first two factor statements collected in
	// evaluation order.
	Explanation string

	// KeyObservation is the statement of the highest-priority factor that
	// fired.
	KeyObservation string

	Metrics Metrics

	// Stats carries the aggregated statistics the verdict was derived from.
	Stats aggregate.Stats
}
