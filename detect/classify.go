package detect

import (
	"math"
	"strings"

	"github.com/cwbudde/algo-voicedetect/dsp/core"
	"github.com/cwbudde/algo-voicedetect/stats/aggregate"
)

const (
	// bandLimitHz separates band-limited recordings from full-bandwidth
	// captures.
	bandLimitHz = 17000.0

	// cleanFloorDB is the noise floor below which a band-limited recording
	// counts as unnaturally clean.
	cleanFloorDB = -75.0

	// rigidRolloffStdHz is the rolloff standard deviation below which the
	// cutoff looks like a fixed filter rather than phoneme-driven variation.
	rigidRolloffStdHz = 200.0

	// flatDynamicsCoV is the RMS coefficient of variation below which the
	// dynamics count as over-normalized.
	flatDynamicsCoV = 0.4

	// breathingFloorDB is the noise floor above which natural room tone and
	// breath are assumed present.
	breathingFloorDB = -70.0

	// aiScoreThreshold is the score above which the verdict flips to AI.
	aiScoreThreshold = 35

	confidenceBase = 60
	confidenceSpan = 39

	maxExplanations = 2
)

// factor is one row of the scoring rule: a predicate over the aggregated
// statistics, an additive score delta and the statement surfaced when it
// fires. Primary rows compete for the key observation in table order.
type factor struct {
	name      string
	applies   func(aggregate.Stats) bool
	delta     int
	statement string
	primary   bool
}

func bandLimitedClean(s aggregate.Stats) bool {
	return s.AvgRolloffHz < bandLimitHz && (s.NoiseFloorDB < cleanFloorDB || s.HasDigitalSilence)
}

// decisionTable returns the scoring rows in their fixed evaluation order.
// The three bandwidth rows and the two rigidity rows are mutually exclusive,
// so the table reproduces the original if/else cascade while every row stays
// independently testable.
func decisionTable() []factor {
	return []factor{
		{
			name:      "bandwidth-clean",
			applies:   bandLimitedClean,
			delta:     40,
			statement: "band-limited below 17 kHz with an unnaturally clean noise floor",
			primary:   true,
		},
		{
			name: "bandwidth-noisy",
			applies: func(s aggregate.Stats) bool {
				return s.AvgRolloffHz < bandLimitHz && !bandLimitedClean(s)
			},
			delta:     -30,
			statement: "band-limited but naturally noisy, consistent with modest recording hardware",
			primary:   true,
		},
		{
			name: "bandwidth-full",
			applies: func(s aggregate.Stats) bool {
				return s.AvgRolloffHz >= bandLimitHz
			},
			delta:     -10,
			statement: "full spectral bandwidth, typical of natural capture",
			primary:   true,
		},
		{
			name: "rolloff-rigid",
			applies: func(s aggregate.Stats) bool {
				return s.StdRolloffHz < rigidRolloffStdHz
			},
			delta:     35,
			statement: "spectral rolloff barely varies, the signature of a fixed synthesis filter",
			primary:   true,
		},
		{
			name: "rolloff-natural",
			applies: func(s aggregate.Stats) bool {
				return s.StdRolloffHz >= rigidRolloffStdHz
			},
			delta:     -20,
			statement: "spectral rolloff varies naturally with phonemes",
			primary:   true,
		},
		{
			name: "digital-silence",
			applies: func(s aggregate.Stats) bool {
				return s.HasDigitalSilence
			},
			delta:     25,
			statement: "contains runs of exact digital silence, an artifact of synthesis or export",
		},
		{
			name: "flat-dynamics",
			applies: func(s aggregate.Stats) bool {
				return s.RMSCoeffVariation < flatDynamicsCoV
			},
			delta:     15,
			statement: "loudness dynamics are unusually uniform, as after heavy normalization",
		},
	}
}

// classify applies the decision table to the aggregated statistics. Positive
// score leans AI, negative leans human; the verdict flips to AI only above
// the score threshold.
func classify(s aggregate.Stats) Result {
	score := 0
	keyObservation := ""
	statements := make([]string, 0, 4)

	for _, f := range decisionTable() {
		if !f.applies(s) {
			continue
		}

		score += f.delta
		statements = append(statements, f.statement)
		if f.primary && keyObservation == "" {
			keyObservation = f.statement
		}
	}

	classification := Human
	if score > aiScoreThreshold {
		classification = AI
	}

	confidence := confidenceBase + min(confidenceSpan, abs(score))

	if len(statements) > maxExplanations {
		statements = statements[:maxExplanations]
	}

	return Result{
		Classification: classification,
		Confidence:     confidence,
		Explanation:    strings.Join(statements, "; "),
		KeyObservation: keyObservation,
		Metrics: Metrics{
			NoiseFloorDB:               s.NoiseFloorDB,
			FrequencyCutoffHz:          s.AvgRolloffHz,
			HarmonicRegularityScore:    core.Clamp((300-s.StdRolloffHz)/3, 0, 100),
			EnergyVariationScore:       math.Min(100, s.RMSCoeffVariation*100),
			BreathingArtifactsDetected: s.NoiseFloorDB > breathingFloorDB && !s.HasDigitalSilence,
		},
		Stats: s,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
