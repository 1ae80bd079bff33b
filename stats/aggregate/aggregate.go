package aggregate

import (
	"math"

	"github.com/cwbudde/algo-voicedetect/stats/features"
)

const (
	// silenceExclusionRMS excludes effectively silent frames from the noise
	// floor so exact-zero frames cannot pull it to -Inf.
	silenceExclusionRMS = 1e-5

	// noiseFloorEpsilon keeps the log finite.
	noiseFloorEpsilon = 1e-9

	// DigitalSilenceRun is the minimum length, in samples, of an exact-zero
	// run that counts as digital silence (about 20 ms at 44.1 kHz). Shorter
	// runs occur naturally in dithered or very quiet recordings.
	DigitalSilenceRun = 1000
)

// Stats summarizes a full sequence of frame descriptors plus a raw-sample
// scan of the normalized signal.
type Stats struct {
	FrameCount  int
	VoicedCount int

	// NoiseFloorDB is 20*log10 of the quietest non-silent frame RMS. When no
	// frame qualifies the fallback RMS of 1.0 yields a sentinel near 0 dB,
	// meaning "no signal found".
	NoiseFloorDB float64

	AvgRolloffHz    float64
	RolloffVariance float64
	StdRolloffHz    float64
	AvgCentroidHz   float64

	// RMSCoeffVariation is stddev/mean of all frame RMS values. A fully
	// silent recording divides by a zero mean and propagates NaN; callers
	// decide how to treat that.
	RMSCoeffVariation float64

	HasDigitalSilence bool
	LongestZeroRun    int
}

// LongestZeroRun returns the length of the longest contiguous run of exactly
// zero-valued samples. Low-amplitude noise does not count; only bit-exact
// zeros indicate artificial padding or truncation.
func LongestZeroRun(samples []float64) int {
	longest := 0
	run := 0
	for _, v := range samples {
		if v == 0 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// Calculate reduces the frame descriptor sequence and the normalized raw
// samples into summary statistics. It tolerates an empty frame sequence
// (signal shorter than one frame): gated statistics fall back to zero and the
// noise floor reports its sentinel.
func Calculate(frames []features.Features, samples []float64) Stats {
	var s Stats
	s.FrameCount = len(frames)

	// Noise floor: quietest frame above the silence exclusion threshold.
	minRMS := math.Inf(1)
	for _, f := range frames {
		if f.RMS > silenceExclusionRMS && f.RMS < minRMS {
			minRMS = f.RMS
		}
	}
	if math.IsInf(minRMS, 1) {
		minRMS = 1.0
	}
	s.NoiseFloorDB = 20 * math.Log10(minRMS+noiseFloorEpsilon)

	// Rolloff and centroid aggregate over voiced frames only.
	rolloffSum := 0.0
	centroidSum := 0.0
	for _, f := range frames {
		if !f.Voiced {
			continue
		}
		s.VoicedCount++
		rolloffSum += f.RolloffHz
		centroidSum += f.CentroidHz
	}

	voicedDiv := float64(s.VoicedCount)
	if s.VoicedCount == 0 {
		voicedDiv = 1
	}
	s.AvgRolloffHz = rolloffSum / voicedDiv
	s.AvgCentroidHz = centroidSum / voicedDiv

	varSum := 0.0
	for _, f := range frames {
		if !f.Voiced {
			continue
		}
		d := f.RolloffHz - s.AvgRolloffHz
		varSum += d * d
	}
	s.RolloffVariance = varSum / voicedDiv
	s.StdRolloffHz = math.Sqrt(s.RolloffVariance)

	// Coefficient of variation over every frame RMS, voiced or not.
	s.RMSCoeffVariation = rmsCoeffVariation(frames)

	s.LongestZeroRun = LongestZeroRun(samples)
	s.HasDigitalSilence = s.LongestZeroRun > DigitalSilenceRun

	return s
}

func rmsCoeffVariation(frames []features.Features) float64 {
	n := float64(len(frames))

	sum := 0.0
	for _, f := range frames {
		sum += f.RMS
	}
	mean := sum / n

	varSum := 0.0
	for _, f := range frames {
		d := f.RMS - mean
		varSum += d * d
	}

	// Zero mean (or zero frames) propagates NaN, see Stats.RMSCoeffVariation.
	return math.Sqrt(varSum/n) / mean
}
