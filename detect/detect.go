package detect

import (
	"fmt"

	"github.com/cwbudde/algo-voicedetect/decode"
	"github.com/cwbudde/algo-voicedetect/dsp/frame"
	"github.com/cwbudde/algo-voicedetect/dsp/signal"
	"github.com/cwbudde/algo-voicedetect/dsp/spectral"
	"github.com/cwbudde/algo-voicedetect/stats/aggregate"
	"github.com/cwbudde/algo-voicedetect/stats/features"
)

// Config holds the analysis parameters.
type Config struct {
	// FFTSize is the analysis frame length in samples, a power of two.
	FFTSize int

	// HopSize is the frame advance in samples.
	HopSize int

	// TargetPeak is the normalization peak applied before framing.
	TargetPeak float64
}

// DefaultConfig returns the standard analysis parameters: 2048-point frames
// with 50% overlap, normalized to a 0.95 peak.
func DefaultConfig() Config {
	return Config{
		FFTSize:    2048,
		HopSize:    1024,
		TargetPeak: 0.95,
	}
}

func normalizeConfig(cfg Config) Config {
	def := DefaultConfig()
	if cfg.FFTSize == 0 {
		cfg.FFTSize = def.FFTSize
	}
	if cfg.HopSize == 0 {
		cfg.HopSize = def.HopSize
	}
	if cfg.TargetPeak == 0 {
		cfg.TargetPeak = def.TargetPeak
	}
	return cfg
}

// Analyzer runs the classification pipeline: peak normalization, frame
// slicing, windowed magnitude spectra, per-frame descriptors, aggregation and
// the scoring rule.
//
// An Analyzer owns scratch buffers and must not be shared across goroutines;
// concurrent analyses each need their own instance.
type Analyzer struct {
	cfg      Config
	tr       *spectral.Transform
	frameBuf []float64
	magBuf   []float64
}

// NewAnalyzer creates an analyzer. Zero-valued config fields fall back to
// [DefaultConfig]; invalid values are rejected.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	cfg = normalizeConfig(cfg)

	if cfg.HopSize < 0 {
		return nil, fmt.Errorf("detect hop size must be > 0: %d", cfg.HopSize)
	}
	if cfg.TargetPeak < 0 {
		return nil, fmt.Errorf("detect target peak must be > 0: %f", cfg.TargetPeak)
	}

	tr, err := spectral.NewTransform(cfg.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("detect fft size: %w", err)
	}

	return &Analyzer{
		cfg:      cfg,
		tr:       tr,
		frameBuf: make([]float64, cfg.FFTSize),
		magBuf:   make([]float64, tr.BinCount()),
	}, nil
}

// Config returns the effective analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// AnalyzeSignal classifies an already-decoded single-channel signal. The
// input slice is not modified. Degenerate signals (shorter than one frame,
// or entirely silent) are not errors: the pipeline completes on fallback
// statistics. The only failure is a non-positive sample rate.
func (a *Analyzer) AnalyzeSignal(samples []float64, sampleRate int) (Result, error) {
	if sampleRate <= 0 {
		return Result{}, fmt.Errorf("detect sample rate must be > 0: %d", sampleRate)
	}

	normalized, err := signal.Normalize(samples, a.cfg.TargetPeak)
	if err != nil {
		return Result{}, err
	}

	slicer, err := frame.NewSlicer(normalized, a.cfg.FFTSize, a.cfg.HopSize)
	if err != nil {
		return Result{}, err
	}

	binWidth := a.tr.BinWidth(float64(sampleRate))

	frames := make([]features.Features, 0, slicer.Count())
	for i := 0; i < slicer.Count(); i++ {
		if err := slicer.CopyAt(i, a.frameBuf); err != nil {
			return Result{}, err
		}

		rms := features.RMS(a.frameBuf)
		if rms <= features.VoicingGate {
			frames = append(frames, features.Extract(rms, nil, binWidth))
			continue
		}

		mag, err := a.tr.Magnitudes(a.frameBuf, a.magBuf)
		if err != nil {
			return Result{}, err
		}
		frames = append(frames, features.Extract(rms, mag, binWidth))
	}

	return classify(aggregate.Calculate(frames, normalized)), nil
}

// AnalyzeBytes decodes a complete in-memory WAV file and classifies it.
// Decode failures wrap [decode.ErrDecode] and abort before any analysis work.
func (a *Analyzer) AnalyzeBytes(audioBytes []byte) (Result, error) {
	sig, err := decode.Bytes(audioBytes)
	if err != nil {
		return Result{}, err
	}
	return a.AnalyzeSignal(sig.Samples, sig.SampleRate)
}

// Analyze is a one-shot classification of an in-memory WAV file with the
// default configuration.
func Analyze(audioBytes []byte) (Result, error) {
	a, err := NewAnalyzer(DefaultConfig())
	if err != nil {
		return Result{}, err
	}
	return a.AnalyzeBytes(audioBytes)
}

// AnalyzeSignal is a one-shot classification of already-decoded PCM samples
// with the default configuration.
func AnalyzeSignal(samples []float64, sampleRate int) (Result, error) {
	a, err := NewAnalyzer(DefaultConfig())
	if err != nil {
		return Result{}, err
	}
	return a.AnalyzeSignal(samples, sampleRate)
}
