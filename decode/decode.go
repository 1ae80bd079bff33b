package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/wav"
)

// ErrDecode wraps every decoding failure (unsupported or corrupt input) so
// callers can match the whole class with errors.Is.
var ErrDecode = errors.New("audio decode failed")

// Signal is a decoded single-channel PCM sequence at its native sample rate.
type Signal struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the signal length in seconds.
func (s Signal) Duration() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// PCM decodes a complete WAV stream into float64 samples in [-1, 1]. Only the
// first channel of multi-channel files is kept; the sample rate is passed
// through unchanged.
func PCM(r io.ReadSeeker) (Signal, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return Signal{}, fmt.Errorf("%w: not a valid wav file", ErrDecode)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return Signal{}, fmt.Errorf("%w: reading pcm: %v", ErrDecode, err)
	}
	if buf.Format == nil || buf.Format.SampleRate <= 0 {
		return Signal{}, fmt.Errorf("%w: missing format information", ErrDecode)
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		channels = 1
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := 1.0 / math.Pow(2, float64(bitDepth-1))

	samples := make([]float64, 0, len(buf.Data)/channels)
	for i := 0; i < len(buf.Data); i += channels {
		samples = append(samples, float64(buf.Data[i])*scale)
	}

	return Signal{
		Samples:    samples,
		SampleRate: buf.Format.SampleRate,
	}, nil
}

// Bytes decodes a complete in-memory WAV file.
func Bytes(data []byte) (Signal, error) {
	return PCM(bytes.NewReader(data))
}
