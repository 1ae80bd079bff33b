package frame

import "fmt"

// Slicer is a restartable, indexable view of fixed-size overlapping frames
// taken from a signal. Frames start at offsets 0, hop, 2*hop, ... and the
// final partial tail is dropped, never padded.
type Slicer struct {
	samples []float64
	size    int
	hop     int
}

// NewSlicer creates a slicer over samples. The samples slice is not copied;
// callers that mutate frame data must use [Slicer.CopyAt].
func NewSlicer(samples []float64, size, hop int) (*Slicer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("frame size must be > 0: %d", size)
	}
	if hop <= 0 {
		return nil, fmt.Errorf("frame hop must be > 0: %d", hop)
	}

	return &Slicer{
		samples: samples,
		size:    size,
		hop:     hop,
	}, nil
}

// Size returns the frame length in samples.
func (s *Slicer) Size() int { return s.size }

// Hop returns the hop size in samples.
func (s *Slicer) Hop() int { return s.hop }

// Count returns the number of complete frames. A signal shorter than one
// frame yields zero frames.
func (s *Slicer) Count() int {
	if len(s.samples) < s.size {
		return 0
	}
	return (len(s.samples)-s.size)/s.hop + 1
}

// At returns frame i as a read-only view into the underlying signal.
func (s *Slicer) At(i int) ([]float64, error) {
	if i < 0 || i >= s.Count() {
		return nil, fmt.Errorf("frame index out of range: %d (count %d)", i, s.Count())
	}
	start := i * s.hop
	return s.samples[start : start+s.size], nil
}

// CopyAt copies frame i into dst, which must have length [Slicer.Size].
// The copy may be mutated freely (e.g. windowed in place).
func (s *Slicer) CopyAt(i int, dst []float64) error {
	if len(dst) != s.size {
		return fmt.Errorf("frame destination length mismatch: %d != %d", len(dst), s.size)
	}
	src, err := s.At(i)
	if err != nil {
		return err
	}
	copy(dst, src)
	return nil
}
