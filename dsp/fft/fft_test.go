package fft

import (
	"errors"
	"math"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-voicedetect/internal/testutil"
)

func TestForwardRejectsNonPowerOfTwo(t *testing.T) {
	for _, n := range []int{3, 5, 6, 1000, 2047} {
		re := make([]float64, n)
		im := make([]float64, n)
		if err := Forward(re, im); !errors.Is(err, ErrNotPowerOfTwo) {
			t.Fatalf("length %d: expected ErrNotPowerOfTwo, got %v", n, err)
		}
	}
}

func TestForwardRejectsLengthMismatch(t *testing.T) {
	if err := Forward(make([]float64, 8), make([]float64, 4)); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestForwardImpulse(t *testing.T) {
	// A unit impulse transforms to a flat spectrum of ones.
	re := testutil.Impulse(64, 0)
	im := make([]float64, 64)

	if err := Forward(re, im); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range re {
		if math.Abs(re[i]-1) > 1e-12 || math.Abs(im[i]) > 1e-12 {
			t.Fatalf("bin %d: got (%v, %v), want (1, 0)", i, re[i], im[i])
		}
	}
}

func TestForwardSingleBinSine(t *testing.T) {
	// A full-scale sine hitting bin 8 exactly: N/2 magnitude splits between
	// bins 8 and N-8.
	const n = 256
	const bin = 8

	re := testutil.DeterministicSine(bin, n, 1.0, n)
	im := make([]float64, n)

	if err := Forward(re, im); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < n; i++ {
		mag := math.Hypot(re[i], im[i])
		want := 0.0
		if i == bin || i == n-bin {
			want = n / 2
		}
		if math.Abs(mag-want) > 1e-8 {
			t.Fatalf("bin %d: magnitude %v, want %v", i, mag, want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	orig := testutil.DeterministicNoise(42, 1.0, 1024)

	re := append([]float64(nil), orig...)
	im := make([]float64, len(orig))

	if err := Forward(re, im); err != nil {
		t.Fatalf("forward: %v", err)
	}
	if err := Inverse(re, im); err != nil {
		t.Fatalf("inverse: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, re, orig, 1e-9)
	for i, v := range im {
		if math.Abs(v) > 1e-9 {
			t.Fatalf("index %d: imaginary residue %v", i, v)
		}
	}
}

func TestForwardMatchesReferencePlan(t *testing.T) {
	// Pin the DFT conventions (sign, normalization) against the algo-fft
	// reference backend.
	const n = 512

	input := testutil.DeterministicNoise(7, 1.0, n)

	re := append([]float64(nil), input...)
	im := make([]float64, n)
	if err := Forward(re, im); err != nil {
		t.Fatalf("forward: %v", err)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		t.Fatalf("reference plan: %v", err)
	}

	in := make([]complex128, n)
	for i, v := range input {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		t.Fatalf("reference forward: %v", err)
	}

	for i := range out {
		if math.Abs(re[i]-real(out[i])) > 1e-8 || math.Abs(im[i]-imag(out[i])) > 1e-8 {
			t.Fatalf("bin %d: got (%v, %v), reference (%v, %v)",
				i, re[i], im[i], real(out[i]), imag(out[i]))
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024, 2048} {
		if !IsPowerOfTwo(n) {
			t.Fatalf("%d should be a power of two", n)
		}
	}
	for _, n := range []int{0, -2, 3, 6, 2047} {
		if IsPowerOfTwo(n) {
			t.Fatalf("%d should not be a power of two", n)
		}
	}
}
