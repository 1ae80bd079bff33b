package signal

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func TestSineFrequencyAndAmplitude(t *testing.T) {
	g := NewGenerator(48000)

	out, err := g.Sine(1000, 0.5, 4800)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 4800 {
		t.Fatalf("expected 4800 samples, got %d", len(out))
	}

	if out[0] != 0 {
		t.Fatalf("expected phase start at 0, got %v", out[0])
	}

	// 1 kHz at 48 kHz: 48 samples per period, quarter period at index 12.
	if math.Abs(out[12]-0.5) > 1e-9 {
		t.Fatalf("expected peak 0.5 at quarter period, got %v", out[12])
	}
}

func TestSineInvalidArgs(t *testing.T) {
	g := NewGenerator(48000)
	if _, err := g.Sine(1000, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}

	g = NewGenerator(0)
	if _, err := g.Sine(1000, 1, 16); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	a, err := NewGenerator(44100, WithSeed(7)).WhiteNoise(1, 256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := NewGenerator(44100, WithSeed(7)).WhiteNoise(1, 256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: noise not deterministic: %v != %v", i, a[i], b[i])
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("index %d: noise outside amplitude bounds: %v", i, a[i])
		}
	}
}

func TestNormalizePeak(t *testing.T) {
	data := []float64{0.1, -0.4, 0.2}

	out, err := Normalize(data, 0.95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(Peak(out)-0.95) > tolerance {
		t.Fatalf("expected peak 0.95, got %v", Peak(out))
	}

	// Relative shape preserved.
	if math.Abs(out[0]/out[2]-0.5) > tolerance {
		t.Fatalf("expected sample ratio preserved, got %v", out[0]/out[2])
	}

	// Input untouched.
	if data[1] != -0.4 {
		t.Fatalf("input mutated: %v", data[1])
	}
}

func TestNormalizeSilentUnchanged(t *testing.T) {
	data := make([]float64, 64)

	out, err := Normalize(data, 0.95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range out {
		if v != 0 {
			t.Fatalf("index %d: silent input must stay exactly zero, got %v", i, v)
		}
	}
}

func TestNormalizeNegativeTarget(t *testing.T) {
	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Fatal("expected error for negative target peak")
	}
}
