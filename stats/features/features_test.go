package features

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestRMS(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want float64
	}{
		{"empty", nil, 0},
		{"zeros", make([]float64, 16), 0},
		{"dc", []float64{0.5, 0.5, 0.5, 0.5}, 0.5},
		{"alternating", []float64{1, -1, 1, -1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RMS(tt.data); math.Abs(got-tt.want) > tolerance {
				t.Fatalf("RMS: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRolloffSingleBin(t *testing.T) {
	mag := make([]float64, 1024)
	mag[100] = 3

	// All magnitude in one bin: rolloff is exactly that bin.
	const binWidth = 44100.0 / 2048
	if got := Rolloff(mag, binWidth); math.Abs(got-100*binWidth) > tolerance {
		t.Fatalf("rolloff: got %v, want %v", got, 100*binWidth)
	}
}

func TestRolloffFlatSpectrum(t *testing.T) {
	mag := make([]float64, 1000)
	for i := range mag {
		mag[i] = 1
	}

	// 85% of a flat spectrum accumulates at bin 849 (sum 850 >= 850).
	if got := Rolloff(mag, 1); math.Abs(got-849) > tolerance {
		t.Fatalf("rolloff: got %v, want 849", got)
	}
}

func TestRolloffZeroSpectrum(t *testing.T) {
	if got := Rolloff(make([]float64, 1024), 10); got != 0 {
		t.Fatalf("rolloff of silent spectrum: got %v, want 0", got)
	}
}

func TestCentroidSingleBin(t *testing.T) {
	mag := make([]float64, 1024)
	mag[200] = 5

	// Denominator epsilon pulls the value fractionally below the exact bin
	// frequency; it must stay within a tenth of a bin here.
	const binWidth = 21.533203125
	got := Centroid(mag, binWidth)
	want := 200 * binWidth
	if math.Abs(got-want) > binWidth/10 {
		t.Fatalf("centroid: got %v, want ~%v", got, want)
	}
	if got >= want {
		t.Fatalf("centroid epsilon should bias low: got %v, want < %v", got, want)
	}
}

func TestCentroidZeroSpectrum(t *testing.T) {
	// The fixed epsilon denominator makes silent spectra well-defined.
	if got := Centroid(make([]float64, 1024), 10); got != 0 {
		t.Fatalf("centroid of silent spectrum: got %v, want 0", got)
	}
}

func TestFlatnessBounds(t *testing.T) {
	flat := make([]float64, 512)
	for i := range flat {
		flat[i] = 0.25
	}

	// Identical bins: geometric mean equals arithmetic mean.
	if got := Flatness(flat); math.Abs(got-1) > 1e-6 {
		t.Fatalf("flatness of flat spectrum: got %v, want ~1", got)
	}

	tonal := make([]float64, 512)
	tonal[10] = 1
	if got := Flatness(tonal); got > 0.01 {
		t.Fatalf("flatness of tonal spectrum: got %v, want ~0", got)
	}

	if got := Flatness(nil); got != 0 {
		t.Fatalf("flatness of empty spectrum: got %v, want 0", got)
	}
}

func TestExtractGating(t *testing.T) {
	mag := make([]float64, 1024)
	mag[50] = 1

	gated := Extract(0.005, mag, 21.5)
	if gated.Voiced {
		t.Fatal("frame below voicing gate must be unvoiced")
	}
	if gated.RMS != 0.005 {
		t.Fatalf("unvoiced frame must keep RMS: got %v", gated.RMS)
	}
	if gated.RolloffHz != 0 || gated.CentroidHz != 0 || gated.Flatness != 0 {
		t.Fatal("unvoiced frame must not carry spectral descriptors")
	}

	voiced := Extract(0.5, mag, 21.5)
	if !voiced.Voiced {
		t.Fatal("frame above voicing gate must be voiced")
	}
	if voiced.RolloffHz == 0 || voiced.Flatness == 0 {
		t.Fatal("voiced frame must carry spectral descriptors")
	}
}

func TestExtractGateBoundary(t *testing.T) {
	// The gate is strict: rms must exceed 0.01, not merely reach it.
	if f := Extract(VoicingGate, []float64{1}, 1); f.Voiced {
		t.Fatal("rms equal to the gate must stay unvoiced")
	}
}
