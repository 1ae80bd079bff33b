// Package fft implements a recursive radix-2 Cooley-Tukey transform on
// separate real and imaginary slices.
//
// The implementation is fixed to power-of-two lengths. The
// analysis pipeline depends on the exact bin spacing of a 2048-point
// transform, so a general-purpose mixed-radix backend is not used here;
// [github.com/MeKo-Christian/algo-fft] serves only as a reference
// implementation in the tests.
package fft
