// Package spectral turns time-domain analysis frames into one-sided magnitude
// spectra via Hann windowing and a fixed-size radix-2 FFT.
package spectral
