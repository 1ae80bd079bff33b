// Package features derives per-frame scalar descriptors (RMS, spectral
// rolloff, centroid, flatness) from an analysis frame and its magnitude
// spectrum, applying the RMS voicing gate.
package features
