// Package detect classifies a voice recording as human or synthetically
// generated from statistical properties of its waveform and spectrum.
//
// No trained model is involved: the pipeline normalizes the signal, slices
// it into overlapping frames, derives spectral descriptors per frame,
// aggregates them across the recording and applies a fixed additive scoring
// rule. The result carries the label, an integer confidence, a short
// explanation and the metrics it was derived from.
package detect
