// Package aggregate reduces per-frame descriptors and a raw-sample scan into
// the recording-level statistics consumed by the classifier.
package aggregate
