// Package decode turns encoded audio bytes into single-channel PCM samples.
//
// It is the external boundary of the analysis pipeline: WAV input only,
// first channel only, native sample rate kept as-is. Decoding failures are
// fatal to one analysis and wrap [ErrDecode].
package decode
