// Package signal provides deterministic signal generation and peak
// normalization for the analysis pipeline.
package signal
