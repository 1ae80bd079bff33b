// Package frame slices a signal into fixed-size overlapping analysis frames.
package frame
