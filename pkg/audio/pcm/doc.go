// Package pcm provides types and utilities for working with PCM (Pulse Code Modulation) audio data.
//
// The package defines the 16 kHz 16-bit mono format the recognition engine
// consumes and a Buffer type holding decoded samples in memory.
//
// Key types:
//   - Format: Represents audio format (sample rate, channels, bit depth)
//   - Buffer: Mono signed 16-bit samples, as consumed by the recognition engine
//
// Example usage:
//
//	// The engine's input format
//	format := pcm.Target
//
//	// Length of a decoded buffer in seconds
//	secs := buf.Seconds(format)
//
//	// Playback duration
//	d := buf.Duration(format)
package pcm
