// Package stt runs offline speech-to-text over a single audio file.
//
// A run discovers the model artefacts in a directory (Discover), loads them
// into a recognition engine through the Loader seam, reads and resamples the
// audio to 16 kHz mono, and hands the buffer to the engine in one call.
// Progress and the transcript are written to an io.Writer as plain lines:
//
//	Using external scorer `models/kenlm.scorer`
//	Model initialized in 812.4ms.
//	Decoding done in 3.1ms. Sample length 2.5s. Running STT.
//	STT done in 1.2s. Real time factor 0.48000
//	hello world
//
// The engine is consumed through the Loader and Model interfaces only, so the
// package does not depend on any native library. See the deepspeech package
// for the libdeepspeech binding.
package stt
