// Package resampler converts mono 16-bit PCM between sample rates.
//
// The default kernel is linear interpolation between adjacent samples, driven
// by a pull-mode Converter: a Source yields input samples, a Linear kernel
// holds the two neighbouring taps, and the Converter emits output samples at
// the target rate until the input is exhausted. The output for sample j is the
// input signal evaluated at time j*from/to (in input samples), so the first
// output equals the first input and the output length is
// floor((n-1)*to/from)+1 for n >= 1 input samples.
//
// A higher quality kernel backed by github.com/tphakala/go-audio-resampling is
// available as QualityHigh. It produces different samples and must be
// requested explicitly.
//
// Example usage:
//
//	buf, err := resampler.Resample(src, 44100, 16000, resampler.QualityLinear)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Byte-oriented callers can use New, which wraps an io.Reader of little-endian
// samples:
//
//	r, err := resampler.New(audioReader, resampler.Format{SampleRate: 44100}, resampler.Format{SampleRate: 16000})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	io.Copy(output, r)
package resampler
