package resampler

import "fmt"

// Format describes the audio format for resampling. Only mono 16-bit signed
// integer samples are supported.
type Format struct {
	// SampleRate is the sample rate in Hz (e.g., 44100, 48000).
	SampleRate int
}

func (f Format) channels() int {
	return 1
}

func (f Format) sampleBytes() int {
	return 2
}

func (f Format) validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRate, f.SampleRate)
	}
	return nil
}
