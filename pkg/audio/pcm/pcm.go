package pcm

import (
	"fmt"
	"time"
)

const (
	// L16Mono16K represents audio/L16; rate=16000; channels=1
	L16Mono16K Format = iota
)

// Target is the format the recognition engine consumes. The acoustic models
// are trained on 16 kHz mono audio, so this is not configurable.
const Target = L16Mono16K

// Format represents an audio format configuration.
type Format int

// SampleRate returns the sample rate in Hz for this format.
func (f Format) SampleRate() int {
	switch f {
	case L16Mono16K:
		return 16000
	}
	panic("pcm: invalid audio type")
}

// Channels returns the number of audio channels for this format.
func (f Format) Channels() int {
	switch f {
	case L16Mono16K:
		return 1
	}
	panic("pcm: invalid audio type")
}

// Depth returns the bit depth for this format.
func (f Format) Depth() int {
	switch f {
	case L16Mono16K:
		return 16
	}
	panic("pcm: invalid audio type")
}

// Samples returns the number of samples in the given number of bytes.
func (f Format) Samples(bytes int64) int64 {
	return bytes * 8 / int64(f.Channels()) / int64(f.Depth())
}

// Duration returns the duration of the given number of bytes.
func (f Format) Duration(bytes int64) time.Duration {
	return time.Duration(f.Samples(bytes)) * time.Second / time.Duration(f.SampleRate())
}

// String returns a human-readable string representation of the format.
func (f Format) String() string {
	switch f {
	case L16Mono16K:
		return fmt.Sprintf("audio/L16; rate=%d; channels=1", f.SampleRate())
	}
	panic("pcm: invalid audio type")
}

// Buffer is a mono sequence of signed 16-bit samples held fully in memory.
type Buffer []int16

// Seconds returns the length of the buffer in seconds when played back in
// format f.
func (b Buffer) Seconds(f Format) float64 {
	return float64(len(b)) / float64(f.SampleRate())
}

// Duration returns the playback duration of the buffer in format f.
func (b Buffer) Duration(f Format) time.Duration {
	return f.Duration(int64(len(b)) * 2)
}
