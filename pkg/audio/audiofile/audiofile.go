package audiofile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

var (
	// ErrOpen indicates the file could not be opened or its header is not a
	// supported container.
	ErrOpen = errors.New("audiofile: open failed")

	// ErrDecode indicates the sample data could not be decoded to 16-bit PCM.
	ErrDecode = errors.New("audiofile: decode failed")
)

// Container names reported in Descriptor.Container.
const (
	ContainerWAV    = "wav"
	ContainerFLAC   = "flac"
	ContainerVorbis = "vorbis"
)

// Descriptor describes the audio stream of a file.
type Descriptor struct {
	// Channels is the number of interleaved channels.
	Channels int `json:"channels" yaml:"channels"`

	// SampleRate is the sample rate in Hz.
	SampleRate int `json:"sample_rate" yaml:"sample_rate"`

	// BitDepth is the stored sample width before coercion to 16 bits; 32
	// for float streams.
	BitDepth int `json:"bit_depth" yaml:"bit_depth"`

	// Container is one of the Container* constants.
	Container string `json:"container" yaml:"container"`
}

// Source yields samples in presentation order and io.EOF after the last one.
type Source interface {
	Next() (int16, error)
}

// File is an opened audio file.
type File interface {
	// Descriptor returns the stream description read from the header.
	Descriptor() Descriptor

	// Samples returns the sample stream. It is single-pass; every call
	// returns the same Source.
	Samples() Source

	// Close releases the underlying file.
	Close() error
}

// OpenFunc opens an audio file by path.
type OpenFunc func(path string) (File, error)

// Open opens the audio file at path. The container is detected from the
// leading bytes, not the extension.
func Open(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	file, err := NewFile(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return file, nil
}

// NewFile reads the container header from rs. If rs is an io.Closer it is
// closed by File.Close.
func NewFile(rs io.ReadSeeker) (File, error) {
	var magic [12]byte
	n, err := io.ReadFull(rs, magic[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	switch sniff(magic[:n]) {
	case ContainerWAV:
		return newWAV(rs)
	case ContainerFLAC:
		return newFLAC(rs)
	case ContainerVorbis:
		return newVorbis(rs)
	}
	return nil, fmt.Errorf("%w: unrecognized container", ErrOpen)
}

func sniff(magic []byte) string {
	switch {
	case len(magic) >= 12 && bytes.Equal(magic[0:4], []byte("RIFF")) && bytes.Equal(magic[8:12], []byte("WAVE")):
		return ContainerWAV
	case bytes.HasPrefix(magic, []byte("fLaC")):
		return ContainerFLAC
	case bytes.HasPrefix(magic, []byte("OggS")):
		return ContainerVorbis
	}
	return ""
}

// closer closes c if it implements io.Closer.
func closer(c any) error {
	if cl, ok := c.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// signedToInt16 keeps the most significant 16 bits of a signed sample that
// is bits wide.
func signedToInt16(v int32, bits int) int16 {
	switch {
	case bits > 16:
		return int16(v >> (bits - 16))
	case bits < 16:
		return int16(v << (16 - bits))
	}
	return int16(v)
}

// unsigned8ToInt16 recentres an unsigned 8-bit sample.
func unsigned8ToInt16(v int32) int16 {
	return int16((v - 128) << 8)
}

// floatToInt16 scales f by 2^15 and truncates toward zero, saturating at the
// int16 bounds. NaN maps to zero.
func floatToInt16(f float32) int16 {
	v := float64(f) * 32768
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}
