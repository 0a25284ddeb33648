package resampler

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/haivivi/deepspeech-go/pkg/audio/pcm"
)

// ErrInvalidRate is returned for a sample rate that is not positive.
var ErrInvalidRate = errors.New("resampler: invalid sample rate")

// Source yields mono samples in presentation order. Next returns io.EOF after
// the last sample. Any other error ends the stream.
type Source interface {
	Next() (int16, error)
}

// SourceFunc is an adapter to allow the use of ordinary functions as Sources.
type SourceFunc func() (int16, error)

// Next calls f.
func (f SourceFunc) Next() (int16, error) {
	return f()
}

// SliceSource is a Source over an in-memory slice.
type SliceSource struct {
	samples []int16
	pos     int
}

// NewSliceSource returns a Source yielding samples in order.
func NewSliceSource(samples []int16) *SliceSource {
	return &SliceSource{samples: samples}
}

// Next returns the next sample or io.EOF.
func (s *SliceSource) Next() (int16, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}
	v := s.samples[s.pos]
	s.pos++
	return v, nil
}

// Collect drains src into a Buffer. On any error other than io.EOF the
// partial buffer is discarded and the error is returned.
func Collect(src Source) (pcm.Buffer, error) {
	var buf pcm.Buffer
	for {
		s, err := src.Next()
		if err != nil {
			if err == io.EOF {
				return buf, nil
			}
			return nil, err
		}
		buf = append(buf, s)
	}
}

// byteSource decodes little-endian audio/L16 bytes from an io.Reader. Short
// reads are buffered until a whole sample is available.
type byteSource struct {
	r   io.Reader
	buf []byte
	pos int
	end int
	err error
}

// NewByteSource returns a Source decoding little-endian 16-bit samples from r.
// A stream ending in the middle of a sample yields io.ErrUnexpectedEOF.
func NewByteSource(r io.Reader) Source {
	return &byteSource{r: r, buf: make([]byte, 4096)}
}

func (s *byteSource) Next() (int16, error) {
	for s.end-s.pos < 2 {
		if s.err != nil {
			if s.err == io.EOF && s.end > s.pos {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, s.err
		}
		// keep the unaligned remainder at the front
		n := copy(s.buf, s.buf[s.pos:s.end])
		s.pos, s.end = 0, n
		rn, err := s.r.Read(s.buf[s.end:])
		s.end += rn
		if err != nil {
			s.err = err
		}
	}
	v := int16(binary.LittleEndian.Uint16(s.buf[s.pos:]))
	s.pos += 2
	return v, nil
}

// sourceReader encodes a Source as little-endian audio/L16 bytes.
type sourceReader struct {
	src Source
	err error
}

// NewSourceReader returns an io.Reader producing the samples of src as
// little-endian 16-bit bytes. Reads are always a multiple of two bytes.
func NewSourceReader(src Source) io.Reader {
	return &sourceReader{src: src}
}

func (r *sourceReader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(p) < 2 {
		return 0, io.ErrShortBuffer
	}
	n := 0
	for n+2 <= len(p) {
		s, err := r.src.Next()
		if err != nil {
			r.err = err
			break
		}
		binary.LittleEndian.PutUint16(p[n:], uint16(s))
		n += 2
	}
	if n > 0 {
		return n, nil
	}
	return 0, r.err
}
