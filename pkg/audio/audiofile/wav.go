package audiofile

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavFormatPCM        = 1
	wavFormatFloat      = 3
	wavFormatExtensible = 0xFFFE
)

type wavFile struct {
	rs   io.ReadSeeker
	dec  *wav.Decoder
	desc Descriptor
	// IEEE float samples; PCMBuffer hands back their raw bits as int32
	float bool

	buf *audio.IntBuffer
	pos int
	n   int
	err error
}

func newWAV(rs io.ReadSeeker) (*wavFile, error) {
	dec := wav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: wav header: %w", ErrOpen, err)
	}
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, fmt.Errorf("%w: wav header: missing fmt chunk", ErrOpen)
	}
	switch dec.WavAudioFormat {
	case wavFormatPCM, wavFormatExtensible:
	case wavFormatFloat:
		if dec.BitDepth != 32 {
			return nil, fmt.Errorf("%w: %d-bit float wav is not supported", ErrOpen, dec.BitDepth)
		}
	default:
		return nil, fmt.Errorf("%w: wav format %d is not supported", ErrOpen, dec.WavAudioFormat)
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: wav: %w", ErrOpen, err)
	}
	if dec.PCMChunk == nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, wav.ErrPCMChunkNotFound)
	}

	return &wavFile{
		rs:  rs,
		dec: dec,
		desc: Descriptor{
			Channels:   int(dec.NumChans),
			SampleRate: int(dec.SampleRate),
			BitDepth:   int(dec.BitDepth),
			Container:  ContainerWAV,
		},
		float: dec.WavAudioFormat == wavFormatFloat,
		buf:   &audio.IntBuffer{Data: make([]int, 4096)},
	}, nil
}

func (w *wavFile) Descriptor() Descriptor {
	return w.desc
}

func (w *wavFile) Samples() Source {
	return w
}

func (w *wavFile) Next() (int16, error) {
	if w.pos >= w.n {
		if w.err != nil {
			return 0, w.err
		}
		if err := w.fill(); err != nil {
			w.err = err
			return 0, err
		}
	}
	v := w.buf.Data[w.pos]
	w.pos++

	if w.float {
		return floatToInt16(math.Float32frombits(uint32(int32(v)))), nil
	}
	switch w.desc.BitDepth {
	case 8:
		return unsigned8ToInt16(int32(v)), nil
	case 16, 24, 32:
		return signedToInt16(int32(v), w.desc.BitDepth), nil
	}
	w.err = fmt.Errorf("%w: unsupported wav bit depth %d", ErrDecode, w.desc.BitDepth)
	return 0, w.err
}

func (w *wavFile) fill() error {
	switch w.desc.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: unsupported wav bit depth %d", ErrDecode, w.desc.BitDepth)
	}
	n, err := w.dec.PCMBuffer(w.buf)
	if err != nil {
		return fmt.Errorf("%w: wav: %w", ErrDecode, err)
	}
	if n <= 0 {
		return io.EOF
	}
	w.pos, w.n = 0, n
	return nil
}

func (w *wavFile) Close() error {
	return closer(w.rs)
}
