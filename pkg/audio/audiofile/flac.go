package audiofile

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

type flacFile struct {
	r      io.Reader
	stream *flac.Stream
	desc   Descriptor

	frame *frame.Frame
	// index of the next interleaved sample within frame
	pos int
	err error
}

func newFLAC(rs io.ReadSeeker) (*flacFile, error) {
	stream, err := flac.New(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: flac header: %w", ErrOpen, err)
	}
	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		return nil, fmt.Errorf("%w: flac header: invalid stream info", ErrOpen)
	}
	return &flacFile{
		r:      rs,
		stream: stream,
		desc: Descriptor{
			Channels:   int(info.NChannels),
			SampleRate: int(info.SampleRate),
			BitDepth:   int(info.BitsPerSample),
			Container:  ContainerFLAC,
		},
	}, nil
}

func (f *flacFile) Descriptor() Descriptor {
	return f.desc
}

func (f *flacFile) Samples() Source {
	return f
}

func (f *flacFile) Next() (int16, error) {
	if f.err != nil {
		return 0, f.err
	}
	for f.frame == nil || f.pos >= f.frameLen() {
		fr, err := f.stream.ParseNext()
		if err != nil {
			if err == io.EOF {
				f.err = io.EOF
			} else {
				f.err = fmt.Errorf("%w: flac frame: %w", ErrDecode, err)
			}
			return 0, f.err
		}
		if len(fr.Subframes) != f.desc.Channels {
			f.err = fmt.Errorf("%w: flac frame has %d channels, stream has %d", ErrDecode, len(fr.Subframes), f.desc.Channels)
			return 0, f.err
		}
		f.frame, f.pos = fr, 0
	}

	ch := f.pos % f.desc.Channels
	i := f.pos / f.desc.Channels
	f.pos++
	return signedToInt16(f.frame.Subframes[ch].Samples[i], f.desc.BitDepth), nil
}

// frameLen returns the number of interleaved samples in the current frame.
func (f *flacFile) frameLen() int {
	return len(f.frame.Subframes[0].Samples) * f.desc.Channels
}

func (f *flacFile) Close() error {
	return closer(f.r)
}
