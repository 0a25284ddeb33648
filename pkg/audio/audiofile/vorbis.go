package audiofile

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

type vorbisFile struct {
	r    io.Reader
	dec  *oggvorbis.Reader
	desc Descriptor

	buf []float32
	pos int
	n   int
	err error
}

func newVorbis(rs io.ReadSeeker) (*vorbisFile, error) {
	dec, err := oggvorbis.NewReader(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: ogg vorbis header: %w", ErrOpen, err)
	}
	if dec.Channels() <= 0 || dec.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: ogg vorbis header: invalid identification", ErrOpen)
	}
	return &vorbisFile{
		r:   rs,
		dec: dec,
		desc: Descriptor{
			Channels:   dec.Channels(),
			SampleRate: dec.SampleRate(),
			BitDepth:   32,
			Container:  ContainerVorbis,
		},
		buf: make([]float32, 4096*dec.Channels()),
	}, nil
}

func (v *vorbisFile) Descriptor() Descriptor {
	return v.desc
}

func (v *vorbisFile) Samples() Source {
	return v
}

func (v *vorbisFile) Next() (int16, error) {
	for v.pos >= v.n {
		if v.err != nil {
			return 0, v.err
		}
		n, err := v.dec.Read(v.buf)
		v.pos, v.n = 0, n
		if err == io.EOF {
			v.err = io.EOF
		} else if err != nil {
			v.err = fmt.Errorf("%w: ogg vorbis: %w", ErrDecode, err)
		}
	}
	s := v.buf[v.pos]
	v.pos++
	return floatToInt16(s), nil
}

func (v *vorbisFile) Close() error {
	return closer(v.r)
}
