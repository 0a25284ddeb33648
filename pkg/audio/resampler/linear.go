package resampler

import (
	"io"

	"github.com/haivivi/deepspeech-go/pkg/audio/pcm"
)

// Linear is a two-tap linear interpolation kernel. Both taps start at zero, so
// the sample preceding the first input is silence.
type Linear struct {
	left  int16
	right int16
}

// Push shifts s in as the new right tap.
func (l *Linear) Push(s int16) {
	l.left, l.right = l.right, s
}

// Interpolate returns the value at fraction alpha (0 <= alpha < 1) of the way
// from the left tap to the right tap, truncated toward zero. Since the result
// lies between two int16 values it never leaves the int16 range.
func (l *Linear) Interpolate(alpha float64) int16 {
	left := float64(l.left)
	return int16(left + (float64(l.right)-left)*alpha)
}

// Converter resamples a Source with a Linear kernel. Output sample j is the
// input signal at time j*from/to, tracked as an exact rational so that long
// inputs do not drift. The Converter stops at the first output time past the
// last input sample.
type Converter struct {
	src    Source
	from   int64
	to     int64
	kernel Linear

	// number of input samples pushed into kernel
	pushed    int64
	next      int64
	exhausted bool
	err       error
}

// NewConverter returns a Converter reading src at from Hz and producing
// samples at to Hz.
func NewConverter(src Source, from, to int) (*Converter, error) {
	if err := (Format{SampleRate: from}).validate(); err != nil {
		return nil, err
	}
	if err := (Format{SampleRate: to}).validate(); err != nil {
		return nil, err
	}
	return &Converter{
		src:  src,
		from: int64(from),
		to:   int64(to),
	}, nil
}

// Next returns the next output sample, io.EOF when the input is exhausted, or
// the error returned by the source.
func (c *Converter) Next() (int16, error) {
	if c.err != nil {
		return 0, c.err
	}

	pos := c.next * c.from
	k, rem := pos/c.to, pos%c.to

	// Fill the kernel so that left = x[k] and right = x[k+1].
	for c.pushed < k+2 && !c.exhausted {
		s, err := c.src.Next()
		if err == io.EOF {
			c.exhausted = true
			break
		}
		if err != nil {
			c.err = err
			return 0, err
		}
		c.kernel.Push(s)
		c.pushed++
	}

	var out int16
	switch {
	case c.pushed == k+2:
		out = c.kernel.Interpolate(float64(rem) / float64(c.to))
	case c.pushed == k+1 && rem == 0:
		// t lands exactly on the last input sample
		out = c.kernel.right
	default:
		c.err = io.EOF
		return 0, io.EOF
	}
	c.next++
	return out, nil
}

// OutputLen returns the number of samples a Converter produces for n input
// samples.
func OutputLen(n int64, from, to int) int64 {
	if n <= 0 {
		return 0
	}
	return (n-1)*int64(to)/int64(from) + 1
}

// Resample drains src and returns it at the to rate. When from equals to the
// samples are forwarded unchanged.
func Resample(src Source, from, to int, q Quality) (pcm.Buffer, error) {
	if from == to {
		return Collect(src)
	}
	switch q {
	case QualityLinear, "":
		conv, err := NewConverter(src, from, to)
		if err != nil {
			return nil, err
		}
		return Collect(conv)
	case QualityHigh:
		return resampleHigh(src, from, to)
	}
	return nil, ErrUnknownQuality
}
