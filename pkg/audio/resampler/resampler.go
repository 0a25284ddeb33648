package resampler

import (
	"errors"
	"fmt"
	"io"
	"sync"

	resampling "github.com/tphakala/go-audio-resampling"

	"github.com/haivivi/deepspeech-go/pkg/audio/pcm"
)

// Quality selects the resampling kernel.
type Quality string

const (
	// QualityLinear interpolates linearly between adjacent samples. This is
	// the default and the kernel the reference transcripts are produced with.
	QualityLinear Quality = "linear"

	// QualityHigh uses a band-limited polyphase kernel. Output is clipped to
	// the int16 range.
	QualityHigh Quality = "high"
)

// ErrUnknownQuality is returned for a Quality that names no kernel.
var ErrUnknownQuality = errors.New("resampler: unknown quality")

// ParseQuality parses a kernel name. The empty string selects QualityLinear.
func ParseQuality(s string) (Quality, error) {
	switch Quality(s) {
	case "", QualityLinear:
		return QualityLinear, nil
	case QualityHigh:
		return QualityHigh, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQuality, s)
}

// Resampler wraps an io.Reader and resamples audio from srcFmt to dstFmt.
// The resampler must be closed with Close() to release resources.
type Resampler interface {
	io.ReadCloser
	CloseWithError(error) error
}

// Polyphase wraps an io.Reader of little-endian mono samples and resamples it
// with a pure Go band-limited resampler (no CGO/FFI dependencies).
type Polyphase struct {
	srcFmt Format
	src    io.Reader

	dstFmt  Format
	readBuf []byte

	mu            sync.Mutex
	closeErr      error
	resampler     resampling.Resampler
	leftover      []byte
	needsResample bool
	flushed       bool
}

// New creates a new Resampler that resamples audio from srcFmt to dstFmt
// using the high quality kernel. Both formats are mono 16-bit signed integer.
func New(src io.Reader, srcFmt, dstFmt Format) (Resampler, error) {
	if err := srcFmt.validate(); err != nil {
		return nil, err
	}
	if err := dstFmt.validate(); err != nil {
		return nil, err
	}
	needsResample := srcFmt.SampleRate != dstFmt.SampleRate

	var resampler resampling.Resampler
	if needsResample {
		config := &resampling.Config{
			InputRate:  float64(srcFmt.SampleRate),
			OutputRate: float64(dstFmt.SampleRate),
			Channels:   dstFmt.channels(),
			Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
		}
		var err error
		resampler, err = resampling.New(config)
		if err != nil {
			return nil, fmt.Errorf("failed to create resampler: %w", err)
		}
	}

	return &Polyphase{
		srcFmt: srcFmt,
		src:    src,

		dstFmt: dstFmt,

		resampler:     resampler,
		needsResample: needsResample,
	}, nil
}

// Read copies resampled audio data into p. It returns the number of bytes
// written and any encountered error. This method is not safe for concurrent
// use.
func (r *Polyphase) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if len(p) < r.dstFmt.sampleBytes() {
		return 0, io.ErrShortBuffer
	}

	// Truncate p to a multiple of sampleBytes
	p = p[:len(p)/r.dstFmt.sampleBytes()*r.dstFmt.sampleBytes()]

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.leftover) > 0 {
		n := copy(p, r.leftover)
		r.leftover = r.leftover[n:]
		return n, nil
	}

	if r.closeErr != nil {
		return 0, r.closeErr
	}

	if !r.needsResample {
		return r.src.Read(p)
	}
	return r.readAndProcess(p)
}

// readAndProcess reads from source and processes through resampler.
func (r *Polyphase) readAndProcess(p []byte) (int, error) {
	// Estimate how much source data we need based on ratio
	ratio := float64(r.srcFmt.SampleRate) / float64(r.dstFmt.SampleRate)
	srcBytesNeeded := int(float64(len(p))*ratio) + r.srcFmt.sampleBytes()*4
	srcBytesNeeded -= srcBytesNeeded % r.srcFmt.sampleBytes()

	if cap(r.readBuf) < srcBytesNeeded {
		r.readBuf = make([]byte, srcBytesNeeded)
	}

	bytesRead, readErr := io.ReadFull(r.src, r.readBuf[:srcBytesNeeded])
	if readErr == io.ErrUnexpectedEOF {
		readErr = io.EOF
	}
	bytesRead -= bytesRead % r.srcFmt.sampleBytes()
	if bytesRead == 0 && readErr == nil {
		readErr = io.EOF
	}

	var output []float64
	if bytesRead > 0 {
		// Convert bytes to float64 samples (normalized to -1.0 to 1.0)
		numFrames := bytesRead / 2
		input := make([]float64, numFrames)
		for i := range numFrames {
			sample := int16(r.readBuf[i*2]) | int16(r.readBuf[i*2+1])<<8
			input[i] = float64(sample) / 32768.0
		}

		var err error
		output, err = r.resampler.Process(input)
		if err != nil {
			return 0, fmt.Errorf("resample error: %w", err)
		}
	}

	// The filter holds back its last samples until flushed.
	if readErr == io.EOF && !r.flushed {
		r.flushed = true
		tail, err := r.resampler.Flush()
		if err != nil {
			return 0, fmt.Errorf("resample flush error: %w", err)
		}
		output = append(output, tail...)
	}

	if len(output) == 0 {
		return 0, readErr
	}

	outputBytes := make([]byte, len(output)*2)
	for i, s := range output {
		sample := saturate(s)
		outputBytes[i*2] = byte(sample)
		outputBytes[i*2+1] = byte(sample >> 8)
	}

	n := copy(p, outputBytes)
	if len(outputBytes) > n {
		r.leftover = append(r.leftover, outputBytes[n:]...)
	}

	if readErr != nil && len(r.leftover) > 0 {
		// Keep EOF back until the leftover has been drained.
		return n, nil
	}
	return n, readErr
}

// Close releases resources and marks the resampler as closed.
// Subsequent Read calls will return io.ErrClosedPipe.
func (r *Polyphase) Close() error {
	return r.CloseWithError(fmt.Errorf("resampler: %w", io.ErrClosedPipe))
}

// CloseWithError releases resources with a custom error. Subsequent
// Read calls will return the provided error.
func (r *Polyphase) CloseWithError(err error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closeErr == nil {
		r.closeErr = err
	}
	r.resampler = nil
	r.leftover = nil
	return nil
}

// saturate maps a normalized sample to int16, clipping values outside
// [-1.0, 1.0].
func saturate(s float64) int16 {
	switch {
	case s >= 1.0:
		return 32767
	case s <= -1.0:
		return -32768
	}
	return int16(s * 32767.0)
}

// resampleHigh drains src through a Polyphase resampler.
func resampleHigh(src Source, from, to int) (pcm.Buffer, error) {
	r, err := New(NewSourceReader(src), Format{SampleRate: from}, Format{SampleRate: to})
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Collect(NewByteSource(r))
}
