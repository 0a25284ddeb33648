package deepspeech

// For go build: libdeepspeech ships without a pkg-config file; point
// CGO_CFLAGS and CGO_LDFLAGS at the native_client directory.

/*
#cgo LDFLAGS: -ldeepspeech
#include <stdlib.h>
#include <deepspeech.h>
*/
import "C"
import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/haivivi/deepspeech-go/pkg/stt"
)

const dsOK = C.int(C.DS_ERR_OK)

var _ stt.Model = (*Model)(nil)

// ErrClosed is returned by methods called on a closed Model.
var ErrClosed = errors.New("deepspeech: model is closed")

// Error is a non-zero status returned by libdeepspeech.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("deepspeech: %s (0x%04x)", e.Message, e.Code)
}

func newError(code C.int) error {
	msg := C.DS_ErrorCodeToErrorMessage(code)
	defer C.DS_FreeString(msg)
	return &Error{Code: int(code), Message: C.GoString(msg)}
}

// Model wraps a DeepSpeech ModelState. It is not safe for concurrent use.
type Model struct {
	state *C.ModelState
}

// New loads the acoustic graph at path.
func New(path string) (*Model, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var state *C.ModelState
	if code := C.DS_CreateModel(cPath, &state); code != dsOK {
		return nil, newError(code)
	}
	return &Model{state: state}, nil
}

// EnableExternalScorer attaches the scorer at path.
func (m *Model) EnableExternalScorer(path string) error {
	if m.state == nil {
		return ErrClosed
	}
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	if code := C.DS_EnableExternalScorer(m.state, cPath); code != dsOK {
		return newError(code)
	}
	return nil
}

// SetBeamWidth sets the CTC decoder beam width.
func (m *Model) SetBeamWidth(width int) error {
	if m.state == nil {
		return ErrClosed
	}
	if code := C.DS_SetModelBeamWidth(m.state, C.uint(width)); code != dsOK {
		return newError(code)
	}
	return nil
}

// SpeechToText runs inference over mono 16-bit samples at SampleRate and
// returns the transcript. It blocks until inference completes.
func (m *Model) SpeechToText(buf []int16) (string, error) {
	if m.state == nil {
		return "", ErrClosed
	}
	var ptr *C.short
	if len(buf) > 0 {
		ptr = (*C.short)(unsafe.Pointer(&buf[0]))
	}
	text := C.DS_SpeechToText(m.state, ptr, C.uint(len(buf)))
	if text == nil {
		return "", errors.New("deepspeech: speech to text returned no result")
	}
	defer C.DS_FreeString(text)
	return C.GoString(text), nil
}

// SampleRate returns the sample rate the model expects.
func (m *Model) SampleRate() int {
	if m.state == nil {
		return 0
	}
	return int(C.DS_GetModelSampleRate(m.state))
}

// Close frees the model. It is safe to call more than once.
func (m *Model) Close() error {
	if m.state != nil {
		C.DS_FreeModel(m.state)
		m.state = nil
	}
	return nil
}

// Version returns the libdeepspeech version string.
func Version() string {
	v := C.DS_Version()
	defer C.DS_FreeString(v)
	return C.GoString(v)
}
