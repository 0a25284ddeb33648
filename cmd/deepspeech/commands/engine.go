package commands

import (
	"log/slog"

	"github.com/haivivi/deepspeech-go/pkg/stt"
)

// Engine is a loaded model whose decoder can be tuned.
type Engine interface {
	stt.Model
	SetBeamWidth(width int) error
}

// Backend opens engines. The binary supplies the libdeepspeech one; tests
// supply fakes so the command builds without cgo.
type Backend struct {
	Open    func(graph string) (Engine, error)
	Version func() string
}

var backend Backend

// engineLoader adapts open to stt.Loader, setting the beam width when it is
// positive. A nil open yields a nil Loader.
func engineLoader(open func(string) (Engine, error), width int) stt.Loader {
	if open == nil {
		return nil
	}
	return stt.LoaderFunc(func(path string) (stt.Model, error) {
		m, err := open(path)
		if err != nil {
			return nil, err
		}
		if width <= 0 {
			return m, nil
		}
		if err := m.SetBeamWidth(width); err != nil {
			m.Close()
			return nil, err
		}
		slog.Debug("beam width set", "width", width)
		return m, nil
	})
}
