package stt

// Loader loads an acoustic graph into a recognition engine.
type Loader interface {
	Load(graphPath string) (Model, error)
}

// LoaderFunc is an adapter to allow the use of ordinary functions as Loaders.
type LoaderFunc func(graphPath string) (Model, error)

// Load calls f.
func (f LoaderFunc) Load(graphPath string) (Model, error) {
	return f(graphPath)
}

// Model is a loaded recognition engine.
type Model interface {
	// EnableExternalScorer attaches a language model scorer.
	EnableExternalScorer(scorerPath string) error

	// SpeechToText transcribes mono 16-bit samples at SampleRate. The call
	// blocks until inference completes.
	SpeechToText(buf []int16) (string, error)

	// SampleRate returns the sample rate the model was trained on.
	SampleRate() int

	// Close releases the engine.
	Close() error
}
