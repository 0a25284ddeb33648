// Package main provides the DeepSpeech transcription CLI.
//
// Usage:
//
//	deepspeech [flags] <model_dir> <audio_file>
//
// The model directory must hold a graph (.pb, .pbmm or .tflite) and may hold
// an external scorer (.scorer). The audio file must be mono WAV, FLAC or Ogg
// Vorbis; it is resampled to 16 kHz before inference.
//
// Configuration:
//
//	Defaults are read from ~/.giztoy/deepspeech/config.yaml when present.
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/deepspeech-go/cmd/deepspeech/commands"
	"github.com/haivivi/deepspeech-go/pkg/deepspeech"
	"github.com/haivivi/deepspeech-go/pkg/stt"
)

func main() {
	b := commands.Backend{
		Open: func(graph string) (commands.Engine, error) {
			m, err := deepspeech.New(graph)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
		Version: deepspeech.Version,
	}
	if err := commands.Execute(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(stt.ExitCode(err))
	}
}
