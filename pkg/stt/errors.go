package stt

import (
	"context"
	"errors"
)

var (
	// ErrMissingModelDirArg indicates no model directory was given.
	ErrMissingModelDirArg = errors.New("stt: please specify model dir")

	// ErrMissingAudioArg indicates no audio file was given.
	ErrMissingAudioArg = errors.New("stt: please specify an audio file to run STT on")

	// ErrModelDirUnreadable indicates the model directory does not exist or
	// cannot be listed.
	ErrModelDirUnreadable = errors.New("stt: model dir unreadable")

	// ErrEngineLoad indicates the engine refused the graph file.
	ErrEngineLoad = errors.New("stt: engine load failed")

	// ErrEngineScorer indicates the engine refused the scorer file.
	ErrEngineScorer = errors.New("stt: enabling external scorer failed")

	// ErrInference indicates the engine failed during speech to text.
	ErrInference = errors.New("stt: inference failed")

	// ErrAudioOpen indicates the audio file could not be opened.
	ErrAudioOpen = errors.New("stt: audio open failed")

	// ErrAudioDecode indicates the audio samples could not be decoded.
	ErrAudioDecode = errors.New("stt: audio decode failed")

	// ErrUnsupportedChannelLayout indicates the audio is not mono.
	ErrUnsupportedChannelLayout = errors.New("stt: the channel count is required to be one")
)

// Exit codes returned by ExitCode.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitUsage         = 2
	ExitModelDir      = 3
	ExitEngineLoad    = 4
	ExitEngineScorer  = 5
	ExitAudioOpen     = 6
	ExitAudioDecode   = 7
	ExitChannelLayout = 8
	ExitInference     = 9
	ExitInterrupted   = 130
)

var exitCodes = []struct {
	err  error
	code int
}{
	{ErrMissingModelDirArg, ExitUsage},
	{ErrMissingAudioArg, ExitUsage},
	{ErrModelDirUnreadable, ExitModelDir},
	{ErrEngineLoad, ExitEngineLoad},
	{ErrEngineScorer, ExitEngineScorer},
	{ErrAudioOpen, ExitAudioOpen},
	{ErrAudioDecode, ExitAudioDecode},
	{ErrUnsupportedChannelLayout, ExitChannelLayout},
	{ErrInference, ExitInference},
	{context.Canceled, ExitInterrupted},
}

// ExitCode maps err to a process exit status. Each error kind of a run has
// its own code; unclassified errors map to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, e := range exitCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return ExitFailure
}
