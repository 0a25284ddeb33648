package stt

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.New("other"), ExitFailure},
		{ErrMissingModelDirArg, ExitUsage},
		{ErrMissingAudioArg, ExitUsage},
		{fmt.Errorf("%w: x", ErrModelDirUnreadable), ExitModelDir},
		{fmt.Errorf("%w: x", ErrEngineLoad), ExitEngineLoad},
		{fmt.Errorf("%w: x", ErrEngineScorer), ExitEngineScorer},
		{fmt.Errorf("%w: x", ErrAudioOpen), ExitAudioOpen},
		{fmt.Errorf("%w: x", ErrAudioDecode), ExitAudioDecode},
		{fmt.Errorf("%w, got 2", ErrUnsupportedChannelLayout), ExitChannelLayout},
		{fmt.Errorf("%w: x", ErrInference), ExitInference},
		{fmt.Errorf("run: %w", context.Canceled), ExitInterrupted},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestExitCode_Distinct(t *testing.T) {
	seen := make(map[int]error)
	for _, e := range exitCodes {
		if prev, ok := seen[e.code]; ok && e.code != ExitUsage {
			t.Errorf("%v and %v share exit code %d", prev, e.err, e.code)
		}
		seen[e.code] = e.err
		if e.code == ExitOK || e.code == ExitFailure {
			t.Errorf("%v maps to reserved code %d", e.err, e.code)
		}
	}
}
