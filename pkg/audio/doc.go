// Package audio provides audio processing utilities.
//
// This package serves as an umbrella for audio-related sub-packages:
//
//   - pcm: 16-bit PCM formats and in-memory sample buffers
//   - audiofile: WAV, FLAC and Ogg Vorbis readers yielding 16-bit samples
//   - resampler: pull-mode linear and polyphase sample rate conversion
//
// Example usage:
//
//	import (
//	    "github.com/haivivi/deepspeech-go/pkg/audio/audiofile"
//	    "github.com/haivivi/deepspeech-go/pkg/audio/pcm"
//	    "github.com/haivivi/deepspeech-go/pkg/audio/resampler"
//	)
//
//	f, err := audiofile.Open("hello.flac")
//	defer f.Close()
//
//	rate := f.Descriptor().SampleRate
//	buf, err := resampler.Resample(f.Samples(), rate, pcm.Target.SampleRate(), resampler.QualityLinear)
package audio
