package stt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/haivivi/deepspeech-go/pkg/audio/audiofile"
	"github.com/haivivi/deepspeech-go/pkg/audio/pcm"
	"github.com/haivivi/deepspeech-go/pkg/audio/resampler"
)

// Options configures a Run.
type Options struct {
	// ModelDir is the directory holding the graph and optional scorer.
	ModelDir string

	// AudioFile is the recording to transcribe.
	AudioFile string

	// Loader loads the graph into the engine. Required.
	Loader Loader

	// Open opens the audio file. Defaults to audiofile.Open.
	Open audiofile.OpenFunc

	// Quality selects the resampling kernel. Defaults to
	// resampler.QualityLinear.
	Quality resampler.Quality

	// Stdout receives the progress lines and the transcript. Defaults to
	// os.Stdout.
	Stdout io.Writer

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Report summarises a completed run.
type Report struct {
	RunID             string               `json:"run_id" yaml:"run_id"`
	Artifacts         Artifacts            `json:"artifacts" yaml:"artifacts"`
	Audio             audiofile.Descriptor `json:"audio" yaml:"audio"`
	Quality           resampler.Quality    `json:"resampler" yaml:"resampler"`
	Samples           int                  `json:"samples" yaml:"samples"`
	Seconds           float64              `json:"seconds" yaml:"seconds"`
	AudioDuration     time.Duration        `json:"audio_duration" yaml:"audio_duration"`
	InitDuration      time.Duration        `json:"init_duration" yaml:"init_duration"`
	DecodeDuration    time.Duration        `json:"decode_duration" yaml:"decode_duration"`
	InferenceDuration time.Duration        `json:"inference_duration" yaml:"inference_duration"`
	RealTimeFactor    float64              `json:"real_time_factor" yaml:"real_time_factor"`
	Transcript        string               `json:"transcript" yaml:"transcript"`
}

// Run transcribes opts.AudioFile with the model found in opts.ModelDir. The
// stages run strictly in order and the first error ends the run; no
// transcript line is written on failure. ctx is checked between stages but
// cannot interrupt a blocking engine call.
func Run(ctx context.Context, opts Options) (*Report, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	start := now()

	if opts.ModelDir == "" {
		return nil, ErrMissingModelDirArg
	}
	if opts.AudioFile == "" {
		return nil, ErrMissingAudioArg
	}
	if opts.Loader == nil {
		return nil, fmt.Errorf("%w: no engine loader", ErrEngineLoad)
	}
	open := opts.Open
	if open == nil {
		open = audiofile.Open
	}
	w := opts.Stdout
	if w == nil {
		w = os.Stdout
	}
	quality, err := resampler.ParseQuality(string(opts.Quality))
	if err != nil {
		return nil, err
	}

	report := &Report{RunID: uuid.NewString(), Quality: quality}
	log := slog.Default().With("run_id", report.RunID)

	arts, err := Discover(opts.ModelDir)
	if err != nil {
		return nil, err
	}
	report.Artifacts = arts
	log.Debug("model artefacts discovered", "graph", arts.Graph, "scorer", arts.Scorer)

	model, err := opts.Loader.Load(arts.Graph)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEngineLoad, arts.Graph, err)
	}
	defer model.Close()
	if rate := model.SampleRate(); rate != pcm.Target.SampleRate() {
		log.Debug("model sample rate differs from target", "model_rate", rate, "target_rate", pcm.Target.SampleRate())
	}

	if arts.HasScorer() {
		fmt.Fprintf(w, "Using external scorer `%s`\n", arts.Scorer)
		if err := model.EnableExternalScorer(arts.Scorer); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrEngineScorer, arts.Scorer, err)
		}
	}

	initialized := now()
	report.InitDuration = initialized.Sub(start)
	fmt.Fprintf(w, "Model initialized in %v.\n", report.InitDuration)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buf, desc, err := decode(open, opts.AudioFile, quality)
	if err != nil {
		return nil, err
	}
	report.Audio = desc
	report.Samples = len(buf)
	report.Seconds = buf.Seconds(pcm.Target)
	report.AudioDuration = buf.Duration(pcm.Target)
	log.Debug("audio decoded",
		"container", desc.Container,
		"sample_rate", desc.SampleRate,
		"bit_depth", desc.BitDepth,
		"format", pcm.Target,
		"samples", report.Samples)

	decoded := now()
	report.DecodeDuration = decoded.Sub(initialized)
	fmt.Fprintf(w, "Decoding done in %v. Sample length %ss. Running STT.\n",
		report.DecodeDuration, strconv.FormatFloat(report.Seconds, 'f', -1, 64))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := model.SpeechToText(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInference, err)
	}

	done := now()
	report.InferenceDuration = done.Sub(decoded)
	// truncated to whole microseconds before dividing
	elapsed := report.InferenceDuration.Truncate(time.Microsecond).Seconds()
	report.RealTimeFactor = elapsed / report.Seconds
	report.Transcript = text
	fmt.Fprintf(w, "STT done in %v. Real time factor %.5f\n", report.InferenceDuration, report.RealTimeFactor)
	fmt.Fprintln(w, text)

	log.Debug("transcribed",
		"samples", report.Samples,
		"inference", report.InferenceDuration,
		"rtf", report.RealTimeFactor)
	return report, nil
}

// decode opens the audio file, enforces mono, and returns its samples at
// the target rate. The file is closed before returning.
func decode(open audiofile.OpenFunc, path string, quality resampler.Quality) (pcm.Buffer, audiofile.Descriptor, error) {
	f, err := open(path)
	if err != nil {
		return nil, audiofile.Descriptor{}, fmt.Errorf("%w: %s: %w", ErrAudioOpen, path, err)
	}
	defer f.Close()

	desc := f.Descriptor()
	if desc.Channels != 1 {
		return nil, desc, fmt.Errorf("%w, got %d", ErrUnsupportedChannelLayout, desc.Channels)
	}
	if desc.SampleRate <= 0 {
		return nil, desc, fmt.Errorf("%w: %s: invalid sample rate %d", ErrAudioOpen, path, desc.SampleRate)
	}

	buf, err := resampler.Resample(f.Samples(), desc.SampleRate, pcm.Target.SampleRate(), quality)
	if err != nil {
		return nil, desc, fmt.Errorf("%w: %s: %w", ErrAudioDecode, path, err)
	}
	return buf, desc, nil
}
