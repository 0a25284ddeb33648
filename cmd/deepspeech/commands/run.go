package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/haivivi/deepspeech-go/pkg/audio/resampler"
	"github.com/haivivi/deepspeech-go/pkg/cli"
	"github.com/haivivi/deepspeech-go/pkg/stt"
)

func runTranscribe(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return configErr
	}

	opts, err := buildOptions(args, globalConfig, cmd.Flags().Changed("resampler"))
	if err != nil {
		return err
	}
	width := beamWidth
	if !cmd.Flags().Changed("beam-width") && globalConfig != nil {
		width = globalConfig.BeamWidth
	}
	opts.Loader = engineLoader(backend.Open, width)
	opts.Stdout = cmd.OutOrStdout()
	if backend.Version != nil {
		slog.Debug("libdeepspeech", "version", backend.Version())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The engine call cannot be interrupted, so a signal ends the process.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			slog.Warn("interrupted", "signal", sig)
			cancel()
			os.Exit(stt.ExitInterrupted)
		case <-ctx.Done():
		}
	}()

	report, err := stt.Run(ctx, opts)
	if err != nil {
		return err
	}
	slog.Debug("sample buffer", "samples", report.Samples, "seconds", report.Seconds)

	format := reportFormat(globalConfig)
	if format == "" {
		return nil
	}
	return cli.WriteReport(cmd.ErrOrStderr(), outputFile, format, report)
}

// buildOptions merges positional arguments, flags and the config file. Flags
// win over the config.
func buildOptions(args []string, cfg *cli.Config, resamplerSet bool) (stt.Options, error) {
	var opts stt.Options
	if len(args) > 0 {
		opts.ModelDir = args[0]
	}
	if len(args) > 1 {
		opts.AudioFile = args[1]
	}

	name := resamplerArg
	if !resamplerSet && cfg != nil {
		name = cfg.Resampler
	}
	q, err := resampler.ParseQuality(name)
	if err != nil {
		return stt.Options{}, err
	}
	opts.Quality = q
	return opts, nil
}

// reportFormat returns the report format selected by flags, falling back to
// the config file. Empty means no report.
func reportFormat(cfg *cli.Config) cli.OutputFormat {
	switch {
	case outputJSON:
		return cli.FormatJSON
	case outputYAML:
		return cli.FormatYAML
	case cfg != nil:
		return cfg.OutputFormat
	}
	return ""
}
