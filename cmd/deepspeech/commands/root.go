package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/deepspeech-go/pkg/cli"
)

const appName = "deepspeech"

var (
	// Global flags
	cfgFile      string
	resamplerArg string
	beamWidth    int
	outputFile   string
	outputJSON   bool
	outputYAML   bool
	verbose      bool

	// Global configuration
	globalConfig *cli.Config
	configErr    error
)

// rootCmd transcribes one audio file.
var rootCmd = &cobra.Command{
	Use:   "deepspeech <model_dir> <audio_file>",
	Short: "Offline speech-to-text with a DeepSpeech model",
	Long: `DeepSpeech CLI - transcribe an audio file with a local DeepSpeech model.

The model directory is scanned for a graph (.pb, .pbmm or .tflite) and an
optional external scorer (.scorer). The audio must be mono; WAV, FLAC and
Ogg Vorbis are recognised by content. Audio at any rate other than 16 kHz
is resampled first.

Progress lines and the transcript are printed to stdout. With --json or
--yaml a run report is written to --output, or to stderr if unset, so the
transcript stays the last line on stdout.

Examples:
  # Transcribe with the model and scorer in ./models
  deepspeech models/ hello.wav

  # Use the polyphase resampler and save a JSON report
  deepspeech --resampler high --json -o report.json models/ hello_8k.flac
`,
	Args:          cobra.MaximumNArgs(2),
	RunE:          runTranscribe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with engines from b.
func Execute(b Backend) error {
	backend = b
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.giztoy/deepspeech/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().StringVar(&resamplerArg, "resampler", "", "resampling kernel: linear or high (default linear)")
	rootCmd.Flags().IntVar(&beamWidth, "beam-width", 0, "CTC decoder beam width (default: the model's)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "report file (default: stderr)")
	rootCmd.Flags().BoolVar(&outputJSON, "json", false, "write a JSON run report")
	rootCmd.Flags().BoolVar(&outputYAML, "yaml", false, "write a YAML run report")
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

func initConfig() {
	globalConfig, configErr = cli.LoadConfigWithPath(appName, cfgFile)

	// Configure slog based on verbose flag
	logLevel := slog.LevelInfo
	if verbose || (globalConfig != nil && globalConfig.Verbose) {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if configErr == nil {
		slog.Debug("config loaded", "path", globalConfig.Path(), "exists", globalConfig.Exists())
	}
}
