// Package cli holds the configuration and report plumbing shared by the
// command-line tools.
//
// Defaults are read from ~/.giztoy/<app>/config.yaml (or a file given with
// --config) as YAML or JSON. A missing file is not an error and is never
// created; flags always override it.
//
//	cfg, err := cli.LoadConfigWithPath("deepspeech", "")
//	...
//	err = cli.WriteReport(os.Stderr, outputPath, cli.FormatJSON, report)
package cli
