package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/haivivi/deepspeech-go/pkg/audio/resampler"
)

const (
	// DefaultBaseDir is the base configuration directory name
	DefaultBaseDir = ".giztoy"
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "config.yaml"
)

// Config holds the persistent defaults of a CLI app. Command-line flags take
// precedence over every field.
type Config struct {
	// AppName is the application name (e.g., "deepspeech")
	AppName string `yaml:"-" json:"-"`

	// Resampler is the default resampling kernel (linear or high)
	Resampler string `yaml:"resampler,omitempty" json:"resampler,omitempty"`

	// BeamWidth overrides the decoder beam width when positive
	BeamWidth int `yaml:"beam_width,omitempty" json:"beam_width,omitempty"`

	// Verbose enables debug logging
	Verbose bool `yaml:"verbose,omitempty" json:"verbose,omitempty"`

	// OutputFormat is the default report format (yaml or json); empty
	// disables the report
	OutputFormat OutputFormat `yaml:"output_format,omitempty" json:"output_format,omitempty"`

	// configPath is the path to the config file
	configPath string
}

// DefaultConfigPath returns ~/.giztoy/<app>/config.yaml.
func DefaultConfigPath(appName string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DefaultBaseDir, appName, DefaultConfigFile), nil
}

// LoadConfigWithPath loads configuration from customPath, or from
// DefaultConfigPath when it is empty. A missing file yields an empty Config
// and is not created.
func LoadConfigWithPath(appName, customPath string) (*Config, error) {
	configPath := customPath
	if configPath == "" {
		var err error
		if configPath, err = DefaultConfigPath(appName); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		AppName:    appName,
		configPath: configPath,
	}

	if err := LoadFile(configPath, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.AppName = appName
	cfg.configPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if _, err := resampler.ParseQuality(c.Resampler); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}
	if c.BeamWidth < 0 {
		return fmt.Errorf("beam_width must not be negative, got %d", c.BeamWidth)
	}
	if _, err := ParseOutputFormat(string(c.OutputFormat)); err != nil {
		return err
	}
	return nil
}

// Exists reports whether the config file is present on disk.
func (c *Config) Exists() bool {
	_, err := os.Stat(c.configPath)
	return err == nil
}

// Path returns the config file path
func (c *Config) Path() string {
	return c.configPath
}
