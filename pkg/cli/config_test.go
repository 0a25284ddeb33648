package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/haivivi/deepspeech-go/pkg/audio/resampler"
)

func TestLoadConfigWithPath_Missing(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := LoadConfigWithPath("testapp", configPath)
	if err != nil {
		t.Fatalf("LoadConfigWithPath error: %v", err)
	}

	if cfg.AppName != "testapp" {
		t.Errorf("AppName = %q, want %q", cfg.AppName, "testapp")
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
	if cfg.Resampler != "" || cfg.Verbose || cfg.OutputFormat != "" {
		t.Errorf("config should be empty, got %+v", cfg)
	}

	// A missing config must not be created.
	if cfg.Exists() {
		t.Error("config file should not have been created")
	}
	if _, err := os.Stat(filepath.Dir(configPath)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("config directory should not have been created, stat error: %v", err)
	}
}

func TestLoadConfigWithPath_YAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	data := "resampler: high\nbeam_width: 1024\nverbose: true\noutput_format: json\n"
	if err := os.WriteFile(configPath, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigWithPath("testapp", configPath)
	if err != nil {
		t.Fatalf("LoadConfigWithPath error: %v", err)
	}

	if cfg.Resampler != string(resampler.QualityHigh) {
		t.Errorf("Resampler = %q, want %q", cfg.Resampler, resampler.QualityHigh)
	}
	if cfg.BeamWidth != 1024 {
		t.Errorf("BeamWidth = %d, want 1024", cfg.BeamWidth)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	if cfg.OutputFormat != FormatJSON {
		t.Errorf("OutputFormat = %q, want %q", cfg.OutputFormat, FormatJSON)
	}
	if !cfg.Exists() {
		t.Error("Exists() = false, want true")
	}
}

func TestLoadConfigWithPath_JSON(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(configPath, []byte(`{"resampler": "linear", "output_format": "yaml"}`), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigWithPath("testapp", configPath)
	if err != nil {
		t.Fatalf("LoadConfigWithPath error: %v", err)
	}
	if cfg.Resampler != "linear" || cfg.OutputFormat != FormatYAML {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigWithPath_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "resampler: [unterminated\n"},
		{"unknown resampler", "resampler: cubic\n"},
		{"unknown format", "output_format: table\n"},
		{"negative beam width", "beam_width: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.data), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfigWithPath("testapp", configPath); err == nil {
				t.Error("LoadConfigWithPath should fail")
			}
		})
	}
}

func TestLoadConfigWithPath_Directory(t *testing.T) {
	if _, err := LoadConfigWithPath("testapp", t.TempDir()); err == nil {
		t.Error("LoadConfigWithPath should fail for a directory")
	}
}

func TestLoadConfigWithPath_DefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadConfigWithPath("testapp", "")
	if err != nil {
		t.Fatalf("LoadConfigWithPath error: %v", err)
	}
	want := filepath.Join(home, DefaultBaseDir, "testapp", DefaultConfigFile)
	if cfg.Path() != want {
		t.Errorf("Path() = %q, want %q", cfg.Path(), want)
	}
	if p, err := DefaultConfigPath("testapp"); err != nil || p != want {
		t.Errorf("DefaultConfigPath = %q, %v; want %q", p, err, want)
	}

	dir := filepath.Join(home, DefaultBaseDir, "testapp")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(want, []byte("resampler: high\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfigWithPath("testapp", "")
	if err != nil {
		t.Fatalf("LoadConfigWithPath error: %v", err)
	}
	if cfg.Resampler != "high" {
		t.Errorf("Resampler = %q, want high", cfg.Resampler)
	}
}

func TestParseFile(t *testing.T) {
	type doc struct {
		Name  string `yaml:"name" json:"name"`
		Count int    `yaml:"count" json:"count"`
	}

	tests := []struct {
		filename string
		data     string
		wantErr  bool
	}{
		{"a.yaml", "name: x\ncount: 2\n", false},
		{"a.YML", "name: x\ncount: 2\n", false},
		{"a.json", `{"name": "x", "count": 2}`, false},
		{"a.json", "name: x\n", true},
		{"a", `{"name": "x", "count": 2}`, false},
		{"a", "name: x\ncount: 2\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			var d doc
			err := ParseFile([]byte(tt.data), tt.filename, &d)
			if tt.wantErr {
				if err == nil {
					t.Error("ParseFile should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFile error: %v", err)
			}
			if d.Name != "x" || d.Count != 2 {
				t.Errorf("doc = %+v", d)
			}
		})
	}
}
