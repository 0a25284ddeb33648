package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	RunID   string  `json:"run_id" yaml:"run_id"`
	Samples int     `json:"samples" yaml:"samples"`
	Seconds float64 `json:"seconds" yaml:"seconds"`
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "yaml", want: FormatYAML},
		{in: "json", want: FormatJSON},
		{in: "JSON", wantErr: true},
		{in: "table", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseOutputFormat(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestOutputFormat_Marshal(t *testing.T) {
	v := sample{RunID: "r1", Samples: 40000, Seconds: 2.5}

	tests := []struct {
		format OutputFormat
		want   []string
	}{
		{FormatJSON, []string{"{\n  \"run_id\": \"r1\",\n", "\"samples\": 40000", "\"seconds\": 2.5\n}\n"}},
		{FormatYAML, []string{"run_id: r1\n", "samples: 40000\n", "seconds: 2.5\n"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			data, err := tt.format.Marshal(v)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			for _, s := range tt.want {
				if !strings.Contains(string(data), s) {
					t.Errorf("output %q does not contain %q", data, s)
				}
			}
		})
	}

	if _, err := OutputFormat("").Marshal(v); err == nil {
		t.Error("Marshal with no format should fail")
	}
}

func TestWriteReport_Writer(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, "", FormatJSON, sample{RunID: "r2", Samples: 7}); err != nil {
		t.Fatalf("WriteReport error: %v", err)
	}
	var got sample
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if got.RunID != "r2" || got.Samples != 7 {
		t.Errorf("report = %+v", got)
	}
}

func TestWriteReport_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	var buf bytes.Buffer

	if err := WriteReport(&buf, path, FormatYAML, sample{RunID: "r3"}); err != nil {
		t.Fatalf("WriteReport error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("writer got %q, want nothing when a file is given", buf.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got sample
	if err := ParseFile(data, path, &got); err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if got.RunID != "r3" {
		t.Errorf("RunID = %q, want r3", got.RunID)
	}
}

func TestWriteReport_EncodeFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	err := WriteReport(nil, path, FormatJSON, map[string]any{"bad": make(chan int)})
	if err == nil {
		t.Fatal("WriteReport should fail for an unencodable value")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("report file should not exist, stat error: %v", err)
	}
}

func TestWriteReport_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.json")
	if err := WriteReport(nil, path, FormatJSON, sample{}); err == nil {
		t.Error("WriteReport should fail when the directory does not exist")
	}
}
