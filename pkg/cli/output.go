package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// OutputFormat names an encoding for the run report.
type OutputFormat string

const (
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat accepts "yaml", "json" and the empty string, which means
// no report.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case "", FormatYAML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format: %s", s)
}

// Marshal encodes v. JSON is indented by two spaces and ends with a newline
// like YAML does.
func (f OutputFormat) Marshal(v any) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unsupported output format: %q", string(f))
}

// WriteReport encodes v and writes it to the file at path, or to w when path
// is empty. Nothing is created when encoding fails.
func WriteReport(w io.Writer, path string, f OutputFormat, v any) error {
	data, err := f.Marshal(v)
	if err != nil {
		return err
	}
	if path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}
	_, err = w.Write(data)
	return err
}
