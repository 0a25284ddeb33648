package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// LoadFile decodes the YAML or JSON file at path into v. Read errors wrap the
// underlying fs error.
func LoadFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	return ParseFile(data, path, v)
}

// ParseFile decodes data as JSON for a .json filename and as YAML otherwise,
// unless a filename without a known extension holds a JSON object.
func ParseFile(data []byte, filename string, v any) error {
	asJSON := false
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		asJSON = true
	case ".yaml", ".yml":
	default:
		asJSON = bytes.HasPrefix(bytes.TrimSpace(data), []byte("{"))
	}

	if asJSON {
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}
