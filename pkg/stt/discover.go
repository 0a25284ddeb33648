package stt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultGraph is the graph file name assumed when the model directory holds
// no recognised graph file. Its existence is not checked.
const DefaultGraph = "output_graph.pb"

// Artifacts is the set of model files found in a model directory.
type Artifacts struct {
	// Graph is the acoustic graph (.pb, .pbmm or .tflite).
	Graph string `json:"graph" yaml:"graph"`

	// Scorer is the external scorer (.scorer), empty if none was found.
	Scorer string `json:"scorer,omitempty" yaml:"scorer,omitempty"`
}

// HasScorer reports whether a scorer was found.
func (a Artifacts) HasScorer() bool {
	return a.Scorer != ""
}

// Discover scans the immediate children of dir for model files. Regular files
// whose extension is pb, pbmm or tflite become the graph and files with the
// extension scorer become the scorer. Extensions are case-sensitive. When a
// category has several candidates, the last one in directory order wins;
// the order is whatever the filesystem returns.
func Discover(dir string) (Artifacts, error) {
	arts := Artifacts{Graph: filepath.Join(dir, DefaultGraph)}

	d, err := os.Open(dir)
	if err != nil {
		return Artifacts{}, fmt.Errorf("%w: %w", ErrModelDirUnreadable, err)
	}
	defer d.Close()

	// File.ReadDir keeps directory order; os.ReadDir would sort.
	entries, err := d.ReadDir(-1)
	if err != nil {
		return Artifacts{}, fmt.Errorf("%w: %w", ErrModelDirUnreadable, err)
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		switch extension(e.Name()) {
		case "pb", "pbmm", "tflite":
			arts.Graph = path
		case "scorer":
			arts.Scorer = path
		}
	}
	return arts, nil
}

// extension returns the text after the last dot of name. A leading dot does
// not start an extension, so ".pb" has none.
func extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}
