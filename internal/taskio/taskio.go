// Package taskio loads and saves task sets. Three sources are understood:
// the delimited CSV format (id, title, duration, space-separated
// prerequisites), a JSON document, and a YAML document of the same shape.
// The scheduler does not care which source produced a set.
package taskio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/calebwray/spanloom/internal/task"
)

// Load reads a task set from path, picking the format by file extension:
// .csv, .json, or .yaml/.yml.
func Load(path string) (task.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(strings.NewReader(string(data)))
	case ".json":
		return ReadJSON(data)
	case ".yaml", ".yml":
		return ReadYAML(data)
	default:
		return nil, fmt.Errorf("unsupported task file %s: want .csv, .json, or .yaml", path)
	}
}

// Save writes a task set to path as a JSON or YAML document, picked by
// file extension.
func Save(path string, tasks task.Set) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = MarshalJSON(tasks)
	case ".yaml", ".yml":
		data, err = MarshalYAML(tasks)
	default:
		return fmt.Errorf("unsupported output file %s: want .json or .yaml", path)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
