package taskio

import (
	"fmt"
	"strconv"

	yaml "github.com/goccy/go-yaml"

	"github.com/calebwray/spanloom/internal/task"
)

// yamlTask is the wire form of one task in a YAML document. IDs decode as
// any because sources write them as bare integers or strings.
type yamlTask struct {
	ID            interface{}   `yaml:"id"`
	Title         string        `yaml:"title"`
	Duration      float64       `yaml:"duration"`
	Prerequisites []interface{} `yaml:"prerequisites"`
}

type yamlDoc struct {
	Tasks []yamlTask `yaml:"tasks"`
}

func normalizeID(v interface{}) task.ID {
	switch x := v.(type) {
	case string:
		return task.ID(x)
	case int:
		return task.ID(strconv.Itoa(x))
	case int64:
		return task.ID(strconv.FormatInt(x, 10))
	case uint64:
		return task.ID(strconv.FormatUint(x, 10))
	case float64:
		return task.ID(strconv.FormatFloat(x, 'f', -1, 64))
	default:
		return task.ID(fmt.Sprintf("%v", v))
	}
}

// ReadYAML parses a YAML task document with the same shape as the JSON one.
func ReadYAML(data []byte) (task.Set, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml task document: %w", err)
	}

	set := make(task.Set)
	for _, yt := range doc.Tasks {
		id := normalizeID(yt.ID)
		if id == "" {
			return nil, fmt.Errorf("yaml task document: task with empty id")
		}
		var prereqs []task.ID
		for _, p := range yt.Prerequisites {
			prereqs = append(prereqs, normalizeID(p))
		}
		set[id] = task.Task{Title: yt.Title, Duration: yt.Duration, Prereqs: prereqs}
	}

	return set, nil
}

// MarshalYAML renders a task set as a YAML task document, tasks ordered
// by ID.
func MarshalYAML(tasks task.Set) ([]byte, error) {
	doc := yamlDoc{Tasks: make([]yamlTask, 0, len(tasks))}
	for _, id := range tasks.SortedIDs() {
		t := tasks[id]
		sorted := append([]task.ID(nil), t.Prereqs...)
		task.SortIDs(sorted)
		prereqs := make([]interface{}, 0, len(sorted))
		for _, p := range sorted {
			prereqs = append(prereqs, string(p))
		}
		doc.Tasks = append(doc.Tasks, yamlTask{
			ID:            string(id),
			Title:         t.Title,
			Duration:      t.Duration,
			Prerequisites: prereqs,
		})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode yaml task document: %w", err)
	}
	return out, nil
}
