package taskio

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"

	"github.com/calebwray/spanloom/internal/task"
)

//go:embed tasks.schema.json
var tasksSchemaJSON string

var tasksSchema = jsonschema.MustCompileString("tasks.schema.json", tasksSchemaJSON)

// ReadJSON parses a task document of the shape
//
//	{"tasks": [{"id": 1, "title": "...", "duration": 2.5, "prerequisites": [2, 3]}, ...]}
//
// Unlike CSV, a structured document that does not match the schema is a
// load error, not a row to skip.
func ReadJSON(data []byte) (task.Set, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse task document: %w", err)
	}
	if err := tasksSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid task document: %w", err)
	}

	set := make(task.Set)
	gjson.GetBytes(data, "tasks").ForEach(func(_, item gjson.Result) bool {
		var prereqs []task.ID
		item.Get("prerequisites").ForEach(func(_, p gjson.Result) bool {
			prereqs = append(prereqs, task.ID(p.String()))
			return true
		})
		set[task.ID(item.Get("id").String())] = task.Task{
			Title:    item.Get("title").String(),
			Duration: item.Get("duration").Float(),
			Prereqs:  prereqs,
		}
		return true
	})

	return set, nil
}

// jsonTask is the wire form of one task in the saved document.
type jsonTask struct {
	ID            json.RawMessage   `json:"id"`
	Title         string            `json:"title"`
	Duration      float64           `json:"duration"`
	Prerequisites []json.RawMessage `json:"prerequisites"`
}

// encodeID keeps integer-looking IDs as JSON numbers so a loaded document
// round-trips in its original form.
func encodeID(id task.ID) json.RawMessage {
	if _, err := strconv.Atoi(string(id)); err == nil {
		return json.RawMessage(id)
	}
	b, _ := json.Marshal(string(id))
	return b
}

// MarshalJSON renders a task set as an indented task document, tasks
// ordered by ID.
func MarshalJSON(tasks task.Set) ([]byte, error) {
	out := make([]jsonTask, 0, len(tasks))
	for _, id := range tasks.SortedIDs() {
		t := tasks[id]
		prereqs := make([]json.RawMessage, 0, len(t.Prereqs))
		sorted := append([]task.ID(nil), t.Prereqs...)
		task.SortIDs(sorted)
		for _, p := range sorted {
			prereqs = append(prereqs, encodeID(p))
		}
		out = append(out, jsonTask{
			ID:            encodeID(id),
			Title:         t.Title,
			Duration:      t.Duration,
			Prerequisites: prereqs,
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string][]jsonTask{"tasks": out}); err != nil {
		return nil, fmt.Errorf("encode task document: %w", err)
	}
	return buf.Bytes(), nil
}
