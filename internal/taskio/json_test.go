package taskio

import (
	"reflect"
	"strings"
	"testing"

	"github.com/calebwray/spanloom/internal/task"
)

func TestReadJSON(t *testing.T) {
	doc := []byte(`{
  "tasks": [
    {"id": 1, "title": "Design", "duration": 3, "prerequisites": []},
    {"id": 2, "title": "Build", "duration": 5.5, "prerequisites": [1]},
    {"id": "qa", "title": "Test", "duration": 2, "prerequisites": [1, 2]}
  ]
}`)

	set, err := ReadJSON(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(set))
	}
	if set["2"].Duration != 5.5 {
		t.Errorf("expected duration 5.5, got %g", set["2"].Duration)
	}
	if got := set["qa"].Prereqs; !reflect.DeepEqual(got, []task.ID{"1", "2"}) {
		t.Errorf("expected prereqs [1 2], got %v", got)
	}
}

func TestReadJSON_MissingPrerequisitesField(t *testing.T) {
	doc := []byte(`{"tasks": [{"id": 1, "title": "Solo", "duration": 2}]}`)
	set, err := ReadJSON(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set["1"].Prereqs != nil {
		t.Errorf("expected no prereqs, got %v", set["1"].Prereqs)
	}
}

func TestReadJSON_RejectsBadShape(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not json", `{"tasks": [`},
		{"missing tasks key", `{"items": []}`},
		{"missing title", `{"tasks": [{"id": 1, "duration": 2}]}`},
		{"string duration", `{"tasks": [{"id": 1, "title": "x", "duration": "two"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadJSON([]byte(tc.doc)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestMarshalJSON_RoundTrip(t *testing.T) {
	set := task.Set{
		"1": {Title: "Design", Duration: 3},
		"2": {Title: "Build", Duration: 5, Prereqs: []task.ID{"1"}},
	}

	data, err := MarshalJSON(set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Integer-looking IDs stay JSON numbers
	if !strings.Contains(string(data), `"id": 1`) {
		t.Errorf("expected numeric id in output:\n%s", data)
	}

	back, err := ReadJSON(data)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(back) != 2 || back["2"].Title != "Build" {
		t.Errorf("round trip lost data: %v", back)
	}
	if !reflect.DeepEqual(back["2"].Prereqs, []task.ID{"1"}) {
		t.Errorf("round trip lost prereqs: %v", back["2"].Prereqs)
	}
}
