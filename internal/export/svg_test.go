package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/calebwray/spanloom/internal/schedule"
	"github.com/calebwray/spanloom/internal/task"
)

func renderSVG(t *testing.T, tasks task.Set, opts Options) string {
	t.Helper()
	sched, err := schedule.Compute(tasks)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	var buf bytes.Buffer
	SVG(&buf, tasks, sched, opts)
	return buf.String()
}

func TestSVG_Chart(t *testing.T) {
	out := renderSVG(t, task.Set{
		"1": {Title: "Design", Duration: 3},
		"2": {Title: "Build", Duration: 5, Prereqs: []task.ID{"1"}},
	}, Options{})

	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("expected svg document, got:\n%s", out)
	}
	if !strings.Contains(out, "Week 1") {
		t.Errorf("expected week label, got:\n%s", out)
	}
	if !strings.Contains(out, "Design") || !strings.Contains(out, "Build") {
		t.Errorf("expected task titles, got:\n%s", out)
	}
	if !strings.Contains(out, barFill) {
		t.Errorf("expected bar fill %s, got:\n%s", barFill, out)
	}
	if !strings.Contains(out, "fill:white") {
		t.Errorf("expected light background, got:\n%s", out)
	}
}

func TestSVG_DarkTheme(t *testing.T) {
	out := renderSVG(t, task.Set{
		"1": {Title: "Solo", Duration: 2},
	}, Options{Dark: true})

	if !strings.Contains(out, "#2c2c2c") {
		t.Errorf("expected dark background, got:\n%s", out)
	}
}

func TestSVG_CriticalHighlight(t *testing.T) {
	tasks := task.Set{
		"a": {Title: "A", Duration: 1},
		"b": {Title: "B", Duration: 5},
		"d": {Title: "D", Duration: 1, Prereqs: []task.ID{"a", "b"}},
	}
	sched, err := schedule.Compute(tasks)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	var buf bytes.Buffer
	SVG(&buf, tasks, sched, Options{Analysis: schedule.Analyze(tasks, sched)})

	out := buf.String()
	if !strings.Contains(out, criticalFill) {
		t.Errorf("expected critical fill, got:\n%s", out)
	}
	if !strings.Contains(out, barFill) {
		t.Errorf("expected normal fill for off-path task, got:\n%s", out)
	}
}
