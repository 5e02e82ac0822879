package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/calebwray/spanloom/internal/schedule"
	"github.com/calebwray/spanloom/internal/task"
)

func render(t *testing.T, tasks task.Set, opts Options) string {
	t.Helper()
	color.NoColor = true

	sched, err := schedule.Compute(tasks)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	var buf bytes.Buffer
	Render(&buf, tasks, sched, opts)
	return buf.String()
}

func TestRender_Empty(t *testing.T) {
	out := render(t, task.Set{}, Options{})
	if !strings.Contains(out, "(no tasks)") {
		t.Errorf("expected empty-set notice, got:\n%s", out)
	}
}

func TestRender_Chain(t *testing.T) {
	out := render(t, task.Set{
		"1": {Title: "Design", Duration: 3},
		"2": {Title: "Build", Duration: 5, Prereqs: []task.ID{"1"}},
	}, Options{})

	if !strings.Contains(out, "Week 1") {
		t.Errorf("expected week header, got:\n%s", out)
	}
	if !strings.Contains(out, "Design") || !strings.Contains(out, "Build") {
		t.Errorf("expected task titles, got:\n%s", out)
	}
	if !strings.Contains(out, "█") {
		t.Errorf("expected bars, got:\n%s", out)
	}
	if !strings.Contains(out, "8 days") {
		t.Errorf("expected total of 8 days, got:\n%s", out)
	}
}

func TestRender_BarOffsets(t *testing.T) {
	// One cell per day: task 2 starts after task 1's 3 days.
	out := render(t, task.Set{
		"1": {Title: "A", Duration: 3},
		"2": {Title: "B", Duration: 2, Prereqs: []task.ID{"1"}},
	}, Options{DayCells: 1, TitleWidth: 4})

	lines := strings.Split(out, "\n")
	var rowA, rowB string
	for _, ln := range lines {
		if strings.Contains(ln, " A ") {
			rowA = ln
		}
		if strings.Contains(ln, " B ") {
			rowB = ln
		}
	}
	if rowA == "" || rowB == "" {
		t.Fatalf("missing task rows:\n%s", out)
	}
	if strings.Index(rowB, "█") <= strings.Index(rowA, "█") {
		t.Errorf("expected B's bar to start after A's:\nA: %q\nB: %q", rowA, rowB)
	}
	if strings.Count(rowA, "█") != 3 || strings.Count(rowB, "█") != 2 {
		t.Errorf("expected bar widths 3 and 2:\nA: %q\nB: %q", rowA, rowB)
	}
}

func TestRender_Milestone(t *testing.T) {
	out := render(t, task.Set{
		"1": {Title: "kickoff", Duration: 0},
	}, Options{})
	if !strings.Contains(out, "◆") {
		t.Errorf("expected milestone marker, got:\n%s", out)
	}
}

func TestRender_CriticalPathSummary(t *testing.T) {
	tasks := task.Set{
		"a": {Title: "A", Duration: 1},
		"b": {Title: "B", Duration: 5},
		"d": {Title: "D", Duration: 1, Prereqs: []task.ID{"a", "b"}},
	}
	sched, err := schedule.Compute(tasks)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	color.NoColor = true

	var buf bytes.Buffer
	Render(&buf, tasks, sched, Options{Analysis: schedule.Analyze(tasks, sched)})

	if !strings.Contains(buf.String(), "Critical path:") {
		t.Errorf("expected critical path summary, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "b -> d") {
		t.Errorf("expected path b -> d, got:\n%s", buf.String())
	}
}
