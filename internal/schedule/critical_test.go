package schedule

import (
	"reflect"
	"testing"

	"github.com/calebwray/spanloom/internal/task"
)

func TestAnalyze_ChainAllCritical(t *testing.T) {
	tasks := task.Set{
		"a": {Title: "A", Duration: 3},
		"b": {Title: "B", Duration: 5, Prereqs: []task.ID{"a"}},
		"c": {Title: "C", Duration: 2, Prereqs: []task.ID{"b"}},
	}
	sched := mustCompute(t, tasks)
	an := Analyze(tasks, sched)

	if an.TotalDays != 10 {
		t.Errorf("expected 10 total days, got %g", an.TotalDays)
	}
	want := []task.ID{"a", "b", "c"}
	if !reflect.DeepEqual(an.CriticalPath, want) {
		t.Errorf("expected critical path %v, got %v", want, an.CriticalPath)
	}
	for _, id := range want {
		if an.Tasks[id].Slack != 0 {
			t.Errorf("task %s: expected zero slack, got %g", id, an.Tasks[id].Slack)
		}
	}
}

func TestAnalyze_SlackOnShortBranch(t *testing.T) {
	// A(1) and B(5) both feed D(1); only B -> D is critical.
	tasks := task.Set{
		"a": {Title: "A", Duration: 1},
		"b": {Title: "B", Duration: 5},
		"d": {Title: "D", Duration: 1, Prereqs: []task.ID{"a", "b"}},
	}
	sched := mustCompute(t, tasks)
	an := Analyze(tasks, sched)

	if an.TotalDays != 6 {
		t.Errorf("expected 6 total days, got %g", an.TotalDays)
	}

	ta := an.Tasks["a"]
	if ta.Critical {
		t.Error("expected a to be off the critical path")
	}
	if ta.Slack != 4 {
		t.Errorf("expected slack 4 for a, got %g", ta.Slack)
	}
	if ta.LateStart != 4 || ta.LateFinish != 5 {
		t.Errorf("expected a late window [4,5], got [%g,%g]", ta.LateStart, ta.LateFinish)
	}

	want := []task.ID{"b", "d"}
	if !reflect.DeepEqual(an.CriticalPath, want) {
		t.Errorf("expected critical path %v, got %v", want, an.CriticalPath)
	}
}

func TestAnalyze_EmptySchedule(t *testing.T) {
	tasks := task.Set{}
	sched := mustCompute(t, tasks)
	an := Analyze(tasks, sched)

	if len(an.Tasks) != 0 || len(an.CriticalPath) != 0 {
		t.Errorf("expected empty analysis, got %d tasks", len(an.Tasks))
	}
}

func TestAnalyze_IsCritical(t *testing.T) {
	tasks := task.Set{
		"a": {Title: "A", Duration: 2},
		"b": {Title: "B", Duration: 1, Prereqs: []task.ID{"a"}},
	}
	sched := mustCompute(t, tasks)
	an := Analyze(tasks, sched)

	if !an.IsCritical("a") || !an.IsCritical("b") {
		t.Error("expected the whole chain to be critical")
	}
	if an.IsCritical("zzz") {
		t.Error("unknown task must not be critical")
	}
}
