// Package schedule computes earliest-start schedules for task sets with
// prerequisite constraints. Scheduling is a pure function of its input:
// no I/O, no shared state, and safe for concurrent callers as long as the
// task set itself is not mutated mid-call.
package schedule

import "github.com/calebwray/spanloom/internal/task"

// Compute assigns every task its earliest possible start day: the maximum
// finish day among its prerequisites, or 0 when it has none. Scheduling is
// all-or-nothing — a cycle, an unknown prerequisite reference, or a negative
// duration fails the whole call and no partial schedule is returned.
//
// An empty set yields an empty schedule.
func Compute(tasks task.Set) (*Schedule, error) {
	if err := validate(tasks); err != nil {
		return nil, err
	}

	g := buildGraph(tasks)
	if cycle := g.detectCycle(); cycle != nil {
		return nil, &CircularDependencyError{Cycle: cycle}
	}

	order := g.topoOrder()
	starts := make(map[task.ID]float64, len(tasks))
	finishes := make(map[task.ID]float64, len(tasks))

	// Forward pass: every prerequisite precedes its dependents in order,
	// so each task's start is final when we reach it.
	for _, id := range order {
		start := 0.0
		for _, p := range g.preds[id] {
			if f := finishes[p]; f > start {
				start = f
			}
		}
		starts[id] = start
		finishes[id] = start + tasks[id].Duration
	}

	return &Schedule{Starts: starts, Finishes: finishes, Order: order}, nil
}

// validate rejects negative durations and dangling prerequisite references
// before any graph work happens. Tasks are checked in ID order so the same
// bad input always reports the same error.
func validate(tasks task.Set) error {
	for _, id := range tasks.SortedIDs() {
		t := tasks[id]
		if t.Duration < 0 {
			return &InvalidDurationError{Task: id, Duration: t.Duration}
		}
		for _, p := range t.Prereqs {
			if _, ok := tasks[p]; !ok {
				return &UnknownPrerequisiteError{Task: id, Missing: p}
			}
		}
	}
	return nil
}
