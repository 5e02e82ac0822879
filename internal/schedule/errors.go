package schedule

import (
	"fmt"
	"strings"

	"github.com/calebwray/spanloom/internal/task"
)

// CircularDependencyError reports a dependency cycle. Cycle holds the task
// IDs along the cycle in prerequisite order; the first task closes the loop.
type CircularDependencyError struct {
	Cycle []task.ID
}

func (e *CircularDependencyError) Error() string {
	ids := make([]string, len(e.Cycle))
	for i, id := range e.Cycle {
		ids[i] = string(id)
	}
	return fmt.Sprintf("circular dependency: %s -> %s", strings.Join(ids, " -> "), ids[0])
}

// UnknownPrerequisiteError reports a prerequisite reference to a task that
// does not exist in the set.
type UnknownPrerequisiteError struct {
	Task    task.ID
	Missing task.ID
}

func (e *UnknownPrerequisiteError) Error() string {
	return fmt.Sprintf("task %q references unknown prerequisite %q", e.Task, e.Missing)
}

// InvalidDurationError reports a task with a negative duration.
type InvalidDurationError struct {
	Task     task.ID
	Duration float64
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("task %q has invalid duration %g", e.Task, e.Duration)
}
