package schedule

import "github.com/calebwray/spanloom/internal/task"

// slackEps absorbs float rounding when deciding whether a task has zero
// slack. Start and finish days come from the same additions, so anything
// below this is noise.
const slackEps = 1e-9

// TaskAnalysis holds the critical-path numbers for a single task.
type TaskAnalysis struct {
	TaskID     task.ID
	LateStart  float64 // latest start that does not delay the project
	LateFinish float64
	Slack      float64 // LateStart minus the scheduled start
	Critical   bool    // zero slack: delaying this task delays the project
}

// Analysis is the critical-path view of a computed schedule.
type Analysis struct {
	Tasks        map[task.ID]*TaskAnalysis
	CriticalPath []task.ID // critical tasks in topological order
	TotalDays    float64
}

// IsCritical reports whether id sits on the critical path.
func (a *Analysis) IsCritical(id task.ID) bool {
	ta, ok := a.Tasks[id]
	return ok && ta.Critical
}

// Analyze runs the backward pass over a schedule produced by Compute for
// the same task set: latest start/finish per task, slack, and the critical
// path. Tasks with no dependents pin their late finish to the project end.
func Analyze(tasks task.Set, sched *Schedule) *Analysis {
	g := buildGraph(tasks)
	total := sched.TotalDays()

	an := &Analysis{
		Tasks:     make(map[task.ID]*TaskAnalysis, len(tasks)),
		TotalDays: total,
	}

	// Backward pass in reverse topological order: every dependent's late
	// start is final before its prerequisites are visited.
	for i := len(sched.Order) - 1; i >= 0; i-- {
		id := sched.Order[i]
		lf := total
		for j, succ := range g.adj[id] {
			ls := an.Tasks[succ].LateStart
			if j == 0 || ls < lf {
				lf = ls
			}
		}
		ls := lf - tasks[id].Duration
		slack := ls - sched.Starts[id]
		an.Tasks[id] = &TaskAnalysis{
			TaskID:     id,
			LateStart:  ls,
			LateFinish: lf,
			Slack:      slack,
			Critical:   slack < slackEps,
		}
	}

	for _, id := range sched.Order {
		if an.Tasks[id].Critical {
			an.CriticalPath = append(an.CriticalPath, id)
		}
	}

	return an
}
