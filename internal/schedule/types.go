package schedule

import "github.com/calebwray/spanloom/internal/task"

// Schedule is the earliest-start assignment for a task set. Day 0 is the
// first day of the project; finish days are stored alongside starts because
// every consumer needs both.
type Schedule struct {
	Starts   map[task.ID]float64
	Finishes map[task.ID]float64
	Order    []task.ID // topological order, ties broken by ascending ID
}

// Start returns the computed start day for id.
func (s *Schedule) Start(id task.ID) (float64, bool) {
	v, ok := s.Starts[id]
	return v, ok
}

// Finish returns the computed finish day (start + duration) for id.
func (s *Schedule) Finish(id task.ID) (float64, bool) {
	v, ok := s.Finishes[id]
	return v, ok
}

// TotalDays returns the project length: the latest finish day, or 0 for an
// empty schedule.
func (s *Schedule) TotalDays() float64 {
	total := 0.0
	for _, f := range s.Finishes {
		if f > total {
			total = f
		}
	}
	return total
}

// Len returns the number of scheduled tasks.
func (s *Schedule) Len() int {
	return len(s.Starts)
}
