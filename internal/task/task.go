// Package task defines the project task model shared by the scheduler,
// the file sources, and the renderers.
package task

import (
	"sort"
	"strconv"
)

// ID identifies a task within a Set. Sources typically use small positive
// integers, but any non-empty string is a valid key.
type ID string

// Task is a single unit of work on the project plan.
type Task struct {
	Title    string  // display label, ignored by scheduling
	Duration float64 // length in days; zero marks a milestone
	Prereqs  []ID    // tasks that must finish before this one starts
}

// Set maps task IDs to tasks. A Set is built once by a source and treated
// as immutable input everywhere else; the scheduler never mutates it.
type Set map[ID]Task

// CompareIDs orders two IDs numerically when both parse as integers and
// lexicographically otherwise, so integer-keyed sets sort 2 before 10.
// Returns -1, 0, or 1.
func CompareIDs(a, b ID) int {
	ai, aerr := strconv.Atoi(string(a))
	bi, berr := strconv.Atoi(string(b))
	if aerr == nil && berr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// SortIDs sorts ids in place in CompareIDs order.
func SortIDs(ids []ID) {
	sort.Slice(ids, func(i, j int) bool { return CompareIDs(ids[i], ids[j]) < 0 })
}

// SortedIDs returns the set's IDs in CompareIDs order.
func (s Set) SortedIDs() []ID {
	ids := make([]ID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	SortIDs(ids)
	return ids
}
