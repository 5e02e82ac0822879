package schedule

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/calebwray/spanloom/internal/task"
)

// depGraph is the dependency graph derived from a task set. Edges run from
// a prerequisite to the tasks that wait on it.
type depGraph struct {
	tasks task.Set
	adj   map[task.ID][]task.ID // prerequisite -> dependents
	preds map[task.ID][]task.ID // task -> deduplicated prerequisites
}

func buildGraph(tasks task.Set) *depGraph {
	g := &depGraph{
		tasks: tasks,
		adj:   make(map[task.ID][]task.ID),
		preds: make(map[task.ID][]task.ID),
	}

	for _, id := range tasks.SortedIDs() {
		seen := make(map[task.ID]bool)
		for _, p := range tasks[id].Prereqs {
			if seen[p] {
				continue
			}
			seen[p] = true
			g.preds[id] = append(g.preds[id], p)
			g.adj[p] = append(g.adj[p], id)
		}
	}

	// Sort adjacency lists for deterministic traversal
	for k := range g.adj {
		task.SortIDs(g.adj[k])
	}
	for k := range g.preds {
		task.SortIDs(g.preds[k])
	}

	return g
}

// detectCycle returns the cycle path if one exists, or nil if the graph is
// acyclic. Uses DFS with coloring: white (unvisited), gray (in progress),
// black (done). A task listing itself as a prerequisite is a one-node cycle.
func (g *depGraph) detectCycle() []task.ID {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[task.ID]int)
	parent := make(map[task.ID]task.ID)

	var dfs func(node task.ID) []task.ID
	dfs = func(node task.ID) []task.ID {
		color[node] = gray
		for _, next := range g.adj[node] {
			if color[next] == gray {
				if next == node {
					return []task.ID{node}
				}
				// Found a cycle — reconstruct it
				cycle := []task.ID{next, node}
				cur := node
				for cur != next {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				// Reverse to get forward order
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return cycle
			}
			if color[next] == white {
				parent[next] = node
				if cycle := dfs(next); cycle != nil {
					return cycle
				}
			}
		}
		color[node] = black
		return nil
	}

	for _, id := range g.tasks.SortedIDs() {
		if color[id] == white {
			if cycle := dfs(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

func idComparator(a, b interface{}) int {
	return task.CompareIDs(a.(task.ID), b.(task.ID))
}

// topoOrder performs Kahn's algorithm. The ready set lives in a red-black
// tree keyed by ID so tasks that unblock together are popped in ascending
// identifier order. Callers must have ruled out cycles first.
func (g *depGraph) topoOrder() []task.ID {
	inDegree := make(map[task.ID]int, len(g.tasks))
	for id := range g.tasks {
		inDegree[id] = len(g.preds[id])
	}

	ready := redblacktree.NewWith(idComparator)
	for id, d := range inDegree {
		if d == 0 {
			ready.Put(id, struct{}{})
		}
	}

	order := make([]task.ID, 0, len(g.tasks))
	for ready.Size() > 0 {
		node := ready.Left().Key.(task.ID)
		ready.Remove(node)
		order = append(order, node)

		for _, succ := range g.adj[node] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				ready.Put(succ, struct{}{})
			}
		}
	}

	return order
}
