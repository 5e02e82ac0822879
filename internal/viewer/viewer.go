// Package viewer serves a scheduled chart over local HTTP: the normalized
// graph as JSON and the rendered chart as SVG. The served plan is an
// immutable snapshot taken at startup.
package viewer

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/calebwray/spanloom/internal/export"
	"github.com/calebwray/spanloom/internal/schedule"
	"github.com/calebwray/spanloom/internal/task"
)

// --- Graph types (the JSON the viewer publishes) ---

type GraphNode struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Duration   float64 `json:"duration"`
	Start      float64 `json:"start"`
	Finish     float64 `json:"finish"`
	Slack      float64 `json:"slack"`
	IsCritical bool    `json:"is_critical"`
}

type GraphEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type GraphMetadata struct {
	GeneratedAt string  `json:"generated_at"`
	TotalTasks  int     `json:"total_tasks"`
	TotalDays   float64 `json:"total_days"`
}

type Graph struct {
	Nodes        []GraphNode   `json:"nodes"`
	Edges        []GraphEdge   `json:"edges"`
	CriticalPath []string      `json:"critical_path"`
	Metadata     GraphMetadata `json:"metadata"`
}

// BuildGraph converts a schedule into the normalized Graph document. Nodes
// come out in ID order, edges run from prerequisite to dependent.
func BuildGraph(tasks task.Set, sched *schedule.Schedule, an *schedule.Analysis) *Graph {
	nodes := make([]GraphNode, 0, len(tasks))
	var edges []GraphEdge
	for _, id := range tasks.SortedIDs() {
		t := tasks[id]
		start, _ := sched.Start(id)
		finish, _ := sched.Finish(id)
		node := GraphNode{
			ID:       string(id),
			Title:    t.Title,
			Duration: t.Duration,
			Start:    start,
			Finish:   finish,
		}
		if ta, ok := an.Tasks[id]; ok {
			node.Slack = ta.Slack
			node.IsCritical = ta.Critical
		}
		nodes = append(nodes, node)

		prereqs := append([]task.ID(nil), t.Prereqs...)
		task.SortIDs(prereqs)
		for _, p := range prereqs {
			edges = append(edges, GraphEdge{From: string(p), To: string(id)})
		}
	}

	path := make([]string, len(an.CriticalPath))
	for i, id := range an.CriticalPath {
		path[i] = string(id)
	}

	return &Graph{
		Nodes:        nodes,
		Edges:        edges,
		CriticalPath: path,
		Metadata: GraphMetadata{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalTasks:  len(tasks),
			TotalDays:   sched.TotalDays(),
		},
	}
}

// --- HTTP server ---

// Server publishes one scheduled plan.
type Server struct {
	tasks   task.Set
	sched   *schedule.Schedule
	graph   *Graph
	svgOpts export.Options
}

// New builds a Server around an already-computed schedule.
func New(tasks task.Set, sched *schedule.Schedule, an *schedule.Analysis, svgOpts export.Options) *Server {
	svgOpts.Analysis = an
	return &Server{
		tasks:   tasks,
		sched:   sched,
		graph:   BuildGraph(tasks, sched, an),
		svgOpts: svgOpts,
	}
}

// Handler returns the viewer's HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/graph.json", s.handleGraph)
	mux.HandleFunc("/chart.svg", s.handleChart)
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.graph)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	export.SVG(w, s.tasks, s.sched, s.svgOpts)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!doctype html>
<html><head><title>spanloom</title></head>
<body style="margin:0"><img src="/chart.svg" alt="Gantt chart"></body></html>
`)
}

// ListenAndServe binds addr (port 0 picks a free port), logs the resulting
// URL, and serves until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	log.Info("viewer listening", "url", fmt.Sprintf("http://%s/", ln.Addr()))
	return http.Serve(ln, s.Handler())
}
