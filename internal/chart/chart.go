// Package chart renders a schedule as a Gantt chart on a terminal. It is
// pure presentation: it consumes the computed schedule plus the task records
// and writes styled text, nothing else.
package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/calebwray/spanloom/internal/schedule"
	"github.com/calebwray/spanloom/internal/task"
	"github.com/calebwray/spanloom/internal/ui"
)

// Options controls chart geometry and styling.
type Options struct {
	WeekDays   int                // days per week column
	DayCells   int                // terminal cells per day
	TitleWidth int                // width of the title column
	Theme      ui.Theme           // color palette
	Analysis   *schedule.Analysis // optional critical-path highlighting
}

func (o Options) withDefaults() Options {
	if o.WeekDays <= 0 {
		o.WeekDays = 5
	}
	if o.DayCells <= 0 {
		o.DayCells = 2
	}
	if o.TitleWidth <= 0 {
		o.TitleWidth = 24
	}
	if o.Theme.Bar == nil {
		o.Theme = ui.Light()
	}
	return o
}

// Render draws one row per task, ordered by ID, with the bar offset by the
// task's start day. Week columns follow the source convention of five
// working days per week.
func Render(w io.Writer, tasks task.Set, sched *schedule.Schedule, opts Options) {
	opts = opts.withDefaults()

	if sched.Len() == 0 {
		fmt.Fprintln(w, ui.Dim("(no tasks)"))
		return
	}

	ids := tasks.SortedIDs()
	totalDays := sched.TotalDays()
	weeks := int(totalDays/float64(opts.WeekDays)) + 1
	weekCells := opts.WeekDays * opts.DayCells
	gridCells := weeks * weekCells

	idWidth := 2
	for _, id := range ids {
		if len(id) > idWidth {
			idWidth = len(id)
		}
	}

	// Header: one block per week
	var header strings.Builder
	for wk := 0; wk < weeks; wk++ {
		label := fmt.Sprintf("Week %d", wk+1)
		if len(label) > weekCells-1 {
			label = label[:weekCells-1]
		}
		header.WriteString("|" + pad(label, weekCells-1))
	}
	fmt.Fprintf(w, "%s %s %s\n",
		pad("", idWidth), pad("", opts.TitleWidth), opts.Theme.Header(header.String()))

	for _, id := range ids {
		t := tasks[id]
		start, _ := sched.Start(id)

		cells := make([]byte, gridCells)
		for i := range cells {
			cells[i] = ' '
		}
		for wk := 0; wk < weeks; wk++ {
			cells[wk*weekCells] = '|'
		}

		barStart := int(math.Round(start * float64(opts.DayCells)))
		barWidth := int(math.Round(t.Duration * float64(opts.DayCells)))
		if barStart > gridCells {
			barStart = gridCells
		}
		if barStart+barWidth > gridCells {
			barWidth = gridCells - barStart
		}

		barStyle := opts.Theme.Bar
		if opts.Analysis != nil && opts.Analysis.IsCritical(id) {
			barStyle = opts.Theme.Critical
		}

		var bar string
		if t.Duration == 0 {
			bar = "◆" // zero-length milestone
		} else {
			bar = strings.Repeat("█", barWidth)
		}

		fmt.Fprintf(w, "%s %s %s%s%s\n",
			opts.Theme.Label(pad(string(id), idWidth)),
			opts.Theme.Label(pad(clip(t.Title, opts.TitleWidth), opts.TitleWidth)),
			opts.Theme.Grid(string(cells[:barStart])),
			barStyle(bar),
			opts.Theme.Grid(string(cells[minInt(barStart+barWidth, gridCells):])))
	}

	fmt.Fprintf(w, "\n%s %s\n", ui.Bold("Total:"), fmt.Sprintf("%g days", totalDays))
	if opts.Analysis != nil && len(opts.Analysis.CriticalPath) > 0 {
		path := make([]string, len(opts.Analysis.CriticalPath))
		for i, id := range opts.Analysis.CriticalPath {
			path[i] = string(id)
		}
		fmt.Fprintf(w, "%s %s\n", ui.Bold("Critical path:"), ui.Red(strings.Join(path, " -> ")))
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func clip(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
