// Package export writes a schedule as an SVG Gantt chart, the file-export
// counterpart of the terminal renderer.
package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/calebwray/spanloom/internal/schedule"
	"github.com/calebwray/spanloom/internal/task"
)

// Options controls the chart geometry. Zero values fall back to the
// classic 1000px canvas with a 250px title column and 40px rows.
type Options struct {
	Width      int
	TitleWidth int
	RowHeight  int
	BarHeight  int
	WeekDays   int
	Dark       bool
	Analysis   *schedule.Analysis // optional critical-path highlighting
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1000
	}
	if o.TitleWidth <= 0 {
		o.TitleWidth = 250
	}
	if o.RowHeight <= 0 {
		o.RowHeight = 40
	}
	if o.BarHeight <= 0 {
		o.BarHeight = 20
	}
	if o.WeekDays <= 0 {
		o.WeekDays = 5
	}
	return o
}

const (
	barFill      = "#f75d59"
	criticalFill = "#c0392b"
)

// SVG draws the chart for a computed schedule: a week grid across the top
// and one labeled bar per task, ordered by ID.
func SVG(w io.Writer, tasks task.Set, sched *schedule.Schedule, opts Options) {
	opts = opts.withDefaults()

	ids := tasks.SortedIDs()
	height := opts.RowHeight * (len(ids) + 1)

	bg, fg := "white", "black"
	if opts.Dark {
		bg, fg = "#2c2c2c", "white"
	}
	textStyle := fmt.Sprintf("font-family:Helvetica,sans-serif;font-size:14px;fill:%s", fg)

	canvas := svg.New(w)
	canvas.Start(opts.Width, height)
	canvas.Rect(0, 0, opts.Width, height, "fill:"+bg)

	totalDays := sched.TotalDays()
	weeks := int(totalDays/float64(opts.WeekDays)) + 1
	dayWidth := (opts.Width - opts.TitleWidth) / (weeks * opts.WeekDays)
	weekWidth := opts.WeekDays * dayWidth

	for wk := 0; wk < weeks; wk++ {
		x := opts.TitleWidth + wk*weekWidth
		canvas.Line(x, 0, x, height, "stroke:gray")
		canvas.Text(x+weekWidth/2, opts.RowHeight/2, fmt.Sprintf("Week %d", wk+1),
			textStyle+";text-anchor:middle")
	}

	y := opts.RowHeight
	for _, id := range ids {
		t := tasks[id]
		start, _ := sched.Start(id)

		canvas.Text(10, y+opts.RowHeight/2, string(id), textStyle)
		canvas.Text(40, y+opts.RowHeight/2, t.Title, textStyle)

		fill := barFill
		if opts.Analysis != nil && opts.Analysis.IsCritical(id) {
			fill = criticalFill
		}

		barX := opts.TitleWidth + int(start*float64(dayWidth))
		barY := y + (opts.RowHeight-opts.BarHeight)/2
		barW := int(t.Duration * float64(dayWidth))
		if barW == 0 {
			// milestone: a small square on the start day
			barW = opts.BarHeight / 2
		}
		canvas.Rect(barX, barY, barW, opts.BarHeight,
			fmt.Sprintf("fill:%s;stroke:black", fill))

		y += opts.RowHeight
	}

	canvas.End()
}
