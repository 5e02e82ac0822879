// Package ui holds the terminal color palette shared by the chart renderer
// and the CLI output.
package ui

import "github.com/fatih/color"

// Sprint color functions for building styled strings.
var (
	Bold       = color.New(color.Bold).SprintFunc()
	Dim        = color.New(color.Faint).SprintFunc()
	Cyan       = color.New(color.FgCyan).SprintFunc()
	Green      = color.New(color.FgGreen).SprintFunc()
	Red        = color.New(color.FgRed).SprintFunc()
	Yellow     = color.New(color.FgYellow).SprintFunc()
	BoldCyan   = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldRed    = color.New(color.Bold, color.FgRed).SprintFunc()
	BoldWhite  = color.New(color.Bold, color.FgWhite).SprintFunc()
	BoldYellow = color.New(color.Bold, color.FgYellow).SprintFunc()
)

// Theme is the set of color functions a chart is drawn with.
type Theme struct {
	Header   func(a ...interface{}) string // week labels
	Label    func(a ...interface{}) string // task IDs and titles
	Grid     func(a ...interface{}) string // week separators
	Bar      func(a ...interface{}) string // task bars
	Critical func(a ...interface{}) string // bars on the critical path
}

// Light is the default theme for light terminals.
func Light() Theme {
	return Theme{
		Header:   Bold,
		Label:    color.New(color.FgBlack).SprintFunc(),
		Grid:     Dim,
		Bar:      Cyan,
		Critical: BoldRed,
	}
}

// Dark swaps in high-intensity colors that stay readable on dark
// backgrounds.
func Dark() Theme {
	return Theme{
		Header:   BoldWhite,
		Label:    color.New(color.FgHiWhite).SprintFunc(),
		Grid:     Dim,
		Bar:      color.New(color.FgHiCyan).SprintFunc(),
		Critical: color.New(color.Bold, color.FgHiRed).SprintFunc(),
	}
}

// Pick returns the dark or light theme.
func Pick(dark bool) Theme {
	if dark {
		return Dark()
	}
	return Light()
}
