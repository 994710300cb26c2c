package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/taktgrid/schedule"
)

var (
	headerColor   = color.New(color.Bold)
	criticalColor = color.New(color.FgRed, color.Bold)
	okColor       = color.New(color.FgGreen)
	warnColor     = color.New(color.FgYellow)
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// printResult renders the schedule as a fixed-width table, critical cells
// in red, followed by the summary lines.
func printResult(w io.Writer, res *schedule.Result) {
	headerColor.Fprintf(w, "%-6s %-14s %-14s %9s %9s %9s  %s\n",
		"CELL", "LOCATION", "WAGON", "START", "FINISH", "DURATION", "CRITICAL")
	for _, c := range res.CellSchedule {
		line := fmt.Sprintf("%-6s %-14s %-14s %9.2f %9.2f %9.2f  %v",
			fmt.Sprintf("%d,%d", c.LocationIndex, c.WagonIndex),
			c.LocationID, c.WagonID, c.Start, c.Finish, c.Duration, c.IsCritical)
		if c.IsCritical {
			criticalColor.Fprintln(w, line)
		} else {
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintln(w)
	headerColor.Fprint(w, "project finish: ")
	fmt.Fprintf(w, "%g\n", res.ProjectFinishDate)
	headerColor.Fprint(w, "critical cells: ")
	fmt.Fprintf(w, "%v\n", res.CriticalCells)
	headerColor.Fprint(w, "takt variance:  ")
	fmt.Fprintf(w, "%.3f\n", res.TotalTaktVariance)
}

// printValidation reports the stacking scan over an already-valid plan
// (structural failures surface as errors before this point).
func printValidation(w io.Writer, res *schedule.Result, conflicts []schedule.StackingConflict) {
	okColor.Fprintln(w, "plan is schedulable: durations, dependencies and acyclicity OK")
	if len(conflicts) == 0 {
		okColor.Fprintln(w, "no trade stacking detected")

		return
	}

	warnColor.Fprintf(w, "%d trade stacking conflict(s):\n", len(conflicts))
	for _, c := range conflicts {
		warnColor.Fprintf(w, "  zone %s: %s overlaps %s during [%g, %g)\n",
			c.LocationID, c.WagonA, c.WagonB, c.OverlapStart, c.OverlapEnd)
	}
	fmt.Fprintf(w, "project finish: %g\n", res.ProjectFinishDate)
}
