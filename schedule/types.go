// Package schedule defines options and result types for takt CPM scheduling.
package schedule

// DefaultEpsilon is the float tolerance used when comparing earliest and
// latest starts for criticality. It guards against floating-point noise
// accumulated across the forward/backward passes.
const DefaultEpsilon = 1e-10

// TieBreak selects how the topological sorter orders the ready set before
// each dequeue.
//
//   - Lexicographic — cell keys compared as "i,j" strings. This is the
//     historical behavior; note that with ≥10 rows or columns "10,0"
//     sorts before "2,0". Start/finish times are unaffected (they depend
//     only on dependency order), only the relative order of unrelated
//     cells in CriticalCells and the processing order change.
//   - Numeric — cells compared by (location, wagon) pairs; grid-scan order.
type TieBreak int

const (
	// Lexicographic compares cell keys as strings (default).
	Lexicographic TieBreak = iota
	// Numeric compares cell keys as (location, wagon) integer pairs.
	Numeric
)

// Options configures Compute and PropagateDelay.
//
// Fields:
//   - Epsilon  — criticality tolerance: a cell is critical when
//     |earlyStart − lateStart| < Epsilon. Default 1e-10.
//   - TieBreak — ready-set ordering of the topological sorter.
//     Default Lexicographic.
type Options struct {
	Epsilon  float64
	TieBreak TieBreak
}

// Option configures optional behavior of the scheduling pipeline.
type Option func(*Options)

// DefaultOptions returns the default settings: Epsilon=1e-10,
// TieBreak=Lexicographic.
func DefaultOptions() Options {
	return Options{
		Epsilon:  DefaultEpsilon,
		TieBreak: Lexicographic,
	}
}

// WithEpsilon returns an Option that sets the criticality tolerance.
// Non-positive values are ignored (the default is retained).
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// WithNumericTieBreak returns an Option that switches the ready-set
// ordering from lexicographic key strings to (location, wagon) pairs.
func WithNumericTieBreak() Option {
	return func(o *Options) {
		o.TieBreak = Numeric
	}
}

// CellSchedule is the assembled output record for one cell, emitted in
// grid-scan order.
type CellSchedule struct {
	LocationIndex int     `json:"locationIndex"`
	WagonIndex    int     `json:"wagonIndex"`
	LocationID    string  `json:"locationId"`
	WagonID       string  `json:"wagonId"`
	Start         float64 `json:"start"`
	Finish        float64 `json:"finish"`
	Duration      float64 `json:"duration"`
	IsCritical    bool    `json:"isCritical"`
}

// Result is the full output of one pipeline run.
//
//   - ProjectFinishDate is the maximum finish over all cells, in time
//     units from t=0 (not a calendar date), unrounded.
//   - CellSchedule lists every cell in grid-scan order.
//   - CriticalCells lists zero-float cell keys in topological order.
//   - TotalTaktVariance is the population variance of all cell durations,
//     rounded to 3 decimal places.
type Result struct {
	ProjectFinishDate float64        `json:"project_finish_date"`
	CellSchedule      []CellSchedule `json:"cell_schedule"`
	CriticalCells     []string       `json:"critical_cells"`
	TotalTaktVariance float64        `json:"total_takt_variance"`
}

// Delay describes a duration delta applied to one cell before full
// recomputation. DelayDays adds to the cell's current duration (a
// negative value models an acceleration).
type Delay struct {
	LocationIndex int     `json:"locationIndex"`
	WagonIndex    int     `json:"wagonIndex"`
	DelayDays     float64 `json:"delayDays"`
}
