package schedule

import (
	"math"

	"github.com/katalvlaran/taktgrid/grid"
)

// validate runs the four pre-scheduling checks in order, failing fast on
// the first violation per phase. Cells are visited in grid-scan order so
// the reported cell is deterministic for a fixed input.
//
//  1. Duration completeness — every cell has an entry and it is not NaN
//     (the sentinel-for-missing value) → NullDurationError.
//  2. Duration non-negativity → NegativeDurationError.
//  3. Dependency referential integrity — every predecessor key addresses
//     a cell inside the grid → MissingDependencyError.
//  4. Acyclicity — Kahn's algorithm over the dense adjacency; any
//     unprocessed remainder is caught in a cycle → CircularDependencyError.
//
// On success it returns the dense adjacency so the sorter reuses the same
// construction instead of rebuilding it.
// Complexity: O(V + E) time (check 4 dominates).
func validate(g *grid.Grid) (*dag, error) {
	// 1. Duration completeness over the whole grid first: a missing entry
	//    anywhere outranks a negative one earlier in scan order.
	for _, k := range g.Keys() {
		if dur, ok := g.Durations[k]; !ok || math.IsNaN(dur) {
			return nil, &NullDurationError{Cell: k}
		}
	}

	// 2. Duration non-negativity.
	for _, k := range g.Keys() {
		if dur := g.Durations[k]; dur < 0 {
			return nil, &NegativeDurationError{Cell: k, Value: dur}
		}
	}

	// 3. Referential integrity of every dependency edge.
	for _, k := range g.Keys() {
		for _, p := range g.Deps[k] {
			if !g.InBounds(p) {
				return nil, &MissingDependencyError{Cell: k, Missing: p}
			}
		}
	}

	// 4. Acyclicity via Kahn's algorithm on the dense adjacency.
	d := newDAG(g)
	if order := d.sort(Numeric); len(order) < g.NumCells() {
		return nil, &CircularDependencyError{Remaining: g.NumCells() - len(order)}
	}

	return d, nil
}
