package schedule

import (
	"math"

	"github.com/katalvlaran/taktgrid/grid"
)

// backwardPass computes the latest start/finish per cell and flags the
// zero-float critical set. Cells are processed in reverse topological
// order over the successor lists (the reverse of the dependency map):
//
//	lateFinish(cell) = min(lateStart(succ) for succ in succs(cell))
//	                   or projectFinish when the cell has no successors
//	lateStart(cell)  = lateFinish(cell) − duration(cell)
//
// A cell is critical iff |earlyStart − lateStart| < eps, the epsilon
// guarding against floating-point noise from the two passes.
// Returns the critical flags indexed by dense id.
// Complexity: O(V + E) time, O(V) memory.
func backwardPass(g *grid.Grid, d *dag, order []int, earlyStart []float64, projectFinish, eps float64) []bool {
	n := len(d.keys)
	lateFinish := make([]float64, n)
	lateStart := make([]float64, n)
	for id := 0; id < n; id++ {
		// Sink cells keep projectFinish as their late finish: they are
		// treated as finish-points of the project.
		lateFinish[id] = projectFinish
	}

	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		if len(d.succs[id]) > 0 {
			minLS := math.Inf(1)
			for _, succ := range d.succs[id] {
				if lateStart[succ] < minLS {
					minLS = lateStart[succ]
				}
			}
			lateFinish[id] = minLS
		}
		lateStart[id] = lateFinish[id] - g.Durations[d.keys[id]]
	}

	critical := make([]bool, n)
	for id := 0; id < n; id++ {
		critical[id] = math.Abs(earlyStart[id]-lateStart[id]) < eps
	}

	return critical
}
