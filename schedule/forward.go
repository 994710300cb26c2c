package schedule

import "github.com/katalvlaran/taktgrid/grid"

// forwardPass computes the earliest start and finish per cell, processing
// ids strictly in topological order so every predecessor is already
// scheduled when its successor is reached:
//
//	start(cell)  = max(finish(dep) for dep in deps(cell)), 0 if none
//	finish(cell) = start(cell) + duration(cell)
//
// Arithmetic is exact float64; no rounding happens here.
// Returns the dense start/finish arrays and the project finish (the
// maximum finish over all cells, 0 for an empty order).
// Complexity: O(V + E) time, O(V) memory.
func forwardPass(g *grid.Grid, d *dag, order []int) (start, finish []float64, projectFinish float64) {
	n := len(d.keys)
	start = make([]float64, n)
	finish = make([]float64, n)

	for _, id := range order {
		es := 0.0
		for _, pred := range d.preds[id] {
			if finish[pred] > es {
				es = finish[pred]
			}
		}
		start[id] = es
		finish[id] = es + g.Durations[d.keys[id]]
		if finish[id] > projectFinish {
			projectFinish = finish[id]
		}
	}

	return start, finish, projectFinish
}
