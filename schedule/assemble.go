package schedule

import (
	"math"

	"github.com/katalvlaran/taktgrid/grid"
)

// assemble combines the forward-pass schedule, the critical flags and the
// grid metadata into the final Result. CellSchedule entries are emitted
// in grid-scan order — (0,0), (0,1), … — not topological order, while
// CriticalCells follows the topological order so tie-breaking decides the
// relative position of unrelated critical cells.
// Complexity: O(V) time and memory.
func assemble(g *grid.Grid, d *dag, order []int, start, finish []float64, critical []bool, projectFinish float64) *Result {
	cells := make([]CellSchedule, 0, g.NumCells())
	for id, k := range d.keys { // dense ids are grid-scan order
		cells = append(cells, CellSchedule{
			LocationIndex: k.Loc,
			WagonIndex:    k.Wag,
			LocationID:    g.Locations[k.Loc].ID,
			WagonID:       g.Wagons[k.Wag].ID,
			Start:         start[id],
			Finish:        finish[id],
			Duration:      g.Durations[k],
			IsCritical:    critical[id],
		})
	}

	criticalKeys := make([]string, 0, len(order))
	for _, id := range order {
		if critical[id] {
			criticalKeys = append(criticalKeys, d.keyStrs[id])
		}
	}

	return &Result{
		ProjectFinishDate: projectFinish,
		CellSchedule:      cells,
		CriticalCells:     criticalKeys,
		TotalTaktVariance: taktVariance(g, d.keys),
	}
}

// taktVariance computes the population variance of all cell durations —
// mean = Σd/n, variance = Σ(d−mean)²/n — rounded to 3 decimal places.
// A uniform takt yields 0; the statistic measures how far the plan
// deviates from a constant beat.
// Complexity: O(V) time.
func taktVariance(g *grid.Grid, keys []grid.Key) float64 {
	n := float64(len(keys))
	if n == 0 {
		return 0
	}
	var sum float64
	for _, k := range keys {
		sum += g.Durations[k]
	}
	mean := sum / n

	var sq float64
	for _, k := range keys {
		delta := g.Durations[k] - mean
		sq += delta * delta
	}

	return math.Round(sq/n*1000) / 1000
}
