package schedule

import (
	"math"

	"github.com/katalvlaran/taktgrid/grid"
)

// PropagateDelay applies delay.DelayDays to the duration of the single
// target cell and re-invokes the entire pipeline on the modified input.
// All other durations and all dependencies are left untouched.
//
// Full recomputation is deliberate: grids (zones × trades) are small, so
// recomputing is cheap and categorically avoids partial-update bugs that
// incremental rescheduling would invite.
//
// Returns NullDurationError when the target cell has no duration entry
// (checked before any mutation), otherwise whatever Compute returns.
// The input maps are never mutated; the target duration is rewritten on
// a copy.
// Complexity: that of Compute plus O(V) for the duration-map copy.
func PropagateDelay(in grid.Input, delay Delay, options ...Option) (*Result, error) {
	target := grid.Key{Loc: delay.LocationIndex, Wag: delay.WagonIndex}
	current, ok := in.Durations[target]
	if !ok || math.IsNaN(current) {
		return nil, &NullDurationError{Cell: target}
	}

	durations := make(map[grid.Key]float64, len(in.Durations))
	for k, d := range in.Durations {
		durations[k] = d
	}
	durations[target] = current + delay.DelayDays

	shifted := grid.Input{
		Locations:    in.Locations,
		Wagons:       in.Wagons,
		Durations:    durations,
		Dependencies: in.Dependencies,
	}

	return Compute(shifted, options...)
}
