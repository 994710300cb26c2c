package schedule_test

import (
	"testing"

	"github.com/katalvlaran/taktgrid/grid"
	"github.com/katalvlaran/taktgrid/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformInput builds an L×W grid with every duration set to dur and no
// explicit dependencies (defaults apply).
func uniformInput(numLoc, numWag int, dur float64) grid.Input {
	in := grid.Input{
		Durations: make(map[grid.Key]float64, numLoc*numWag),
	}
	for i := 0; i < numLoc; i++ {
		in.Locations = append(in.Locations, grid.Location{ID: "zone-" + string(rune('A'+i)), Sequence: i + 1})
	}
	for j := 0; j < numWag; j++ {
		in.Wagons = append(in.Wagons, grid.Wagon{ID: "trade-" + string(rune('A'+j)), Sequence: j + 1})
	}
	for i := 0; i < numLoc; i++ {
		for j := 0; j < numWag; j++ {
			in.Durations[grid.Key{Loc: i, Wag: j}] = dur
		}
	}

	return in
}

// entry fetches the CellSchedule record for (loc, wag).
func entry(t *testing.T, res *schedule.Result, loc, wag int) schedule.CellSchedule {
	t.Helper()
	for _, c := range res.CellSchedule {
		if c.LocationIndex == loc && c.WagonIndex == wag {
			return c
		}
	}
	t.Fatalf("no schedule entry for cell (%d,%d)", loc, wag)

	return schedule.CellSchedule{}
}

// TestCompute_TwoByTwoUniform walks the 2×2 grid with all durations = 2:
// two parallel length-3 chains of total duration 6, every cell critical,
// zero variance.
func TestCompute_TwoByTwoUniform(t *testing.T) {
	res, err := schedule.Compute(uniformInput(2, 2, 2))
	require.NoError(t, err)

	assert.Equal(t, 6.0, res.ProjectFinishDate)
	assert.Equal(t, 0.0, res.TotalTaktVariance)

	wantWindows := map[grid.Key][2]float64{
		{Loc: 0, Wag: 0}: {0, 2},
		{Loc: 0, Wag: 1}: {2, 4},
		{Loc: 1, Wag: 0}: {2, 4},
		{Loc: 1, Wag: 1}: {4, 6},
	}
	for k, want := range wantWindows {
		c := entry(t, res, k.Loc, k.Wag)
		assert.Equal(t, want[0], c.Start, "start of %s", k)
		assert.Equal(t, want[1], c.Finish, "finish of %s", k)
		assert.True(t, c.IsCritical, "cell %s must be critical", k)
	}
	assert.Equal(t, []string{"0,0", "0,1", "1,0", "1,1"}, res.CriticalCells)
}

// TestCompute_SingleChain walks 1 location × 3 wagons with durations
// [1,2,3]: a single chain 0→1, 1→3, 3→6, all critical, variance 0.667.
func TestCompute_SingleChain(t *testing.T) {
	in := uniformInput(1, 3, 0)
	in.Durations[grid.Key{Loc: 0, Wag: 0}] = 1
	in.Durations[grid.Key{Loc: 0, Wag: 1}] = 2
	in.Durations[grid.Key{Loc: 0, Wag: 2}] = 3

	res, err := schedule.Compute(in)
	require.NoError(t, err)

	assert.Equal(t, 6.0, res.ProjectFinishDate)
	assert.Equal(t, 0.667, res.TotalTaktVariance, "population variance of [1,2,3] rounds to 0.667")

	wantWindows := [][2]float64{{0, 1}, {1, 3}, {3, 6}}
	for j, want := range wantWindows {
		c := entry(t, res, 0, j)
		assert.Equal(t, want[0], c.Start)
		assert.Equal(t, want[1], c.Finish)
		assert.True(t, c.IsCritical)
	}
	assert.Equal(t, []string{"0,0", "0,1", "0,2"}, res.CriticalCells)
}

// TestCompute_ScheduleConsistency checks the CPM invariants on a larger
// non-uniform grid: finish = start + duration exactly, start ≥ every
// dependency's finish, and project finish aggregates the maximum.
func TestCompute_ScheduleConsistency(t *testing.T) {
	in := uniformInput(4, 5, 0)
	for k := range in.Durations {
		in.Durations[k] = float64((k.Loc*5+k.Wag)%7) + 0.5
	}

	res, err := schedule.Compute(in)
	require.NoError(t, err)

	byKey := make(map[grid.Key]schedule.CellSchedule, len(res.CellSchedule))
	maxFinish := 0.0
	for _, c := range res.CellSchedule {
		byKey[grid.Key{Loc: c.LocationIndex, Wag: c.WagonIndex}] = c
		if c.Finish > maxFinish {
			maxFinish = c.Finish
		}
	}

	deps := grid.BuildDependencies(in)
	for k, c := range byKey {
		assert.Equal(t, c.Start+c.Duration, c.Finish, "finish must equal start+duration for %s", k)
		for _, p := range deps[k] {
			assert.GreaterOrEqual(t, c.Start, byKey[p].Finish, "%s must not start before %s finishes", k, p)
		}
	}
	assert.Equal(t, maxFinish, res.ProjectFinishDate, "project finish must be the max cell finish")
	assert.NotEmpty(t, res.CriticalCells, "an acyclic grid with ≥1 cell has a non-empty critical set")
}

// TestCompute_CriticalPathSelectsLongestChain verifies float shows up on
// the short branch: with an expensive first-row cell, the row-0 chain is
// critical and the slack cell is not.
func TestCompute_CriticalPathSelectsLongestChain(t *testing.T) {
	in := uniformInput(2, 2, 1)
	in.Durations[grid.Key{Loc: 0, Wag: 1}] = 10 // dominates (1,0)'s branch

	res, err := schedule.Compute(in)
	require.NoError(t, err)

	assert.Equal(t, 12.0, res.ProjectFinishDate)
	assert.True(t, entry(t, res, 0, 0).IsCritical)
	assert.True(t, entry(t, res, 0, 1).IsCritical)
	assert.True(t, entry(t, res, 1, 1).IsCritical)
	assert.False(t, entry(t, res, 1, 0).IsCritical, "the cheap parallel branch has float")
	assert.Equal(t, []string{"0,0", "0,1", "1,1"}, res.CriticalCells)
}

// TestCompute_Idempotence verifies two runs over identical input are
// deep-equal, the determinism property delay recomputation relies on.
func TestCompute_Idempotence(t *testing.T) {
	in := uniformInput(3, 4, 0)
	for k := range in.Durations {
		in.Durations[k] = float64(k.Loc+k.Wag) * 1.25
	}

	first, err := schedule.Compute(in)
	require.NoError(t, err)
	second, err := schedule.Compute(in)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must produce identical outputs")
}

// TestCompute_WithEpsilon verifies the criticality tolerance is tunable:
// a branch carrying ~1e-9 of float is non-critical under the default
// tolerance but critical under a looser one, and a non-positive override
// is ignored.
func TestCompute_WithEpsilon(t *testing.T) {
	in := uniformInput(2, 2, 1)
	in.Durations[grid.Key{Loc: 0, Wag: 1}] = 5
	in.Durations[grid.Key{Loc: 1, Wag: 0}] = 5 - 1e-9 // float ≈ 1e-9 on this branch

	res, err := schedule.Compute(in)
	require.NoError(t, err)
	assert.False(t, entry(t, res, 1, 0).IsCritical, "1e-9 of float exceeds the default tolerance")

	loose, err := schedule.Compute(in, schedule.WithEpsilon(1e-6))
	require.NoError(t, err)
	assert.True(t, entry(t, loose, 1, 0).IsCritical, "a looser tolerance absorbs the float")
	assert.Equal(t, res.ProjectFinishDate, loose.ProjectFinishDate, "the tolerance only affects criticality")

	ignored, err := schedule.Compute(in, schedule.WithEpsilon(-1))
	require.NoError(t, err)
	assert.Equal(t, res.CriticalCells, ignored.CriticalCells, "non-positive overrides keep the default")
}

// TestCompute_EmptyGrid verifies grid.ErrEmptyGrid surfaces unchanged.
func TestCompute_EmptyGrid(t *testing.T) {
	_, err := schedule.Compute(grid.Input{})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestCompute_ZeroDurations verifies zero durations are legal: everything
// collapses onto t=0 and the whole grid is critical.
func TestCompute_ZeroDurations(t *testing.T) {
	res, err := schedule.Compute(uniformInput(2, 3, 0))
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.ProjectFinishDate)
	for _, c := range res.CellSchedule {
		assert.Equal(t, 0.0, c.Start)
		assert.Equal(t, 0.0, c.Finish)
		assert.True(t, c.IsCritical)
	}
}
