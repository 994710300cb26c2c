package schedule_test

import (
	"testing"

	"github.com/katalvlaran/taktgrid/grid"
	"github.com/katalvlaran/taktgrid/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStacking_DefaultAdjacencyClean verifies the zone constraint keeps
// trades serialized within a location, so no stacking is reported.
func TestStacking_DefaultAdjacencyClean(t *testing.T) {
	res, err := schedule.Compute(uniformInput(3, 3, 2))
	require.NoError(t, err)

	assert.Empty(t, schedule.Stacking(res))
}

// TestStacking_OverrideIntroducesOverlap severs the zone constraint on
// (0,1) so both trades work zone 0 simultaneously.
func TestStacking_OverrideIntroducesOverlap(t *testing.T) {
	in := uniformInput(1, 2, 4)
	in.Dependencies = map[grid.Key][]grid.Key{
		{Loc: 0, Wag: 1}: {},
	}

	res, err := schedule.Compute(in)
	require.NoError(t, err)

	conflicts := schedule.Stacking(res)
	require.Len(t, conflicts, 1)
	c := conflicts[0]
	assert.Equal(t, 0, c.LocationIndex)
	assert.Equal(t, "trade-A", c.WagonA)
	assert.Equal(t, "trade-B", c.WagonB)
	assert.Equal(t, 0.0, c.OverlapStart)
	assert.Equal(t, 4.0, c.OverlapEnd)
}

// TestStacking_TouchingWindowsDoNotOverlap verifies half-open interval
// semantics: back-to-back windows are not a conflict.
func TestStacking_TouchingWindowsDoNotOverlap(t *testing.T) {
	res, err := schedule.Compute(uniformInput(1, 2, 3))
	require.NoError(t, err)

	// (0,0) runs 0→3, (0,1) runs 3→6: they touch at t=3.
	assert.Empty(t, schedule.Stacking(res))
}

// TestFlowline_Shape verifies the per-wagon segment reshaping of a 2×2
// uniform schedule.
func TestFlowline_Shape(t *testing.T) {
	res, err := schedule.Compute(uniformInput(2, 2, 2))
	require.NoError(t, err)

	fl := schedule.Flowline(res)
	assert.Equal(t, []string{"zone-A", "zone-B"}, fl.Locations)
	assert.Equal(t, 6.0, fl.TotalDays)
	require.Len(t, fl.Wagons, 2)

	first := fl.Wagons[0]
	assert.Equal(t, "trade-A", first.WagonID)
	require.Len(t, first.Segments, 2)
	assert.Equal(t, schedule.Segment{LocationIndex: 0, Start: 0, Finish: 2}, first.Segments[0])
	assert.Equal(t, schedule.Segment{LocationIndex: 1, Start: 2, Finish: 4}, first.Segments[1])

	second := fl.Wagons[1]
	assert.Equal(t, "trade-B", second.WagonID)
	require.Len(t, second.Segments, 2)
	assert.Equal(t, schedule.Segment{LocationIndex: 0, Start: 2, Finish: 4}, second.Segments[0])
	assert.Equal(t, schedule.Segment{LocationIndex: 1, Start: 4, Finish: 6}, second.Segments[1])
}
