package schedule_test

import (
	"testing"

	"github.com/katalvlaran/taktgrid/grid"
	"github.com/katalvlaran/taktgrid/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPropagateDelay_ShiftsProjectFinish verifies a delay on a critical
// cell pushes the project finish by exactly the delta.
func TestPropagateDelay_ShiftsProjectFinish(t *testing.T) {
	in := uniformInput(2, 2, 2)

	res, err := schedule.PropagateDelay(in, schedule.Delay{LocationIndex: 0, WagonIndex: 0, DelayDays: 3})
	require.NoError(t, err)

	assert.Equal(t, 9.0, res.ProjectFinishDate, "critical-cell delay shifts finish 6 → 9")
	c := entry(t, res, 0, 0)
	assert.Equal(t, 5.0, c.Duration, "target duration 2 + delay 3")
	assert.Equal(t, 2.0, in.Durations[grid.Key{Loc: 0, Wag: 0}], "caller's input must stay untouched")
}

// TestPropagateDelay_Monotonicity verifies a positive delay never
// decreases the project finish, wherever it lands.
func TestPropagateDelay_Monotonicity(t *testing.T) {
	in := uniformInput(3, 3, 0)
	for k := range in.Durations {
		in.Durations[k] = float64((k.Loc*3+k.Wag)%4) + 1
	}
	base, err := schedule.Compute(in)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res, delayErr := schedule.PropagateDelay(in, schedule.Delay{LocationIndex: i, WagonIndex: j, DelayDays: 2.5})
			require.NoError(t, delayErr)
			assert.GreaterOrEqual(t, res.ProjectFinishDate, base.ProjectFinishDate,
				"delaying (%d,%d) must not shorten the project", i, j)
		}
	}
}

// TestPropagateDelay_FloatAbsorbsDelay verifies a small delay on a
// non-critical cell is absorbed by its float and leaves the finish alone.
func TestPropagateDelay_FloatAbsorbsDelay(t *testing.T) {
	in := uniformInput(2, 2, 1)
	in.Durations[grid.Key{Loc: 0, Wag: 1}] = 10 // gives (1,0) nine units of float

	res, err := schedule.PropagateDelay(in, schedule.Delay{LocationIndex: 1, WagonIndex: 0, DelayDays: 4})
	require.NoError(t, err)

	assert.Equal(t, 12.0, res.ProjectFinishDate, "delay inside float leaves the project finish unchanged")
	assert.False(t, entry(t, res, 1, 0).IsCritical, "the delayed cell still has float left")
}

// TestPropagateDelay_MissingTarget verifies the target-duration check
// fires before any mutation or recomputation.
func TestPropagateDelay_MissingTarget(t *testing.T) {
	in := uniformInput(2, 2, 1)
	delete(in.Durations, grid.Key{Loc: 1, Wag: 1})

	_, err := schedule.PropagateDelay(in, schedule.Delay{LocationIndex: 1, WagonIndex: 1, DelayDays: 1})
	var nullErr *schedule.NullDurationError
	require.ErrorAs(t, err, &nullErr)
	assert.Equal(t, grid.Key{Loc: 1, Wag: 1}, nullErr.Cell)
}

// TestPropagateDelay_EqualsDirectCompute verifies delay propagation is
// nothing but Compute over the shifted input — full recomputation.
func TestPropagateDelay_EqualsDirectCompute(t *testing.T) {
	in := uniformInput(3, 2, 2)

	delayed, err := schedule.PropagateDelay(in, schedule.Delay{LocationIndex: 1, WagonIndex: 1, DelayDays: 1.5})
	require.NoError(t, err)

	in.Durations[grid.Key{Loc: 1, Wag: 1}] = 3.5
	direct, err := schedule.Compute(in)
	require.NoError(t, err)

	assert.Equal(t, direct, delayed)
}

// TestPropagateDelay_NegativeDeltaValidated verifies an acceleration that
// drives the duration negative is rejected by the validator downstream.
func TestPropagateDelay_NegativeDeltaValidated(t *testing.T) {
	in := uniformInput(2, 2, 1)

	_, err := schedule.PropagateDelay(in, schedule.Delay{LocationIndex: 0, WagonIndex: 1, DelayDays: -2})
	var negErr *schedule.NegativeDurationError
	require.ErrorAs(t, err, &negErr)
	assert.Equal(t, grid.Key{Loc: 0, Wag: 1}, negErr.Cell)
	assert.Equal(t, -1.0, negErr.Value)
}
