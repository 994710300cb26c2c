package schedule

import (
	"fmt"

	"github.com/katalvlaran/taktgrid/grid"
)

// NullDurationError is returned when a cell has no duration entry (or a
// NaN sentinel standing in for a missing value).
type NullDurationError struct {
	Cell grid.Key
}

func (e *NullDurationError) Error() string {
	return fmt.Sprintf("schedule: duration missing for cell %q", e.Cell.String())
}

// NegativeDurationError is returned when a cell's duration is negative.
type NegativeDurationError struct {
	Cell  grid.Key
	Value float64
}

func (e *NegativeDurationError) Error() string {
	return fmt.Sprintf("schedule: negative duration %g for cell %q", e.Value, e.Cell.String())
}

// MissingDependencyError is returned when a cell's dependency list
// references a cell that does not exist in the grid.
type MissingDependencyError struct {
	Cell    grid.Key
	Missing grid.Key
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("schedule: cell %q depends on nonexistent cell %q", e.Cell.String(), e.Missing.String())
}

// CircularDependencyError is returned when the dependency graph contains
// at least one cycle. Remaining counts the cells that could not be
// processed by Kahn's algorithm, i.e. the cells still caught in a cycle.
type CircularDependencyError struct {
	Remaining int
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("schedule: circular dependency detected: %d cell(s) in a cycle", e.Remaining)
}
