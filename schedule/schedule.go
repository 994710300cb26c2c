// Package schedule implements the takt CPM pipeline:
// builder → validator → sorter → forward pass → backward pass → assembler.
package schedule

import "github.com/katalvlaran/taktgrid/grid"

// Compute runs the full scheduling pipeline over in and returns the
// assembled Result. The engine is stateless: every call normalizes the
// grid, completes the dependency map, validates, sorts and schedules from
// scratch, holding nothing between invocations. Identical inputs always
// produce identical outputs, including slice ordering.
//
// Returns grid.ErrEmptyGrid when either axis is empty, otherwise the
// validator's error taxonomy (NullDurationError, NegativeDurationError,
// MissingDependencyError, CircularDependencyError). No partial schedule
// is ever returned.
// Complexity: O(V + E) per phase plus O(V² log V) sorter worst case.
func Compute(in grid.Input, options ...Option) (*Result, error) {
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 1. Normalize the grid and complete the dependency map.
	g, err := grid.New(in)
	if err != nil {
		return nil, err
	}

	// 2. Validate durations, referential integrity and acyclicity.
	//    The dense adjacency built here is reused below.
	d, err := validate(g)
	if err != nil {
		return nil, err
	}

	// 3. Deterministic topological order (tie-broken ready set).
	order := d.sort(opts.TieBreak)

	// 4. Forward pass: earliest start/finish and project finish.
	start, finish, projectFinish := forwardPass(g, d, order)

	// 5. Backward pass: latest start/finish, zero-float critical set.
	critical := backwardPass(g, d, order, start, projectFinish, opts.Epsilon)

	// 6. Assemble the per-cell output and the variance statistic.
	return assemble(g, d, order, start, finish, critical, projectFinish), nil
}
