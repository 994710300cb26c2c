// Package schedule computes deterministic takt-time schedules over a
// location×wagon grid using the Critical Path Method.
//
// What:
//
//   - Compute runs the full pipeline: dependency completion, validation,
//     topological sort, forward pass (earliest start/finish), backward
//     pass (latest start/finish, zero-float critical set) and assembly.
//   - PropagateDelay shifts one cell's duration and recomputes the whole
//     pipeline from scratch — correctness by recomputation. WhatIf does
//     the same for a whole change set; CompareScenarios ranks named
//     change sets and recommends the least disruptive one.
//   - Stacking reports trades whose computed windows overlap inside one
//     zone; Flowline reshapes a result into per-wagon plot segments.
//
// Why:
//
//   - Takt planning needs the project finish, the per-cell windows and
//     the critical path bounding the minimum duration — exactly CPM
//     specialized to a grid whose dependency graph is implied by flow
//     and zone adjacency.
//   - Full recomputation on delay keeps the engine stateless and immune
//     to partial-update bugs; grids are small, so O(V+E) per call is cheap.
//
// Determinism:
//
//   - Every public operation is a pure function: identical inputs yield
//     identical outputs, including slice ordering. The ready set of the
//     topological sort is re-sorted before every dequeue; ties break
//     lexicographically on the "i,j" key string by default (see
//     WithNumericTieBreak for (loc,wag) ordering).
//
// Complexity:
//
//   - Validation, forward and backward passes: O(V + E) each.
//   - Topological sort: O(V² log V) worst case from ready-set re-sorting;
//     V = cells = locations×wagons, E = dependency edges.
//
// Errors:
//
//   - NullDurationError: a cell's duration is missing (or NaN).
//   - NegativeDurationError: a cell's duration is negative.
//   - MissingDependencyError: a dependency references a cell outside the grid.
//   - CircularDependencyError: the dependency graph contains a cycle.
//   - ErrNoScenarios: CompareScenarios got an empty scenario list.
//   - grid.ErrEmptyGrid: no locations or no wagons.
//
// All checks are fail-fast: the first violation aborts the computation
// before any scheduling work; no partial schedule is ever returned.
package schedule
