// Package grid models the takt planning surface: an ordered set of
// locations (zones, grid rows) crossed with an ordered set of wagons
// (trades, grid columns), addressed by composite cell keys.
//
// What:
//
//   - Key is a value-equal (location, wagon) pair with the canonical
//     "i,j" string form used across inputs and outputs.
//   - Input carries locations, wagons, per-cell durations and an
//     optional, partial dependency map.
//   - BuildDependencies completes the dependency map: explicit entries
//     are taken verbatim, every other cell receives the default takt
//     adjacency — its flow predecessor (i-1,j) and zone predecessor (i,j-1).
//   - Grid is the normalized, immutable layout with dense row-major cell
//     indexing shared by validation and scheduling.
//
// Why:
//
//   - Takt trains flow trade-by-trade through zone-by-zone; the default
//     adjacency encodes exactly that double constraint.
//   - Dense integer indices avoid string parsing and map churn in the
//     hot validation/sort/pass loops while the "i,j" form stays available
//     for I/O.
//
// Complexity:
//
//   - BuildDependencies: O(L×W + E) time, O(L×W + E) memory.
//   - New:               O(L log L + W log W + L×W) time.
//   - Index/KeyAt/InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no locations or no wagons.
//   - ErrKeyFormat: a cell-key string is not of the form "i,j".
package grid
