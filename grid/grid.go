package grid

import "sort"

// BuildDependencies completes the dependency map for every cell of the
// L×W grid described by in. For each cell (i,j):
//
//   - If in.Dependencies defines an entry for the cell, that list is used
//     verbatim (full replacement, not a merge — an explicit empty list
//     severs the default constraints).
//   - Otherwise the default takt adjacency applies: the flow predecessor
//     (i-1,j) when i > 0 and the zone predecessor (i,j-1) when j > 0.
//     Cell (0,0) has no predecessors.
//
// The result covers exactly len(Locations)×len(Wagons) cells.
// No side effects, no errors; referential checks are the validator's job.
// Complexity: O(L×W + E) time and memory.
func BuildDependencies(in Input) map[Key][]Key {
	numLoc, numWag := len(in.Locations), len(in.Wagons)
	deps := make(map[Key][]Key, numLoc*numWag)
	for i := 0; i < numLoc; i++ {
		for j := 0; j < numWag; j++ {
			k := Key{Loc: i, Wag: j}
			if explicit, ok := in.Dependencies[k]; ok {
				// Verbatim replacement; copy to keep the grid detached
				// from caller-owned slices.
				preds := make([]Key, len(explicit))
				copy(preds, explicit)
				deps[k] = preds

				continue
			}
			preds := make([]Key, 0, 2)
			if i > 0 {
				preds = append(preds, Key{Loc: i - 1, Wag: j})
			}
			if j > 0 {
				preds = append(preds, Key{Loc: i, Wag: j - 1})
			}
			deps[k] = preds
		}
	}

	return deps
}

// Grid is the normalized takt layout: locations and wagons ordered by
// their Sequence fields, a duration per cell, and the completed
// dependency map. It is immutable once built.
type Grid struct {
	Locations []Location
	Wagons    []Wagon
	Durations map[Key]float64
	Deps      map[Key][]Key
}

// New normalizes in into a Grid: locations and wagons are sorted by
// Sequence (stable, so equal sequences keep input order), durations are
// copied, and the dependency map is completed via BuildDependencies.
// Returns ErrEmptyGrid when either axis is empty.
// Complexity: O(L log L + W log W + L×W + E) time.
func New(in Input) (*Grid, error) {
	if len(in.Locations) == 0 || len(in.Wagons) == 0 {
		return nil, ErrEmptyGrid
	}
	// Sort copies by sequence; cell indices refer to sorted positions.
	locs := make([]Location, len(in.Locations))
	copy(locs, in.Locations)
	sort.SliceStable(locs, func(a, b int) bool { return locs[a].Sequence < locs[b].Sequence })
	wags := make([]Wagon, len(in.Wagons))
	copy(wags, in.Wagons)
	sort.SliceStable(wags, func(a, b int) bool { return wags[a].Sequence < wags[b].Sequence })

	durs := make(map[Key]float64, len(in.Durations))
	for k, d := range in.Durations {
		durs[k] = d
	}

	g := &Grid{
		Locations: locs,
		Wagons:    wags,
		Durations: durs,
		Deps:      BuildDependencies(in),
	}

	return g, nil
}

// NumCells reports the total cell count: len(Locations) × len(Wagons).
// Complexity: O(1).
func (g *Grid) NumCells() int {
	return len(g.Locations) * len(g.Wagons)
}

// InBounds reports whether k addresses a cell inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(k Key) bool {
	return k.Loc >= 0 && k.Loc < len(g.Locations) && k.Wag >= 0 && k.Wag < len(g.Wagons)
}

// Index maps k to its dense row-major index: loc*len(Wagons) + wag.
// The caller must ensure k is in bounds.
// Complexity: O(1).
func (g *Grid) Index(k Key) int {
	return k.Loc*len(g.Wagons) + k.Wag
}

// KeyAt converts a dense row-major index back to its Key.
// Complexity: O(1).
func (g *Grid) KeyAt(idx int) Key {
	return Key{Loc: idx / len(g.Wagons), Wag: idx % len(g.Wagons)}
}

// Keys lists every cell key in grid-scan order: (0,0), (0,1), …, (L-1,W-1).
// This is the canonical deterministic iteration order for validation and
// output assembly.
// Complexity: O(L×W).
func (g *Grid) Keys() []Key {
	keys := make([]Key, 0, g.NumCells())
	for i := 0; i < len(g.Locations); i++ {
		for j := 0; j < len(g.Wagons); j++ {
			keys = append(keys, Key{Loc: i, Wag: j})
		}
	}

	return keys
}
