package schedule

import (
	"sort"

	"github.com/katalvlaran/taktgrid/grid"
)

// dag is the dense adjacency view of a grid's completed dependency map:
// predecessor and successor lists plus in-degree counts indexed by the
// grid's row-major cell id. It is built once per pipeline run and shared
// by the acyclicity check, the topological sorter and the backward pass.
type dag struct {
	keys    []grid.Key // dense id → cell key, grid-scan order
	keyStrs []string   // dense id → canonical "i,j" form (tie-breaking)
	preds   [][]int    // dense id → predecessor ids
	succs   [][]int    // dense id → successor ids
	indeg   []int      // dense id → predecessor count
}

// newDAG builds the dense adjacency from g.Deps. The caller must have
// verified referential integrity first; out-of-grid keys would panic here.
// Complexity: O(V + E) time and memory.
func newDAG(g *grid.Grid) *dag {
	n := g.NumCells()
	d := &dag{
		keys:    g.Keys(),
		keyStrs: make([]string, n),
		preds:   make([][]int, n),
		succs:   make([][]int, n),
		indeg:   make([]int, n),
	}
	for id, k := range d.keys {
		d.keyStrs[id] = k.String()
	}
	for id, k := range d.keys {
		for _, p := range g.Deps[k] {
			pid := g.Index(p)
			d.preds[id] = append(d.preds[id], pid)
			d.succs[pid] = append(d.succs[pid], id)
			d.indeg[id]++
		}
	}

	return d
}

// sort runs Kahn's algorithm and returns the processed ids in order.
// The ready set is re-sorted before every dequeue so the order is fully
// deterministic for a fixed input: lexicographically by "i,j" string
// (Lexicographic) or by dense id, i.e. (loc, wag) pairs (Numeric).
//
// When the returned order is shorter than the cell count, the remainder
// forms one or more cycles; callers translate that into
// CircularDependencyError.
// Complexity: O(V² log V) worst case (re-sorting), O(V + E) otherwise.
func (d *dag) sort(tb TieBreak) []int {
	n := len(d.keys)
	indeg := make([]int, n)
	copy(indeg, d.indeg)

	ready := make([]int, 0, n)
	for id := 0; id < n; id++ {
		if indeg[id] == 0 {
			ready = append(ready, id)
		}
	}

	less := func(a, b int) bool { return ready[a] < ready[b] }
	if tb == Lexicographic {
		less = func(a, b int) bool { return d.keyStrs[ready[a]] < d.keyStrs[ready[b]] }
	}

	order := make([]int, 0, n)
	for len(ready) > 0 {
		// Deterministic dequeue: sort the whole ready set, take the head.
		sort.Slice(ready, less)
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		for _, succ := range d.succs[id] {
			indeg[succ]--
			if indeg[succ] == 0 {
				ready = append(ready, succ)
			}
		}
	}

	return order
}
