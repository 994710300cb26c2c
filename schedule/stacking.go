package schedule

// StackingConflict reports two trades whose computed work windows overlap
// inside the same zone — "trade stacking", a takt-plan smell rather than
// a scheduling error.
type StackingConflict struct {
	LocationIndex int     `json:"locationIndex"`
	LocationID    string  `json:"locationId"`
	WagonA        string  `json:"wagonA"`
	WagonB        string  `json:"wagonB"`
	OverlapStart  float64 `json:"overlapStart"`
	OverlapEnd    float64 `json:"overlapEnd"`
}

// Stacking scans a computed Result for trade stacking: pairs of cells in
// the same location whose [start, finish) windows intersect. With default
// takt adjacency this never fires (the zone constraint serializes trades
// within a location); explicit dependency overrides can reintroduce it.
//
// Diagnostic only — conflicts never block scheduling. Conflicts are
// emitted in grid-scan order of the first cell, then of the second.
// Complexity: O(L×W²) time.
func Stacking(res *Result) []StackingConflict {
	// Bucket cells per location, preserving grid-scan order.
	byLocation := make(map[int][]CellSchedule)
	maxLoc := -1
	for _, c := range res.CellSchedule {
		byLocation[c.LocationIndex] = append(byLocation[c.LocationIndex], c)
		if c.LocationIndex > maxLoc {
			maxLoc = c.LocationIndex
		}
	}

	var conflicts []StackingConflict
	for loc := 0; loc <= maxLoc; loc++ {
		cells := byLocation[loc]
		for i := 0; i < len(cells); i++ {
			for j := i + 1; j < len(cells); j++ {
				a, b := cells[i], cells[j]
				// Half-open intervals: touching windows do not overlap.
				if a.Start < b.Finish && b.Start < a.Finish {
					overlapStart := a.Start
					if b.Start > overlapStart {
						overlapStart = b.Start
					}
					overlapEnd := a.Finish
					if b.Finish < overlapEnd {
						overlapEnd = b.Finish
					}
					conflicts = append(conflicts, StackingConflict{
						LocationIndex: loc,
						LocationID:    a.LocationID,
						WagonA:        a.WagonID,
						WagonB:        b.WagonID,
						OverlapStart:  overlapStart,
						OverlapEnd:    overlapEnd,
					})
				}
			}
		}
	}

	return conflicts
}
