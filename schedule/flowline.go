package schedule

import "sort"

// Segment is one straight piece of a wagon's flowline: the trade working
// in one zone from Start to Finish (x = time, y = location index).
type Segment struct {
	LocationIndex int     `json:"locationIndex"`
	Start         float64 `json:"start"`
	Finish        float64 `json:"finish"`
}

// WagonLine is the flowline of one trade across all zones, segments
// ordered by start time (then by location for simultaneous starts).
type WagonLine struct {
	WagonIndex int       `json:"wagonIndex"`
	WagonID    string    `json:"wagonId"`
	Segments   []Segment `json:"segments"`
}

// FlowlineData is the plot-ready reshaping of a Result: one polyline per
// wagon over the time×zone plane, plus the overall finish for axis scaling.
type FlowlineData struct {
	Locations []string    `json:"locations"` // location IDs, row order
	Wagons    []WagonLine `json:"wagons"`
	TotalDays float64     `json:"totalDays"`
}

// Flowline reshapes a computed Result into flowline-chart data. It is a
// pure projection — no new scheduling information is computed.
// Wagons appear in column order; within a wagon, segments are sorted by
// (start, location).
// Complexity: O(V log V) time.
func Flowline(res *Result) *FlowlineData {
	maxLoc, maxWag := -1, -1
	for _, c := range res.CellSchedule {
		if c.LocationIndex > maxLoc {
			maxLoc = c.LocationIndex
		}
		if c.WagonIndex > maxWag {
			maxWag = c.WagonIndex
		}
	}

	data := &FlowlineData{
		Locations: make([]string, maxLoc+1),
		Wagons:    make([]WagonLine, maxWag+1),
		TotalDays: res.ProjectFinishDate,
	}
	for _, c := range res.CellSchedule {
		data.Locations[c.LocationIndex] = c.LocationID
		line := &data.Wagons[c.WagonIndex]
		line.WagonIndex = c.WagonIndex
		line.WagonID = c.WagonID
		line.Segments = append(line.Segments, Segment{
			LocationIndex: c.LocationIndex,
			Start:         c.Start,
			Finish:        c.Finish,
		})
	}
	for i := range data.Wagons {
		segs := data.Wagons[i].Segments
		sort.Slice(segs, func(a, b int) bool {
			if segs[a].Start != segs[b].Start {
				return segs[a].Start < segs[b].Start
			}

			return segs[a].LocationIndex < segs[b].LocationIndex
		})
	}

	return data
}
