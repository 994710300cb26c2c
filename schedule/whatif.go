package schedule

import (
	"errors"
	"math"

	"github.com/katalvlaran/taktgrid/grid"
)

// ErrNoScenarios indicates CompareScenarios was given an empty scenario list.
var ErrNoScenarios = errors.New("schedule: at least one scenario is required")

// Scenario is a named what-if change set: one or more duration deltas
// applied together before recomputation.
type Scenario struct {
	Name    string  `json:"name"`
	Changes []Delay `json:"changes"`
}

// WhatIfResult pairs the untouched baseline schedule with the schedule of
// the changed plan, plus the headline deltas a planner asks for first.
type WhatIfResult struct {
	Baseline  *Result            `json:"baseline"`
	Simulated *Result            `json:"simulated"`
	DeltaDays float64            `json:"deltaDays"` // simulated finish − baseline finish
	Stacking  []StackingConflict `json:"stacking"`  // conflicts in the simulated plan
}

// WhatIf runs a what-if scenario: compute the original plan, apply every
// change to a copied duration map, recompute the modified plan from
// scratch and report the delta. It generalizes PropagateDelay to a change
// set; deltas targeting the same cell accumulate in order.
//
// Every target cell is checked before any mutation — a missing duration
// yields NullDurationError and the caller's input is never touched.
// Deterministic end to end: no randomness, no state between calls.
// Complexity: two Compute runs plus O(V) for the copy and stacking scan.
func WhatIf(in grid.Input, changes []Delay, options ...Option) (*WhatIfResult, error) {
	baseline, err := Compute(in, options...)
	if err != nil {
		return nil, err
	}

	durations := make(map[grid.Key]float64, len(in.Durations))
	for k, d := range in.Durations {
		durations[k] = d
	}
	for _, change := range changes {
		target := grid.Key{Loc: change.LocationIndex, Wag: change.WagonIndex}
		current, ok := durations[target]
		if !ok || math.IsNaN(current) {
			return nil, &NullDurationError{Cell: target}
		}
		durations[target] = current + change.DelayDays
	}

	simulated, err := Compute(grid.Input{
		Locations:    in.Locations,
		Wagons:       in.Wagons,
		Durations:    durations,
		Dependencies: in.Dependencies,
	}, options...)
	if err != nil {
		return nil, err
	}

	return &WhatIfResult{
		Baseline:  baseline,
		Simulated: simulated,
		DeltaDays: simulated.ProjectFinishDate - baseline.ProjectFinishDate,
		Stacking:  Stacking(simulated),
	}, nil
}

// ScenarioOutcome is one scenario's what-if result annotated with the
// critical-path churn against the baseline.
type ScenarioOutcome struct {
	Name string `json:"name"`
	WhatIfResult
	GainedCritical []string `json:"gainedCritical"` // critical in simulated only
	LostCritical   []string `json:"lostCritical"`   // critical in baseline only
}

// Comparison is the outcome of evaluating several scenarios against one
// baseline. Recommended indexes the lowest-scoring outcome.
type Comparison struct {
	Baseline    *Result           `json:"baseline"`
	Outcomes    []ScenarioOutcome `json:"outcomes"`
	Recommended int               `json:"recommended"`
}

// stackingPenalty weights each trade-stacking conflict when scoring a
// scenario: one conflict costs as much as five days of slip.
const stackingPenalty = 5

// CompareScenarios runs every scenario through WhatIf and recommends the
// one with the lowest score — deltaDays + 5×stackingConflicts, lower is
// better, first wins ties — so the recommendation is deterministic for a
// fixed input. Returns ErrNoScenarios on an empty list; any scenario
// failing validation aborts the whole comparison (fail-fast, no partial
// comparison is returned).
// Complexity: one Compute per scenario plus one for the baseline.
func CompareScenarios(in grid.Input, scenarios []Scenario, options ...Option) (*Comparison, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	cmp := &Comparison{Outcomes: make([]ScenarioOutcome, 0, len(scenarios))}
	bestScore := math.Inf(1)
	for i, sc := range scenarios {
		res, err := WhatIf(in, sc.Changes, options...)
		if err != nil {
			return nil, err
		}
		cmp.Baseline = res.Baseline // identical for every scenario

		outcome := ScenarioOutcome{
			Name:           sc.Name,
			WhatIfResult:   *res,
			GainedCritical: diffKeys(res.Simulated.CriticalCells, res.Baseline.CriticalCells),
			LostCritical:   diffKeys(res.Baseline.CriticalCells, res.Simulated.CriticalCells),
		}
		cmp.Outcomes = append(cmp.Outcomes, outcome)

		score := res.DeltaDays + float64(stackingPenalty*len(res.Stacking))
		if score < bestScore {
			bestScore = score
			cmp.Recommended = i
		}
	}

	return cmp, nil
}

// diffKeys returns the keys present in a but not in b, preserving a's order.
func diffKeys(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, k := range b {
		inB[k] = struct{}{}
	}
	var out []string
	for _, k := range a {
		if _, ok := inB[k]; !ok {
			out = append(out, k)
		}
	}

	return out
}
