// Package evm implements Earned Value Management formula evaluation.
package evm

import "errors"

// Sentinel errors for undefined or malformed actuals.
var (
	// ErrZeroPlannedValue indicates PV = 0, leaving SPI undefined.
	ErrZeroPlannedValue = errors.New("evm: planned value must be non-zero")
	// ErrZeroActualCost indicates AC = 0, leaving CPI and EAC undefined.
	ErrZeroActualCost = errors.New("evm: actual cost must be non-zero")
	// ErrZeroBudget indicates BAC = 0; with EV = 0 as well, EAC would be
	// the indeterminate 0/0.
	ErrZeroBudget = errors.New("evm: budget at completion must be non-zero")
	// ErrNegativeActuals indicates a negative input value.
	ErrNegativeActuals = errors.New("evm: actuals must be non-negative")
)

// Actuals are the externally measured progress inputs at one reporting
// point. All values share one currency unit.
type Actuals struct {
	PlannedValue       float64 `json:"plannedValue"`       // PV: budgeted cost of scheduled work
	EarnedValue        float64 `json:"earnedValue"`        // EV: budgeted cost of performed work
	ActualCost         float64 `json:"actualCost"`         // AC: real cost of performed work
	BudgetAtCompletion float64 `json:"budgetAtCompletion"` // BAC: total budget
}

// Metrics are the derived performance indices.
type Metrics struct {
	SPI float64 `json:"spi"` // schedule performance index: EV/PV
	CPI float64 `json:"cpi"` // cost performance index: EV/AC
	SV  float64 `json:"sv"`  // schedule variance: EV−PV
	CV  float64 `json:"cv"`  // cost variance: EV−AC
	EAC float64 `json:"eac"` // estimate at completion: BAC/CPI
	ETC float64 `json:"etc"` // estimate to complete: EAC−AC
	VAC float64 `json:"vac"` // variance at completion: BAC−EAC
}

// Evaluate computes all indices from a. Pure formula evaluation: identical
// inputs always yield identical outputs.
// Returns ErrNegativeActuals on any negative input, ErrZeroPlannedValue
// when PV = 0, ErrZeroActualCost when AC = 0 and ErrZeroBudget when
// BAC = 0.
// A zero EV is legal (nothing earned yet): CPI = 0 and EAC = +Inf — at
// that burn rate the project never completes.
// Complexity: O(1).
func Evaluate(a Actuals) (Metrics, error) {
	if a.PlannedValue < 0 || a.EarnedValue < 0 || a.ActualCost < 0 || a.BudgetAtCompletion < 0 {
		return Metrics{}, ErrNegativeActuals
	}
	if a.PlannedValue == 0 {
		return Metrics{}, ErrZeroPlannedValue
	}
	if a.ActualCost == 0 {
		return Metrics{}, ErrZeroActualCost
	}
	if a.BudgetAtCompletion == 0 {
		return Metrics{}, ErrZeroBudget
	}

	m := Metrics{
		SPI: a.EarnedValue / a.PlannedValue,
		CPI: a.EarnedValue / a.ActualCost,
		SV:  a.EarnedValue - a.PlannedValue,
		CV:  a.EarnedValue - a.ActualCost,
	}
	m.EAC = a.BudgetAtCompletion / m.CPI
	m.ETC = m.EAC - a.ActualCost
	m.VAC = a.BudgetAtCompletion - m.EAC

	return m, nil
}
