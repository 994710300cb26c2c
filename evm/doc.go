// Package evm evaluates the standard Earned Value Management performance
// indices over externally supplied actuals.
//
// What:
//
//   - Evaluate maps Actuals{PV, EV, AC, BAC} to the classic indices:
//     SPI = EV/PV, CPI = EV/AC, SV = EV−PV, CV = EV−AC,
//     EAC = BAC/CPI, ETC = EAC−AC, VAC = BAC−EAC.
//
// Why:
//
//   - Progress-performance reporting alongside the takt schedule: is the
//     project ahead/behind (SPI, SV) and under/over budget (CPI, CV),
//     and where does cost land at completion (EAC, ETC, VAC).
//
// The package is pure formula evaluation — no graph structure, no state.
// Measuring PV/EV/AC against the schedule is the caller's concern.
//
// Errors:
//
//   - ErrZeroPlannedValue: PV = 0 makes SPI undefined.
//   - ErrZeroActualCost: AC = 0 makes CPI (and EAC) undefined.
//   - ErrZeroBudget: BAC = 0 makes EAC indeterminate when EV = 0.
//   - ErrNegativeActuals: any input value is negative.
package evm
