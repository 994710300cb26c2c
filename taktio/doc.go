// Package taktio loads takt plan files into grid.Input.
//
// What:
//
//   - PlanFile is the neutral file schema: locations, wagons, a
//     durations map keyed by "i,j" cell strings and an optional partial
//     dependencies map.
//   - ParsePlanYAML / LoadPlanYAML decode YAML (and, since YAML is a
//     superset, plain JSON) plan files.
//   - ParsePlanHCL / LoadPlanHCL decode HCL plan files with labeled
//     location/wagon/dependency blocks.
//   - LoadPlan dispatches on the file extension.
//
// Why:
//
//   - The engine core is pure and I/O-free; everything file-shaped lives
//     here so the scheduler never sees a byte of YAML or HCL.
//
// Errors:
//
//   - ErrEmptyPlan: the payload is empty.
//   - ErrPlanFormat: the file extension is not .yaml/.yml/.json/.hcl.
//   - grid.ErrKeyFormat (wrapped): a durations/dependencies key is not "i,j".
//   - Decoder errors are wrapped with the offending path.
package taktio
