// Package taktio defines the neutral plan-file schema and its conversion
// into engine input.
package taktio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/taktgrid/grid"
)

// Sentinel errors for plan loading.
var (
	// ErrEmptyPlan indicates the plan payload is empty.
	ErrEmptyPlan = errors.New("taktio: plan payload is empty")
	// ErrPlanFormat indicates an unsupported plan-file extension.
	ErrPlanFormat = errors.New("taktio: plan file must be .yaml, .yml, .json or .hcl")
)

// PlanLocation is one zone entry of a plan file.
type PlanLocation struct {
	ID       string `yaml:"id"`
	Sequence int    `yaml:"sequence"`
}

// PlanWagon is one trade entry of a plan file.
type PlanWagon struct {
	ID       string `yaml:"id"`
	Sequence int    `yaml:"sequence"`
}

// PlanFile is the on-disk takt plan: the decoder-neutral middle ground
// between YAML/HCL sources and grid.Input. Durations and Dependencies
// are keyed by canonical "i,j" cell strings.
type PlanFile struct {
	Locations    []PlanLocation      `yaml:"locations"`
	Wagons       []PlanWagon         `yaml:"wagons"`
	Durations    map[string]float64  `yaml:"durations"`
	Dependencies map[string][]string `yaml:"dependencies"`
}

// Input converts the plan into grid.Input, parsing every "i,j" key.
// Returns grid.ErrKeyFormat (wrapped with context) on a malformed key.
// Grid-level validation (coverage, bounds, cycles) is left to the engine.
func (p PlanFile) Input() (grid.Input, error) {
	in := grid.Input{
		Locations: make([]grid.Location, 0, len(p.Locations)),
		Wagons:    make([]grid.Wagon, 0, len(p.Wagons)),
	}
	for _, l := range p.Locations {
		in.Locations = append(in.Locations, grid.Location{ID: l.ID, Sequence: l.Sequence})
	}
	for _, w := range p.Wagons {
		in.Wagons = append(in.Wagons, grid.Wagon{ID: w.ID, Sequence: w.Sequence})
	}

	if p.Durations != nil {
		in.Durations = make(map[grid.Key]float64, len(p.Durations))
		for cell, dur := range p.Durations {
			k, err := grid.ParseKey(cell)
			if err != nil {
				return grid.Input{}, fmt.Errorf("taktio: durations: %w", err)
			}
			in.Durations[k] = dur
		}
	}

	if p.Dependencies != nil {
		in.Dependencies = make(map[grid.Key][]grid.Key, len(p.Dependencies))
		for cell, preds := range p.Dependencies {
			k, err := grid.ParseKey(cell)
			if err != nil {
				return grid.Input{}, fmt.Errorf("taktio: dependencies: %w", err)
			}
			keys := make([]grid.Key, 0, len(preds))
			for _, pred := range preds {
				pk, predErr := grid.ParseKey(pred)
				if predErr != nil {
					return grid.Input{}, fmt.Errorf("taktio: dependencies of %q: %w", cell, predErr)
				}
				keys = append(keys, pk)
			}
			in.Dependencies[k] = keys
		}
	}

	return in, nil
}
