package taktio

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/taktgrid/grid"
)

// hclLocation is a `location "<id>" { sequence = N }` block.
type hclLocation struct {
	ID       string `hcl:"id,label"`
	Sequence int    `hcl:"sequence"`
}

// hclWagon is a `wagon "<id>" { sequence = N }` block.
type hclWagon struct {
	ID       string `hcl:"id,label"`
	Sequence int    `hcl:"sequence"`
}

// hclDependency is a `dependency "<i,j>" { on = [...] }` block overriding
// one cell's predecessor list.
type hclDependency struct {
	Cell string   `hcl:"cell,label"`
	On   []string `hcl:"on"`
}

// hclPlan is the top-level HCL plan schema.
type hclPlan struct {
	Locations    []hclLocation      `hcl:"location,block"`
	Wagons       []hclWagon         `hcl:"wagon,block"`
	Durations    map[string]float64 `hcl:"durations,optional"`
	Dependencies []hclDependency    `hcl:"dependency,block"`
}

// toPlanFile reshapes the HCL form into the neutral PlanFile.
func (p hclPlan) toPlanFile() PlanFile {
	plan := PlanFile{Durations: p.Durations}
	for _, l := range p.Locations {
		plan.Locations = append(plan.Locations, PlanLocation{ID: l.ID, Sequence: l.Sequence})
	}
	for _, w := range p.Wagons {
		plan.Wagons = append(plan.Wagons, PlanWagon{ID: w.ID, Sequence: w.Sequence})
	}
	if len(p.Dependencies) > 0 {
		plan.Dependencies = make(map[string][]string, len(p.Dependencies))
		for _, d := range p.Dependencies {
			plan.Dependencies[d.Cell] = d.On
		}
	}

	return plan
}

// ParsePlanHCL decodes a takt plan from HCL source bytes; filename is
// used in diagnostics only.
func ParsePlanHCL(filename string, src []byte) (grid.Input, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return grid.Input{}, fmt.Errorf("taktio: parse HCL plan %s: %s", filename, diags.Error())
	}

	var plan hclPlan
	if diags = gohcl.DecodeBody(file.Body, nil, &plan); diags.HasErrors() {
		return grid.Input{}, fmt.Errorf("taktio: decode HCL plan %s: %s", filename, diags.Error())
	}

	return plan.toPlanFile().Input()
}

// LoadPlanHCL loads an HCL takt plan from an explicit file path.
func LoadPlanHCL(path string) (grid.Input, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return grid.Input{}, fmt.Errorf("taktio: parse HCL plan %s: %s", path, diags.Error())
	}

	var plan hclPlan
	if diags = gohcl.DecodeBody(file.Body, nil, &plan); diags.HasErrors() {
		return grid.Input{}, fmt.Errorf("taktio: decode HCL plan %s: %s", path, diags.Error())
	}

	return plan.toPlanFile().Input()
}
