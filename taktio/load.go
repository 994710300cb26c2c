package taktio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/taktgrid/grid"
)

// LoadPlan loads a takt plan, dispatching on the file extension:
// .yaml/.yml/.json go through the YAML decoder, .hcl through the HCL
// decoder. Returns ErrPlanFormat (wrapped with the path) otherwise.
func LoadPlan(path string) (grid.Input, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return LoadPlanYAML(path)
	case ".hcl":
		return LoadPlanHCL(path)
	default:
		return grid.Input{}, fmt.Errorf("%w: got %q", ErrPlanFormat, path)
	}
}
