package taktio

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/taktgrid/grid"
)

// ParsePlanYAML decodes a takt plan from YAML (or JSON) bytes.
// Returns ErrEmptyPlan for blank payloads, wrapped decode errors otherwise.
func ParsePlanYAML(data []byte) (grid.Input, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return grid.Input{}, ErrEmptyPlan
	}
	var plan PlanFile
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return grid.Input{}, fmt.Errorf("taktio: decode plan: %w", err)
	}

	return plan.Input()
}

// LoadPlanYAML loads a YAML/JSON takt plan from an explicit file path.
func LoadPlanYAML(path string) (grid.Input, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return grid.Input{}, fmt.Errorf("taktio: read %s: %w", path, err)
	}
	in, parseErr := ParsePlanYAML(content)
	if parseErr != nil {
		return grid.Input{}, fmt.Errorf("taktio: %s: %w", path, parseErr)
	}

	return in, nil
}
