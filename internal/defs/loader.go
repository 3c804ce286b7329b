// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type wavePlanFile struct {
	Waves []WaveDefinition `yaml:"waves"`
}

// LoadWavePlan reads a wave plan file of the form
//
//	waves:
//	  - count: 3
//	    spawn_interval: 700ms
func LoadWavePlan(path string) ([]WaveDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave plan file: %w", err)
	}
	return ParseWavePlan(file)
}

// ParseWavePlan decodes a wave plan document. An empty plan is not an error
// here; the wave scheduler refuses to start on it.
func ParseWavePlan(data []byte) ([]WaveDefinition, error) {
	var doc wavePlanFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wave plan: %w", err)
	}
	plan := make([]WaveDefinition, 0, len(doc.Waves))
	for _, w := range doc.Waves {
		plan = append(plan, w.Sanitized())
	}
	return plan, nil
}
