package config

import (
	"fmt"
	"os"

	"github.com/supplylab/contractlab/internal/domain"
	"gopkg.in/yaml.v3"
)

// NamedScenario pairs a label with one raw calculation payload inside a
// scenario-set file.
type NamedScenario struct {
	Name              string `yaml:"name"`
	domain.RawPayload `yaml:",inline"`
}

// ScenarioSet is a batch of named payloads evaluated in one run.
type ScenarioSet struct {
	Scenarios []NamedScenario `yaml:"scenarios"`
}

// LoadPayload reads a single raw payload from a YAML file.
func LoadPayload(filename string) (*domain.RawPayload, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var raw domain.RawPayload
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &raw, nil
}

// LoadScenarioSet reads a multi-scenario file for batch comparison.
func LoadScenarioSet(filename string) (*ScenarioSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var set ScenarioSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(set.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided in %s", filename)
	}
	return &set, nil
}
