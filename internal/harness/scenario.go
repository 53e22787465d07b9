package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a scenario YAML fixture, rejecting unknown
// fields so a typo'd key fails loudly instead of being silently
// ignored.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates raw scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario yaml: %w", err)
	}
	if err := validateScenario(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}
	for i, a := range s.Assertions {
		if err := validateAssertion(i, a); err != nil {
			return err
		}
	}
	for i, c := range s.Commits {
		if c.Event == "" {
			return fmt.Errorf("commits[%d]: event is required", i)
		}
	}
	return nil
}

func validateAssertion(index int, a Assertion) error {
	switch a.Type {
	case AssertInterval, AssertDistance:
		if a.From == "" || a.To == "" {
			return fmt.Errorf("assertions[%d]: from and to are required for %q", index, a.Type)
		}
	case AssertWindow, AssertDuration:
		if a.Event == "" {
			return fmt.Errorf("assertions[%d]: event is required for %q", index, a.Type)
		}
	case AssertRoot:
		// expect alone is required, checked below
	case AssertNegativeCycle:
		// at is optional
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	if a.Type != AssertNegativeCycle && a.Expect == nil {
		return fmt.Errorf("assertions[%d]: expect is required for %q", index, a.Type)
	}
	return nil
}
