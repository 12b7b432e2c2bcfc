package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a report conformance scenario: fixed inputs plus
// either the exact expected lines or the expected validation error.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden
	// file name for RunWithGolden.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Count is the enumeration count passed to the builder.
	Count int64 `yaml:"count"`

	// Items is the record items sequence. Omitted means empty.
	Items []int64 `yaml:"items,omitempty"`

	// Lines is the exact expected output, in order.
	// Mutually exclusive with WantError.
	Lines []string `yaml:"lines,omitempty"`

	// WantError is the error code the run must fail with
	// (INVALID_COUNT or INVALID_IDENTITY). A failing run must produce
	// zero lines.
	WantError string `yaml:"want_error,omitempty"`
}

// Error codes a scenario may expect.
const (
	WantInvalidCount    = "INVALID_COUNT"
	WantInvalidIdentity = "INVALID_IDENTITY"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "line:" vs "lines:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Lines) > 0 && s.WantError != "" {
		return fmt.Errorf("lines and want_error are mutually exclusive")
	}

	if len(s.Lines) == 0 && s.WantError == "" {
		return fmt.Errorf("either lines or want_error is required")
	}

	if s.WantError != "" && s.WantError != WantInvalidCount && s.WantError != WantInvalidIdentity {
		return fmt.Errorf("unknown want_error code %q", s.WantError)
	}

	return nil
}
