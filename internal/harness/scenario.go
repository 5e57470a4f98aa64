package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted shell session.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Session is a fixed session token for the log. Empty uses
	// session.DefaultToken.
	Session string `yaml:"session,omitempty"`

	// ConfirmToken overrides the accepted confirmation answer.
	ConfirmToken string `yaml:"confirm_token,omitempty"`

	// HeaderSpacing overrides the listing padding. Nil means 30.
	HeaderSpacing *int `yaml:"header_spacing,omitempty"`

	// AllowDuplicateIDs builds the directory with duplicate ids accepted.
	AllowDuplicateIDs bool `yaml:"allow_duplicate_ids,omitempty"`

	// Input is fed to the shell one line per entry.
	Input []string `yaml:"input"`

	// Assertions validate the transcript and final state.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates the transcript, the log or the final directory.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Text is used by output_contains and log_contains.
	Text string `yaml:"text,omitempty"`

	// Texts is used by output_order.
	Texts []string `yaml:"texts,omitempty"`

	// Count is used by record_count.
	Count int `yaml:"count,omitempty"`

	// ID is used by final_state and record_absent.
	ID string `yaml:"id,omitempty"`

	// Expect is used by final_state. Keys: name, salary, describe.
	Expect map[string]string `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertOutputContains = "output_contains"
	AssertOutputOrder    = "output_order"
	AssertRecordCount    = "record_count"
	AssertFinalState     = "final_state"
	AssertRecordAbsent   = "record_absent"
	AssertLogContains    = "log_contains"
)

var finalStateKeys = map[string]bool{"name": true, "salary": true, "describe": true}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
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
	if len(s.Input) == 0 {
		return fmt.Errorf("input list is required and must be non-empty")
	}
	if s.HeaderSpacing != nil && *s.HeaderSpacing < 0 {
		return fmt.Errorf("header_spacing must be non-negative")
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertOutputContains, AssertLogContains:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for %s", index, a.Type)
		}
	case AssertOutputOrder:
		if len(a.Texts) == 0 {
			return fmt.Errorf("assertions[%d]: texts list is required for output_order", index)
		}
	case AssertRecordCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for record_count", index)
		}
	case AssertFinalState:
		if a.ID == "" {
			return fmt.Errorf("assertions[%d]: id is required for final_state", index)
		}
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for final_state", index)
		}
		for key := range a.Expect {
			if !finalStateKeys[key] {
				return fmt.Errorf("assertions[%d]: unknown final_state key %q", index, key)
			}
		}
	case AssertRecordAbsent:
		if a.ID == "" {
			return fmt.Errorf("assertions[%d]: id is required for record_absent", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
