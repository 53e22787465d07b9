package harness

import "github.com/haldane-labs/nysm-stn/internal/compiler"

// Scenario is a declarative end-to-end conformance fixture: a schedule
// definition, an ordered list of commits to apply, and a list of
// assertions to evaluate against the result.
type Scenario struct {
	Name        string                    `yaml:"name"`
	Description string                    `yaml:"description,omitempty"`
	Events      []compiler.EventDoc       `yaml:"events,omitempty"`
	Episodes    []compiler.EpisodeDoc     `yaml:"episodes,omitempty"`
	Constraints []compiler.ConstraintDoc  `yaml:"constraints,omitempty"`
	Commits     []CommitStep              `yaml:"commits,omitempty"`
	Assertions  []Assertion               `yaml:"assertions"`
}

// CommitStep commits an event to a fixed time, in order.
type CommitStep struct {
	Event string  `yaml:"event"`
	Time  float64 `yaml:"time"`
}

// Assertion checks one fact about the compiled (and possibly
// committed) schedule. Supported Type values: "interval", "distance",
// "window", "duration", "root", "negative_cycle".
type Assertion struct {
	Type   string  `yaml:"type"`
	From   string  `yaml:"from,omitempty"`
	To     string  `yaml:"to,omitempty"`
	Event  string  `yaml:"event,omitempty"`
	At     string  `yaml:"at,omitempty"`
	Expect any     `yaml:"expect,omitempty"`
}

// AssertionResult is the canonical-JSON-serializable outcome of one
// evaluated Assertion.
type AssertionResult struct {
	Type   string `json:"type"`
	Pass   bool   `json:"pass"`
	Detail string `json:"detail,omitempty"`
	Actual any    `json:"actual,omitempty"`
	Expect any    `json:"expect,omitempty"`
}

// Result is the outcome of running one Scenario.
type Result struct {
	ScenarioName string            `json:"scenario_name"`
	Pass         bool              `json:"pass"`
	CompileError string            `json:"compile_error,omitempty"`
	Assertions   []AssertionResult `json:"assertions"`
}
