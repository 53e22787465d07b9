package harness

import (
	"fmt"

	"github.com/haldane-labs/nysm-stn/internal/compiler"
)

// Run compiles and builds scenario's schedule, applies its commit
// steps in order, and evaluates every assertion, producing a Result
// with a canonical-JSON-serializable snapshot of every assertion's
// actual vs. expected value.
//
// A schedule that fails to compile (e.g. a negative cycle) does not
// abort the run: every non-negative_cycle assertion is recorded as
// failed with a detail explaining why, so a scenario asserting
// infeasibility can still report a clean pass/fail summary.
func Run(scenario *Scenario) (*Result, error) {
	doc := compiler.ScheduleDoc{
		Events:      scenario.Events,
		Episodes:    scenario.Episodes,
		Constraints: scenario.Constraints,
	}
	def, errs := compiler.CompileDoc(doc)
	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("scenario %q failed validation: %v", scenario.Name, msgs)
	}

	sched, events, episodes, err := def.Build(scenario.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("scenario %q failed to build: %w", scenario.Name, err)
	}

	var compileErr error
	for _, step := range scenario.Commits {
		ev, err := compiler.ResolveRef(step.Event, events, episodes)
		if err != nil {
			return nil, fmt.Errorf("scenario %q commit %q: %w", scenario.Name, step.Event, err)
		}
		if err := sched.CommitEvent(ev, step.Time); err != nil {
			compileErr = err
			break
		}
	}
	if compileErr == nil {
		compileErr = sched.Compile()
	}

	result := &Result{ScenarioName: scenario.Name, Pass: true}
	for _, a := range scenario.Assertions {
		ar := evaluate(a, sched, events, episodes, compileErr)
		if !ar.Pass {
			result.Pass = false
		}
		result.Assertions = append(result.Assertions, ar)
	}
	return result, nil
}
