package harness

import (
	"testing"

	"github.com/haldane-labs/nysm-stn/internal/ir"
	"github.com/sebdah/goldie/v2"
)

// RunWithGolden runs scenario and diffs its canonical-JSON Result
// against testdata/golden/<name>.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	snapshot, err := resultSnapshot(result)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, snapshot)
	return result, nil
}

func resultSnapshot(result *Result) ([]byte, error) {
	assertions := make([]any, len(result.Assertions))
	for i, a := range result.Assertions {
		m := map[string]any{"type": a.Type, "pass": a.Pass}
		if a.Detail != "" {
			m["detail"] = a.Detail
		}
		if a.Actual != nil {
			m["actual"] = a.Actual
		}
		if a.Expect != nil {
			m["expect"] = a.Expect
		}
		assertions[i] = m
	}
	snapshot := map[string]any{
		"scenario_name": result.ScenarioName,
		"pass":          result.Pass,
		"assertions":    assertions,
	}
	return ir.MarshalCanonical(snapshot)
}
