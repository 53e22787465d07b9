package harness

import (
	"errors"
	"fmt"

	"github.com/haldane-labs/nysm-stn/internal/apsp"
	"github.com/haldane-labs/nysm-stn/internal/compiler"
	"github.com/haldane-labs/nysm-stn/internal/interval"
	"github.com/haldane-labs/nysm-stn/internal/stn"
)

// Assertion type constants.
const (
	AssertInterval       = "interval"
	AssertDistance       = "distance"
	AssertWindow         = "window"
	AssertDuration       = "duration"
	AssertRoot           = "root"
	AssertNegativeCycle  = "negative_cycle"
)

func expectInterval(v any) (interval.Interval, error) {
	pair, ok := v.([]any)
	if !ok || len(pair) != 2 {
		return interval.Interval{}, fmt.Errorf("expect must be a 2-element [lo, hi] list, got %v", v)
	}
	lo, ok1 := toFloat(pair[0])
	hi, ok2 := toFloat(pair[1])
	if !ok1 || !ok2 {
		return interval.Interval{}, fmt.Errorf("expect bounds must be numeric, got %v", v)
	}
	return interval.New(lo, hi), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// evaluate checks one Assertion against a built schedule. If the
// schedule failed to compile (compileErr non-nil), every assertion
// other than negative_cycle fails with a Detail naming the compile
// error, while negative_cycle assertions are still evaluated and can
// pass.
func evaluate(a Assertion, sched *stn.Schedule, events map[string]stn.Event, episodes map[string]stn.Episode, compileErr error) AssertionResult {
	res := AssertionResult{Type: a.Type, Expect: a.Expect}

	if a.Type == AssertNegativeCycle {
		return evaluateNegativeCycle(a, compileErr)
	}
	if compileErr != nil {
		res.Detail = fmt.Sprintf("schedule failed to compile: %v", compileErr)
		return res
	}

	switch a.Type {
	case AssertInterval:
		return evaluateBinary(a, res, events, episodes, func(u, v stn.Event) (any, error) { return sched.Interval(u, v) })
	case AssertDistance:
		return evaluateBinary(a, res, events, episodes, func(u, v stn.Event) (any, error) { return sched.EventDistance(u, v) })
	case AssertWindow:
		return evaluateUnary(a, res, events, episodes, func(e stn.Event) (any, error) { return sched.Window(e) })
	case AssertDuration:
		return evaluateEpisodeUnary(a, res, episodes, func(ep stn.Episode) (any, error) { return sched.GetDuration(ep) })
	case AssertRoot:
		root, err := sched.Root()
		if err != nil {
			res.Detail = err.Error()
			return res
		}
		wantID, ok := a.Expect.(string)
		if !ok {
			res.Detail = fmt.Sprintf("expect must be an event id string, got %v", a.Expect)
			return res
		}
		want, found := events[wantID]
		if !found {
			res.Detail = fmt.Sprintf("unresolved event %q", wantID)
			return res
		}
		res.Actual = int64(root)
		res.Pass = root == want
		return res
	default:
		res.Detail = fmt.Sprintf("unknown assertion type %q", a.Type)
		return res
	}
}

func evaluateNegativeCycle(a Assertion, compileErr error) AssertionResult {
	res := AssertionResult{Type: a.Type, Expect: a.Expect}
	var cycle *apsp.NegativeCycle
	found := errors.As(compileErr, &cycle)

	want, ok := a.Expect.(bool)
	if !ok {
		want = true // presence-only assertion: {type: negative_cycle}
	}
	res.Pass = found == want
	if found {
		res.Actual = map[string]any{"at": cycle.At, "via": cycle.Via}
	}
	if a.At != "" && found {
		res.Pass = res.Pass && fmt.Sprintf("%d", cycle.At) == a.At
	}
	if !res.Pass {
		res.Detail = fmt.Sprintf("compile error: %v", compileErr)
	}
	return res
}

func evaluateBinary(a Assertion, res AssertionResult, events map[string]stn.Event, episodes map[string]stn.Episode, fn func(u, v stn.Event) (any, error)) AssertionResult {
	u, err := compiler.ResolveRef(a.From, events, episodes)
	if err != nil {
		res.Detail = err.Error()
		return res
	}
	v, err := compiler.ResolveRef(a.To, events, episodes)
	if err != nil {
		res.Detail = err.Error()
		return res
	}
	actual, err := fn(u, v)
	if err != nil {
		res.Detail = err.Error()
		return res
	}
	return finishComparison(res, actual, a.Expect)
}

func evaluateUnary(a Assertion, res AssertionResult, events map[string]stn.Event, episodes map[string]stn.Episode, fn func(e stn.Event) (any, error)) AssertionResult {
	e, err := compiler.ResolveRef(a.Event, events, episodes)
	if err != nil {
		res.Detail = err.Error()
		return res
	}
	actual, err := fn(e)
	if err != nil {
		res.Detail = err.Error()
		return res
	}
	return finishComparison(res, actual, a.Expect)
}

func evaluateEpisodeUnary(a Assertion, res AssertionResult, episodes map[string]stn.Episode, fn func(ep stn.Episode) (any, error)) AssertionResult {
	ep, found := episodes[a.Event]
	if !found {
		res.Detail = fmt.Sprintf("unresolved episode %q", a.Event)
		return res
	}
	actual, err := fn(ep)
	if err != nil {
		res.Detail = err.Error()
		return res
	}
	return finishComparison(res, actual, a.Expect)
}

func finishComparison(res AssertionResult, actual any, expect any) AssertionResult {
	switch v := actual.(type) {
	case interval.Interval:
		wantIv, err := expectInterval(expect)
		if err != nil {
			res.Detail = err.Error()
			return res
		}
		res.Actual = []any{v.Lower(), v.Upper()}
		res.Pass = v == wantIv
	case float64:
		wantF, ok := toFloat(expect)
		if !ok {
			res.Detail = fmt.Sprintf("expect must be numeric, got %v", expect)
			return res
		}
		res.Actual = v
		res.Pass = v == wantF
	default:
		res.Detail = fmt.Sprintf("unsupported comparison type %T", actual)
	}
	return res
}
