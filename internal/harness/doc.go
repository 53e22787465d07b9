// Package harness runs conformance scenarios against the STN engine.
//
// A scenario is a declarative YAML fixture: a set of events, episodes,
// and constraints to compile into a Schedule, an optional ordered list
// of commit steps, and a list of assertions to evaluate against the
// resulting Schedule. Running a scenario produces a canonical-JSON
// Result, which callers can either inspect directly or diff against a
// golden snapshot with goldie.
package harness
