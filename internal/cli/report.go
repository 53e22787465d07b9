package cli

import (
	"fmt"
	"sort"

	"github.com/haldane-labs/nysm-stn/internal/compiler"
	"github.com/haldane-labs/nysm-stn/internal/stn"
)

// EventReport is one event's window in a build report.
type EventReport struct {
	ID     string    `json:"id"`
	Window [2]float64 `json:"window"`
}

// EpisodeReport is one episode's duration in a build report.
type EpisodeReport struct {
	ID       string     `json:"id"`
	Duration [2]float64 `json:"duration"`
}

// BuildReport is the JSON/text payload printed by "nysm-stn build".
type BuildReport struct {
	Events   []EventReport   `json:"events"`
	Episodes []EpisodeReport `json:"episodes"`
}

func buildReport(sched *stn.Schedule, events map[string]stn.Event, episodes map[string]stn.Episode) (*BuildReport, error) {
	report := &BuildReport{}

	names := sortedKeys(events)
	for _, name := range names {
		w, err := sched.Window(events[name])
		if err != nil {
			return nil, err
		}
		report.Events = append(report.Events, EventReport{ID: name, Window: [2]float64{w.Lower(), w.Upper()}})
	}

	epNames := sortedEpisodeKeys(episodes)
	for _, name := range epNames {
		d, err := sched.GetDuration(episodes[name])
		if err != nil {
			return nil, err
		}
		report.Episodes = append(report.Episodes, EpisodeReport{ID: name, Duration: [2]float64{d.Lower(), d.Upper()}})
	}

	return report, nil
}

// eventID renders an event without a compile-time name, for the
// replay/trace commands which only see integer ids reconstructed from
// the audit log.
func eventID(e stn.Event) string {
	return e.String()
}

func sortedKeys(m map[string]stn.Event) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedEpisodeKeys(m map[string]stn.Episode) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// reportValidationErrors formats compiler validation errors, in the
// text case one per line prefixed with its E1xx/E2xx code, and returns
// an *ExitError so the caller exits with ExitCommandError.
func reportValidationErrors(out *OutputFormatter, errs []compiler.ValidationError) error {
	details := make([]map[string]string, len(errs))
	for i, e := range errs {
		details[i] = map[string]string{"code": e.Code, "field": e.Field, "message": e.Message}
	}
	out.Error("E1xx/E2xx", "schedule failed validation", details)
	if out.Format != "json" {
		for _, e := range errs {
			fmt.Fprintf(out.Writer, "%s %s: %s\n", e.Code, e.Field, e.Message)
		}
	}
	return NewExitError(ExitCommandError, "schedule failed validation")
}
