package compiler

import (
	"fmt"

	"github.com/haldane-labs/nysm-stn/internal/interval"
	"github.com/haldane-labs/nysm-stn/internal/stn"
	"gopkg.in/yaml.v3"
)

// ScheduleDef is a validated schedule document, ready to Build.
type ScheduleDef struct {
	doc ScheduleDoc
}

// Compile parses raw YAML and validates it, collecting every error
// rather than stopping at the first. A non-empty error slice means def
// is nil.
func Compile(raw []byte) (*ScheduleDef, []ValidationError) {
	var doc ScheduleDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, []ValidationError{{Field: "document", Message: err.Error(), Code: ErrEmptyEventID}}
	}
	return CompileDoc(doc)
}

// CompileDoc validates an already-parsed ScheduleDoc, for callers (such
// as internal/harness) that assemble a ScheduleDoc from a larger
// document rather than parsing one standalone.
func CompileDoc(doc ScheduleDoc) (*ScheduleDef, []ValidationError) {
	if errs := validate(doc); len(errs) > 0 {
		return nil, errs
	}
	return &ScheduleDef{doc: doc}, nil
}

// Build walks a validated ScheduleDef in file order and issues the
// corresponding stn.Schedule calls, returning name -> id maps so a
// caller can refer back to named events and episodes.
func (d *ScheduleDef) Build(scheduleID string, recorder stn.Recorder) (*stn.Schedule, map[string]stn.Event, map[string]stn.Episode, error) {
	sched := stn.NewSchedule(scheduleID, recorder)
	events := make(map[string]stn.Event, len(d.doc.Events))
	episodes := make(map[string]stn.Episode, len(d.doc.Episodes))

	for _, e := range d.doc.Events {
		ev, err := sched.CreateEvent()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("build event %q: %w", e.ID, err)
		}
		events[e.ID] = ev
	}

	for _, ep := range d.doc.Episodes {
		dur := interval.New(0, 0)
		if len(ep.Duration) == 2 {
			dur = interval.New(ep.Duration[0], ep.Duration[1])
		}
		built, err := sched.AddEpisode(dur)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("build episode %q: %w", ep.ID, err)
		}
		episodes[ep.ID] = built
	}

	for _, c := range d.doc.Constraints {
		from, err := ResolveRef(c.From, events, episodes)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("build constraint %s->%s: %w", c.From, c.To, err)
		}
		to, err := ResolveRef(c.To, events, episodes)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("build constraint %s->%s: %w", c.From, c.To, err)
		}
		if len(c.Interval) == 2 {
			if err := sched.AddConstraint(from, to, interval.New(c.Interval[0], c.Interval[1])); err != nil {
				return nil, nil, nil, fmt.Errorf("build constraint %s->%s: %w", c.From, c.To, err)
			}
		} else if err := sched.AddConstraint(from, to); err != nil {
			return nil, nil, nil, fmt.Errorf("build constraint %s->%s: %w", c.From, c.To, err)
		}
	}

	return sched, events, episodes, nil
}

// ResolveRef resolves a bare event id or an episode endpoint reference
// ("<episode-id>.start" / "<episode-id>.end") against the name maps
// returned by Build. Exported so other packages (such as
// internal/harness, which layers commit steps and assertions on top
// of a built schedule) can resolve the same reference syntax without
// re-deriving it.
func ResolveRef(ref string, events map[string]stn.Event, episodes map[string]stn.Episode) (stn.Event, error) {
	if base, endpoint, ok := splitEndpoint(ref); ok {
		ep, found := episodes[base]
		if !found {
			return 0, fmt.Errorf("unresolved episode %q", base)
		}
		if endpoint == "start" {
			return ep.Start, nil
		}
		return ep.End, nil
	}
	ev, found := events[ref]
	if !found {
		return 0, fmt.Errorf("unresolved event %q", ref)
	}
	return ev, nil
}
