package compiler

import "fmt"

// Validation error codes. E1xx covers events and episodes, E2xx covers
// constraints.
const (
	ErrDuplicateEventID   = "E101" // duplicate event or episode id
	ErrInvalidDuration    = "E102" // duration hi < lo, or lo < 0
	ErrEmptyEventID       = "E103" // blank id

	ErrDanglingReference  = "E201" // constraint references an unknown event/episode endpoint
	ErrInvalidInterval    = "E202" // constraint interval hi < lo
	ErrMalformedReference = "E203" // endpoint isn't "id" or "id.start"/"id.end"
)

// ValidationError is one problem found in a ScheduleDoc.
type ValidationError struct {
	Field   string
	Message string
	Code    string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// validate collects every problem in doc without stopping at the first.
func validate(doc ScheduleDoc) []ValidationError {
	var errs []ValidationError

	ids := make(map[string]bool)

	for i, e := range doc.Events {
		field := fmt.Sprintf("events[%d].id", i)
		if e.ID == "" {
			errs = append(errs, ValidationError{Field: field, Message: "event id must not be blank", Code: ErrEmptyEventID})
			continue
		}
		if ids[e.ID] {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("duplicate id %q", e.ID), Code: ErrDuplicateEventID})
		}
		ids[e.ID] = true
	}

	for i, ep := range doc.Episodes {
		field := fmt.Sprintf("episodes[%d].id", i)
		if ep.ID == "" {
			errs = append(errs, ValidationError{Field: field, Message: "episode id must not be blank", Code: ErrEmptyEventID})
			continue
		}
		if ids[ep.ID] {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("duplicate id %q", ep.ID), Code: ErrDuplicateEventID})
		}
		ids[ep.ID] = true

		if len(ep.Duration) != 0 {
			if len(ep.Duration) != 2 {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("episodes[%d].duration", i),
					Message: "duration must have exactly 2 elements [lo, hi]",
					Code:    ErrInvalidDuration,
				})
			} else if lo, hi := ep.Duration[0], ep.Duration[1]; hi < lo || lo < 0 {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("episodes[%d].duration", i),
					Message: fmt.Sprintf("invalid duration [%g, %g]: hi must be >= lo and lo must be >= 0", lo, hi),
					Code:    ErrInvalidDuration,
				})
			}
		}
	}

	episodeIDs := make(map[string]bool, len(doc.Episodes))
	for _, ep := range doc.Episodes {
		episodeIDs[ep.ID] = true
	}

	resolves := func(ref string) bool {
		base, endpoint, isEpisodeRef := splitEndpoint(ref)
		if isEpisodeRef {
			return episodeIDs[base] && (endpoint == "start" || endpoint == "end")
		}
		return ids[ref]
	}

	for i, c := range doc.Constraints {
		for _, side := range []struct {
			name string
			ref  string
		}{{"from", c.From}, {"to", c.To}} {
			field := fmt.Sprintf("constraints[%d].%s", i, side.name)
			if dot := lastDot(side.ref); dot >= 0 {
				if _, _, isEpisodeRef := splitEndpoint(side.ref); !isEpisodeRef {
					errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("malformed reference %q: expected \"id.start\" or \"id.end\"", side.ref), Code: ErrMalformedReference})
					continue
				}
			}
			if _, _, isEpisodeRef := splitEndpoint(side.ref); isEpisodeRef {
				if !resolves(side.ref) {
					errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("unresolved reference %q", side.ref), Code: ErrDanglingReference})
				}
			} else if !ids[side.ref] {
				errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("unresolved reference %q", side.ref), Code: ErrDanglingReference})
			}
		}

		if len(c.Interval) != 0 {
			if len(c.Interval) != 2 {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("constraints[%d].interval", i),
					Message: "interval must have exactly 2 elements [lo, hi]",
					Code:    ErrInvalidInterval,
				})
			} else if lo, hi := c.Interval[0], c.Interval[1]; hi < lo {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("constraints[%d].interval", i),
					Message: fmt.Sprintf("invalid interval [%g, %g]: hi < lo", lo, hi),
					Code:    ErrInvalidInterval,
				})
			}
		}
	}

	return errs
}

// lastDot returns the index of the last "." in ref, or -1 if it has
// none. A ref with a dot that isn't a recognized ".start"/".end"
// endpoint suffix is malformed rather than merely unresolved.
func lastDot(ref string) int {
	for i := len(ref) - 1; i >= 0; i-- {
		if ref[i] == '.' {
			return i
		}
	}
	return -1
}

// splitEndpoint parses "id.start"/"id.end" into (id, "start"|"end",
// true), or returns ("", "", false) for a bare event id.
func splitEndpoint(ref string) (base, endpoint string, isEpisodeRef bool) {
	for _, suffix := range []string{".start", ".end"} {
		if len(ref) > len(suffix) && ref[len(ref)-len(suffix):] == suffix {
			return ref[:len(ref)-len(suffix)], suffix[1:], true
		}
	}
	return "", "", false
}
