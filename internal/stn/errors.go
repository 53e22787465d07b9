package stn

import "fmt"

// UnknownEvent reports that an Event ID does not refer to a live event
// in this Schedule — either it was never created, or it belonged to an
// Episode that has since been freed.
type UnknownEvent struct {
	Event Event
	Verb  string // e.g. "add constraint", "commit"
}

func (e *UnknownEvent) Error() string {
	return fmt.Sprintf("event %d is not in the schedule (have you added it with AddEpisode or CreateEvent?): %s", e.Event, e.Verb)
}

// InvalidInterval reports hi < lo on an interval a caller supplied.
type InvalidInterval struct {
	Lo, Hi float64
}

func (e *InvalidInterval) Error() string {
	return fmt.Sprintf("invalid interval [%g, %g]: hi < lo", e.Lo, e.Hi)
}

// UnknownEpisode reports that an Episode handle refers to events that
// are not both live in this Schedule (freed, or foreign to it).
type UnknownEpisode struct {
	Episode Episode
}

func (e *UnknownEpisode) Error() string {
	return fmt.Sprintf("episode {%d, %d} is not in the schedule", e.Episode.Start, e.Episode.End)
}

// EmptySchedule reports that Root() was called before any event exists.
type EmptySchedule struct{}

func (e *EmptySchedule) Error() string {
	return "schedule has no events"
}
