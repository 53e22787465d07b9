package stn

import "fmt"

// Event is a moment in time in a Schedule. Event ids are allocated in
// creation order starting at 0 and are never reused, even after the
// owning Episode is freed.
type Event int64

func (e Event) String() string {
	return fmt.Sprintf("event(%d)", int64(e))
}

// Episode is a pair of Events bounding an activity: Start is when the
// activity begins, End is when it finishes. The gap between them is
// the Episode's duration.
type Episode struct {
	Start Event
	End   Event
}

func (ep Episode) String() string {
	return fmt.Sprintf("episode(%d -> %d)", int64(ep.Start), int64(ep.End))
}
