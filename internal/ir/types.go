package ir

// MutationKind identifies the shape of a Schedule mutation record.
type MutationKind string

const (
	KindCreateEvent   MutationKind = "create_event"
	KindAddEpisode    MutationKind = "add_episode"
	KindFreeEpisode   MutationKind = "free_episode"
	KindAddConstraint MutationKind = "add_constraint"
	KindCommitEvent   MutationKind = "commit_event"
)

// ValidMutationKinds enumerates the kinds a MutationRecord may carry.
var ValidMutationKinds = map[MutationKind]bool{
	KindCreateEvent:   true,
	KindAddEpisode:    true,
	KindFreeEpisode:   true,
	KindAddConstraint: true,
	KindCommitEvent:   true,
}

// MutationRecord is the canonical, content-addressable shape of one
// Schedule mutation, as appended to a store.Store audit log.
//
// Not every field applies to every Kind: EventB is unset for
// create_event and commit_event; Lo/Hi are unset for create_event and
// free_episode; CommitTime is unset for everything but commit_event.
type MutationRecord struct {
	ScheduleID string       `json:"schedule_id"`
	Seq        int64        `json:"seq"`
	Kind       MutationKind `json:"kind"`
	EventA     int64        `json:"event_a"`
	EventB     int64        `json:"event_b,omitempty"`
	Lo         float64      `json:"lo,omitempty"`
	Hi         float64      `json:"hi,omitempty"`
	HasBounds  bool         `json:"-"`
	CommitTime float64      `json:"commit_time,omitempty"`
}

// ToObject converts the record to an IRObject suitable for
// MarshalCanonical. HasBounds/omitted fields are represented explicitly
// so the canonical encoding never depends on Go's zero-value defaults.
func (r MutationRecord) ToObject() IRObject {
	obj := IRObject{
		"schedule_id": IRString(r.ScheduleID),
		"seq":         IRInt(r.Seq),
		"kind":        IRString(string(r.Kind)),
		"event_a":     IRInt(r.EventA),
	}
	if r.Kind == KindAddEpisode || r.Kind == KindAddConstraint || r.Kind == KindFreeEpisode {
		obj["event_b"] = IRInt(r.EventB)
	}
	if r.HasBounds {
		obj["lo"] = IRFloat(r.Lo)
		obj["hi"] = IRFloat(r.Hi)
	}
	if r.Kind == KindCommitEvent {
		obj["commit_time"] = IRFloat(r.CommitTime)
	}
	return obj
}
