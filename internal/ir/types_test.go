package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutationRecordToObjectCreateEvent(t *testing.T) {
	rec := MutationRecord{ScheduleID: "s1", Seq: 1, Kind: KindCreateEvent, EventA: 5}
	obj := rec.ToObject()
	assert.Equal(t, IRString("s1"), obj["schedule_id"])
	assert.Equal(t, IRInt(1), obj["seq"])
	assert.Equal(t, IRInt(5), obj["event_a"])
	_, hasB := obj["event_b"]
	assert.False(t, hasB)
	_, hasLo := obj["lo"]
	assert.False(t, hasLo)
}

func TestMutationRecordToObjectAddConstraint(t *testing.T) {
	rec := MutationRecord{
		ScheduleID: "s1", Seq: 4, Kind: KindAddConstraint,
		EventA: 1, EventB: 2, Lo: 10, Hi: 20, HasBounds: true,
	}
	obj := rec.ToObject()
	assert.Equal(t, IRInt(2), obj["event_b"])
	assert.Equal(t, IRFloat(10), obj["lo"])
	assert.Equal(t, IRFloat(20), obj["hi"])
}

func TestMutationRecordToObjectCommitEvent(t *testing.T) {
	rec := MutationRecord{ScheduleID: "s1", Seq: 2, Kind: KindCommitEvent, EventA: 1, CommitTime: 7.5}
	obj := rec.ToObject()
	assert.Equal(t, IRFloat(7.5), obj["commit_time"])
	_, hasLo := obj["lo"]
	assert.False(t, hasLo)
}

func TestValidMutationKinds(t *testing.T) {
	assert.True(t, ValidMutationKinds[KindCreateEvent])
	assert.True(t, ValidMutationKinds[KindCommitEvent])
	assert.False(t, ValidMutationKinds[MutationKind("bogus")])
}
