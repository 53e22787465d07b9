package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashMutationDeterministic(t *testing.T) {
	rec := MutationRecord{
		ScheduleID: "s1",
		Seq:        3,
		Kind:       KindAddConstraint,
		EventA:     1,
		EventB:     2,
		Lo:         10,
		Hi:         20,
		HasBounds:  true,
	}

	h1, err := HashMutation(rec)
	require.NoError(t, err)
	h2, err := HashMutation(rec)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64) // hex-encoded SHA-256
}

func TestHashMutationDiffersOnSeq(t *testing.T) {
	base := MutationRecord{ScheduleID: "s1", Kind: KindCreateEvent, EventA: 1}
	a := base
	a.Seq = 1
	b := base
	b.Seq = 2

	ha, err := HashMutation(a)
	require.NoError(t, err)
	hb, err := HashMutation(b)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}

func TestHashMutationDiffersOnBounds(t *testing.T) {
	base := MutationRecord{ScheduleID: "s1", Kind: KindAddConstraint, EventA: 1, EventB: 2, HasBounds: true}
	a := base
	a.Lo, a.Hi = 0, 10
	b := base
	b.Lo, b.Hi = 1, 10

	ha, err := HashMutation(a)
	require.NoError(t, err)
	hb, err := HashMutation(b)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}

func TestMustHashMutationDoesNotPanicOnWellFormedRecord(t *testing.T) {
	assert.NotPanics(t, func() {
		MustHashMutation(MutationRecord{ScheduleID: "s1", Kind: KindCreateEvent, EventA: 1})
	})
}
