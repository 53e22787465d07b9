package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/haldane-labs/nysm-stn/internal/interval"
	"github.com/haldane-labs/nysm-stn/internal/ir"
	"github.com/haldane-labs/nysm-stn/internal/stn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nysm-stn.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenAppliesSchema(t *testing.T) {
	s := openTestStore(t)
	_, err := s.db.Exec(`SELECT id, schedule_id, seq, kind FROM mutations LIMIT 0`)
	assert.NoError(t, err)
}

func TestAppendIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := ir.MutationRecord{Kind: ir.KindCreateEvent, Seq: 1, EventA: 0}
	require.NoError(t, s.Append(ctx, "sched", rec))
	require.NoError(t, s.Append(ctx, "sched", rec))

	recs, err := s.ReadMutations(ctx, "sched")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestAppendAndReadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sched := stn.NewSchedule("chain", s)
	ep1, err := sched.AddEpisode(interval.New(1, 5))
	require.NoError(t, err)
	ep2, err := sched.AddEpisode(interval.New(2, 9))
	require.NoError(t, err)
	require.NoError(t, sched.AddConstraint(ep1.End, ep2.Start))

	recs, err := s.ReadMutations(ctx, "chain")
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, ir.KindAddEpisode, recs[0].Kind)
	assert.Equal(t, ir.KindAddEpisode, recs[1].Kind)
	assert.Equal(t, ir.KindAddConstraint, recs[2].Kind)
}

func TestReplayReproducesDistanceMatrix(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	original := stn.NewSchedule("diamond", s)
	a, err := original.CreateEvent()
	require.NoError(t, err)
	b, err := original.CreateEvent()
	require.NoError(t, err)
	c, err := original.CreateEvent()
	require.NoError(t, err)
	d, err := original.CreateEvent()
	require.NoError(t, err)
	require.NoError(t, original.AddConstraint(a, b, interval.New(1, 10)))
	require.NoError(t, original.AddConstraint(a, c, interval.New(0, 9)))
	require.NoError(t, original.AddConstraint(b, d, interval.New(1, 1)))
	require.NoError(t, original.AddConstraint(c, d, interval.New(2, 2)))

	wantAD, err := original.Interval(a, d)
	require.NoError(t, err)

	replayed, err := s.Replay(ctx, "diamond")
	require.NoError(t, err)

	gotAD, err := replayed.Interval(a, d)
	require.NoError(t, err)
	assert.Equal(t, wantAD, gotAD)

	root, err := replayed.Root()
	require.NoError(t, err)
	assert.Equal(t, a, root)
}

func TestListScheduleIDs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	stn.NewSchedule("a-sched", s).CreateEvent()
	stn.NewSchedule("b-sched", s).CreateEvent()

	ids, err := s.ListScheduleIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-sched", "b-sched"}, ids)
}
