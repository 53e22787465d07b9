package stn

import (
	"testing"

	"github.com/haldane-labs/nysm-stn/internal/apsp"
	"github.com/haldane-labs/nysm-stn/internal/interval"
	"github.com/haldane-labs/nysm-stn/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleChain(t *testing.T) {
	s := NewSchedule("chain", nil)
	e1, err := s.AddEpisode(interval.New(1, 5))
	require.NoError(t, err)
	e2, err := s.AddEpisode(interval.New(2, 9))
	require.NoError(t, err)
	require.NoError(t, s.AddConstraint(e1.End, e2.Start))

	iv, err := s.Interval(e1.Start, e2.Start)
	require.NoError(t, err)
	assert.Equal(t, 1.0, iv.Lower())
	assert.Equal(t, 5.0, iv.Upper())

	iv, err = s.Interval(e1.End, e2.End)
	require.NoError(t, err)
	assert.Equal(t, 2.0, iv.Lower())
	assert.Equal(t, 9.0, iv.Upper())
}

func TestScheduleSTNsForEVAs(t *testing.T) {
	s := NewSchedule("evas", nil)
	x0, err := s.CreateEvent()
	require.NoError(t, err)
	l, err := s.AddEpisode(interval.New(30, 40))
	require.NoError(t, err)
	eva, err := s.AddEpisode(interval.New(40, 50))
	require.NoError(t, err)

	require.NoError(t, s.AddConstraint(x0, l.Start, interval.New(10, 20)))
	require.NoError(t, s.AddConstraint(x0, eva.End, interval.New(60, 70)))
	require.NoError(t, s.AddConstraint(eva.Start, l.End, interval.New(10, 20)))

	d, err := s.EventDistance(l.Start, eva.Start)
	require.NoError(t, err)
	assert.Equal(t, 20.0, d)

	d, err = s.EventDistance(eva.Start, l.Start)
	require.NoError(t, err)
	assert.Equal(t, -10.0, d)

	d, err = s.EventDistance(x0, l.End)
	require.NoError(t, err)
	assert.Equal(t, 50.0, d)

	d, err = s.EventDistance(l.End, x0)
	require.NoError(t, err)
	assert.Equal(t, -40.0, d)

	iv, err := s.Interval(x0, l.Start)
	require.NoError(t, err)
	assert.Equal(t, interval.New(10, 20), iv)

	iv, err = s.Interval(x0, l.End)
	require.NoError(t, err)
	assert.Equal(t, interval.New(40, 50), iv)
}

func TestScheduleDiamond(t *testing.T) {
	s := NewSchedule("diamond", nil)
	a, err := s.CreateEvent()
	require.NoError(t, err)
	b, err := s.CreateEvent()
	require.NoError(t, err)
	c, err := s.CreateEvent()
	require.NoError(t, err)
	d, err := s.CreateEvent()
	require.NoError(t, err)

	require.NoError(t, s.AddConstraint(a, b, interval.New(1, 10)))
	require.NoError(t, s.AddConstraint(a, c, interval.New(0, 9)))
	require.NoError(t, s.AddConstraint(b, d, interval.New(1, 1)))
	require.NoError(t, s.AddConstraint(c, d, interval.New(2, 2)))

	iv, err := s.Interval(c, b)
	require.NoError(t, err)
	assert.Equal(t, interval.New(1, 1), iv)

	iv, err = s.Interval(a, d)
	require.NoError(t, err)
	assert.Equal(t, interval.New(2, 11), iv)

	root, err := s.Root()
	require.NoError(t, err)
	assert.Equal(t, a, root)
}

func TestScheduleGreedyExecution(t *testing.T) {
	s := NewSchedule("greedy", nil)
	e1, err := s.AddEpisode(interval.New(1, 5))
	require.NoError(t, err)
	e2, err := s.AddEpisode(interval.New(2, 9))
	require.NoError(t, err)
	e3, err := s.AddEpisode(interval.New(0, 10))
	require.NoError(t, err)
	require.NoError(t, s.AddConstraint(e1.End, e2.Start))
	require.NoError(t, s.AddConstraint(e2.End, e3.Start))

	require.NoError(t, s.CommitEvent(e1.Start, 0))
	require.NoError(t, s.CommitEvent(e1.End, 3))

	w, err := s.Window(e2.End)
	require.NoError(t, err)
	assert.Equal(t, 5.0, w.Lower())
	assert.Equal(t, 12.0, w.Upper())

	require.NoError(t, s.CommitEvent(e2.Start, 3))
	require.NoError(t, s.CommitEvent(e2.End, 10))

	w, err = s.Window(e3.End)
	require.NoError(t, err)
	assert.Equal(t, 10.0, w.Lower())
	assert.Equal(t, 20.0, w.Upper())
}

func TestScheduleMissedWindowTolerance(t *testing.T) {
	s := NewSchedule("missed", nil)
	e1, err := s.AddEpisode(interval.New(1, 5))
	require.NoError(t, err)
	e2, err := s.AddEpisode(interval.New(2, 9))
	require.NoError(t, err)
	require.NoError(t, s.AddConstraint(e1.End, e2.Start))

	require.NoError(t, s.CommitEvent(e1.Start, 0))
	require.NoError(t, s.CommitEvent(e1.End, 6))

	w, err := s.Window(e2.End)
	require.NoError(t, err)
	assert.Equal(t, 8.0, w.Lower())
	assert.Equal(t, 14.0, w.Upper())
}

func TestScheduleNegativeCycle(t *testing.T) {
	// A single AddConstraint call always sets both signed edges from
	// the same [lo, hi], so a two-event pair can never sum negative on
	// its own (hi - lo >= 0 by construction). Three events, each
	// individually valid, is the smallest case that can contradict.
	s := NewSchedule("neg", nil)
	a, err := s.CreateEvent()
	require.NoError(t, err)
	b, err := s.CreateEvent()
	require.NoError(t, err)
	c, err := s.CreateEvent()
	require.NoError(t, err)
	require.NoError(t, s.AddConstraint(a, b, interval.New(0, 1)))
	require.NoError(t, s.AddConstraint(b, c, interval.New(0, 1)))
	require.NoError(t, s.AddConstraint(c, a, interval.New(-5, -4)))

	err = s.Compile()
	require.Error(t, err)
	assert.True(t, apsp.IsNegativeCycle(err))
}

func TestScheduleUnknownEventErrors(t *testing.T) {
	s := NewSchedule("errs", nil)
	a, err := s.CreateEvent()
	require.NoError(t, err)
	bogus := Event(999)

	_, err = s.Interval(a, bogus)
	var ue *UnknownEvent
	assert.ErrorAs(t, err, &ue)

	err = s.AddConstraint(a, bogus)
	assert.ErrorAs(t, err, &ue)

	err = s.CommitEvent(bogus, 0)
	assert.ErrorAs(t, err, &ue)
}

func TestScheduleInvalidIntervalRejected(t *testing.T) {
	s := NewSchedule("invalid", nil)
	_, err := s.AddEpisode(interval.New(5, 1))
	var ii *InvalidInterval
	assert.ErrorAs(t, err, &ii)
}

func TestScheduleRootBeforeAnyEventFails(t *testing.T) {
	s := NewSchedule("empty", nil)
	_, err := s.Root()
	var es *EmptySchedule
	assert.ErrorAs(t, err, &es)
}

func TestScheduleFreeEpisodeRemovesEvents(t *testing.T) {
	s := NewSchedule("free", nil)
	ep, err := s.AddEpisode(interval.New(1, 2))
	require.NoError(t, err)
	require.NoError(t, s.FreeEpisode(ep))

	_, err = s.Window(ep.Start)
	assert.Error(t, err)

	err = s.FreeEpisode(ep)
	var uep *UnknownEpisode
	assert.ErrorAs(t, err, &uep)
}

func TestScheduleTriangleNonNegativity(t *testing.T) {
	s := NewSchedule("triangle", nil)
	a, err := s.CreateEvent()
	require.NoError(t, err)
	b, err := s.CreateEvent()
	require.NoError(t, err)
	require.NoError(t, s.AddConstraint(a, b, interval.New(1, 10)))

	d1, err := s.EventDistance(a, b)
	require.NoError(t, err)
	d2, err := s.EventDistance(b, a)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d1+d2, 0.0)
}

func TestScheduleAddConstraintIdempotent(t *testing.T) {
	s1 := NewSchedule("idem1", nil)
	a1, _ := s1.CreateEvent()
	b1, _ := s1.CreateEvent()
	require.NoError(t, s1.AddConstraint(a1, b1, interval.New(3, 7)))
	iv1, err := s1.Interval(a1, b1)
	require.NoError(t, err)

	s2 := NewSchedule("idem2", nil)
	a2, _ := s2.CreateEvent()
	b2, _ := s2.CreateEvent()
	require.NoError(t, s2.AddConstraint(a2, b2, interval.New(3, 7)))
	require.NoError(t, s2.AddConstraint(a2, b2, interval.New(3, 7)))
	iv2, err := s2.Interval(a2, b2)
	require.NoError(t, err)

	assert.Equal(t, iv1, iv2)
}

type recordingRecorder struct {
	recs []ir.MutationRecord
}

func (r *recordingRecorder) Record(rec ir.MutationRecord) error {
	r.recs = append(r.recs, rec)
	return nil
}

func TestScheduleRecordsMutationsInOrder(t *testing.T) {
	rec := &recordingRecorder{}
	s := NewSchedule("audit", rec)

	ep, err := s.AddEpisode(interval.New(1, 5))
	require.NoError(t, err)
	require.NoError(t, s.CommitEvent(ep.Start, 0))

	require.Len(t, rec.recs, 2)
	assert.Equal(t, ir.KindAddEpisode, rec.recs[0].Kind)
	assert.Equal(t, int64(1), rec.recs[0].Seq)
	assert.Equal(t, ir.KindCommitEvent, rec.recs[1].Kind)
	assert.Equal(t, int64(2), rec.recs[1].Seq)
	assert.Equal(t, "audit", rec.recs[1].ScheduleID)
}

func TestScheduleEventsListsLiveEventsAscending(t *testing.T) {
	s := NewSchedule("events", nil)
	ep, err := s.AddEpisode(interval.New(1, 5))
	require.NoError(t, err)
	extra, err := s.CreateEvent()
	require.NoError(t, err)

	assert.Equal(t, []Event{ep.Start, ep.End, extra}, s.Events())

	require.NoError(t, s.FreeEpisode(ep))
	assert.Equal(t, []Event{extra}, s.Events())
}
