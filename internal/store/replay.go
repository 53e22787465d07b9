package store

import (
	"context"
	"fmt"

	"github.com/haldane-labs/nysm-stn/internal/interval"
	"github.com/haldane-labs/nysm-stn/internal/ir"
	"github.com/haldane-labs/nysm-stn/internal/stn"
)

// Replay reconstructs a *stn.Schedule from every mutation recorded for
// scheduleID, in log order. Because Schedule allocates event ids
// sequentially and never reuses one, replaying the same mutation
// sequence against a fresh Schedule reproduces the identical event
// numbering — and therefore an identical distance matrix — as the
// Schedule that originally produced the log.
//
// The returned Schedule has no Recorder attached; callers that want to
// keep auditing a replayed Schedule must call stn.NewSchedule again
// with this Store and re-record from that point.
func (s *Store) Replay(ctx context.Context, scheduleID string) (*stn.Schedule, error) {
	recs, err := s.ReadMutations(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %w", scheduleID, err)
	}

	sched := stn.NewSchedule(scheduleID, nil)
	for _, rec := range recs {
		if err := applyMutation(sched, rec); err != nil {
			return nil, fmt.Errorf("replay %s: seq %d: %w", scheduleID, rec.Seq, err)
		}
	}
	return sched, nil
}

func applyMutation(sched *stn.Schedule, rec ir.MutationRecord) error {
	switch rec.Kind {
	case ir.KindCreateEvent:
		_, err := sched.CreateEvent()
		return err
	case ir.KindAddEpisode:
		_, err := sched.AddEpisode(interval.New(rec.Lo, rec.Hi))
		return err
	case ir.KindFreeEpisode:
		ep := stn.Episode{Start: stn.Event(rec.EventA), End: stn.Event(rec.EventB)}
		return sched.FreeEpisode(ep)
	case ir.KindAddConstraint:
		return sched.AddConstraint(stn.Event(rec.EventA), stn.Event(rec.EventB), interval.New(rec.Lo, rec.Hi))
	case ir.KindCommitEvent:
		return sched.CommitEvent(stn.Event(rec.EventA), rec.CommitTime)
	default:
		return fmt.Errorf("unknown mutation kind %q", rec.Kind)
	}
}
