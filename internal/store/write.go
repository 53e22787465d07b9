package store

import (
	"context"
	"fmt"
	"time"

	"github.com/haldane-labs/nysm-stn/internal/ir"
)

// Append inserts a mutation record for scheduleID into the audit log.
// The primary key is the record's content hash, so a replay-safe retry
// that resubmits the same record is a no-op (ON CONFLICT DO NOTHING),
// never a duplicate row.
//
// Append implements stn.Recorder — a *store.Store can be handed
// directly to stn.NewSchedule as its recorder.
func (s *Store) Append(ctx context.Context, scheduleID string, rec ir.MutationRecord) error {
	rec.ScheduleID = scheduleID
	id, err := ir.HashMutation(rec)
	if err != nil {
		return fmt.Errorf("append mutation: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO mutations
		(id, schedule_id, seq, kind, event_a, event_b, lo, hi, has_bounds, commit_time, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		id,
		rec.ScheduleID,
		rec.Seq,
		string(rec.Kind),
		nullableEventID(rec.Kind, rec.EventA),
		nullableEventB(rec),
		nullableBound(rec.HasBounds, rec.Lo),
		nullableBound(rec.HasBounds, rec.Hi),
		boolToInt(rec.HasBounds),
		nullableCommitTime(rec),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append mutation: %w", err)
	}
	return nil
}

// Record adapts Append to the stn.Recorder interface's single-argument
// shape; ScheduleID must already be set on rec.
func (s *Store) Record(rec ir.MutationRecord) error {
	return s.Append(context.Background(), rec.ScheduleID, rec)
}

func nullableEventID(kind ir.MutationKind, eventA int64) any {
	return eventA
}

func nullableEventB(rec ir.MutationRecord) any {
	if rec.Kind == ir.KindAddEpisode || rec.Kind == ir.KindAddConstraint || rec.Kind == ir.KindFreeEpisode {
		return rec.EventB
	}
	return nil
}

func nullableBound(hasBounds bool, v float64) any {
	if !hasBounds {
		return nil
	}
	return v
}

func nullableCommitTime(rec ir.MutationRecord) any {
	if rec.Kind != ir.KindCommitEvent {
		return nil
	}
	return rec.CommitTime
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
