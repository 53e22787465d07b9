package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/haldane-labs/nysm-stn/internal/ir"
)

// ReadMutations returns every mutation recorded for scheduleID, ordered
// by seq ASC, id COLLATE BINARY ASC — the deterministic tiebreak that
// makes Replay reproduce a byte-identical Schedule regardless of the
// order rows happen to sit in on disk.
func (s *Store) ReadMutations(ctx context.Context, scheduleID string) ([]ir.MutationRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT schedule_id, seq, kind, event_a, event_b, lo, hi, has_bounds, commit_time
		FROM mutations
		WHERE schedule_id = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("read mutations: %w", err)
	}
	defer rows.Close()

	var out []ir.MutationRecord
	for rows.Next() {
		rec, err := scanMutation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mutations: %w", err)
	}
	return out, nil
}

// ListScheduleIDs returns every distinct schedule id with at least one
// recorded mutation, in lexical order.
func (s *Store) ListScheduleIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT schedule_id FROM mutations ORDER BY schedule_id`)
	if err != nil {
		return nil, fmt.Errorf("list schedule ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan schedule id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanMutation(rows *sql.Rows) (ir.MutationRecord, error) {
	var rec ir.MutationRecord
	var kind string
	var eventB sql.NullInt64
	var lo, hi, commitTime sql.NullFloat64
	var hasBounds int

	if err := rows.Scan(&rec.ScheduleID, &rec.Seq, &kind, &rec.EventA, &eventB, &lo, &hi, &hasBounds, &commitTime); err != nil {
		return ir.MutationRecord{}, fmt.Errorf("scan mutation: %w", err)
	}
	rec.Kind = ir.MutationKind(kind)
	if eventB.Valid {
		rec.EventB = eventB.Int64
	}
	rec.HasBounds = hasBounds != 0
	if lo.Valid {
		rec.Lo = lo.Float64
	}
	if hi.Valid {
		rec.Hi = hi.Float64
	}
	if commitTime.Valid {
		rec.CommitTime = commitTime.Float64
	}
	return rec, nil
}
