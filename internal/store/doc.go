// Package store provides SQLite-backed durable storage for a Schedule's
// mutation history.
//
// The store is a single append-only table (mutations): one row per
// create_event / add_episode / free_episode / add_constraint /
// commit_event, keyed by its content hash so a resubmitted record is a
// no-op rather than a duplicate.
//
// Ordering never depends on wall time: every query orders by seq ASC,
// id COLLATE BINARY ASC, where seq is the Schedule's own logical clock.
// That is also what makes Replay deterministic — the same mutation
// sequence, replayed against a fresh Schedule, always allocates the
// same event ids and produces the same distance matrix.
//
// recorded_at is stored for operator convenience only; nothing in this
// package or in internal/stn reads it back.
package store
