// Package ir provides canonical intermediate representation types for
// schedule mutations: the audit-log record shape and the deterministic
// JSON encoding used to hash it.
//
// This package contains type definitions and pure encoding logic only.
// internal/stn, internal/store, internal/queryir, internal/querysql,
// internal/harness, and internal/cli import ir; ir imports none of them. This keeps IR the foundational layer with no
// circular dependencies.
//
// Key design constraints:
//   - Values are a closed union (IRString, IRInt, IRFloat, IRBool,
//     IRArray, IRObject) — no IRNull, since mutation records are always
//     fully populated.
//   - Floats use a fixed, lossless textual form so canonical hashes are
//     stable across platforms and Go versions.
//   - Sequence numbers are logical clock values, never wall-clock
//     timestamps.
package ir
