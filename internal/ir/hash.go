package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainMutation is the domain-separation prefix for mutation-record
// content addressing. The version suffix enables future algorithm
// migration without colliding with hashes from an earlier scheme.
const DomainMutation = "nysm-stn/mutation/v1"

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null byte separator prevents
// domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// HashMutation computes a content-addressed ID for a mutation record.
// The ID is stable across restarts and replays given the same schedule
// ID, sequence number, and mutation payload — it is the primary key the
// audit log's idempotent insert (ON CONFLICT DO NOTHING) relies on.
func HashMutation(rec MutationRecord) (string, error) {
	canonical, err := MarshalCanonical(rec.ToObject())
	if err != nil {
		return "", fmt.Errorf("HashMutation: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainMutation, canonical), nil
}

// MustHashMutation is like HashMutation but panics on error. Use only in
// tests or when the record is known to be well-formed.
func MustHashMutation(rec MutationRecord) string {
	id, err := HashMutation(rec)
	if err != nil {
		panic(err)
	}
	return id
}
