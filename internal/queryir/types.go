// Package queryir is a small, sealed predicate language for filtering
// the mutation audit log, independent of any one storage backend.
package queryir

import "github.com/haldane-labs/nysm-stn/internal/ir"

// Query is a sealed interface: only types in this package implement
// it, so a backend compiler's type switch is exhaustive by construction.
type Query interface {
	queryNode()
}

// Predicate is a sealed interface for the filter conditions a Select
// can carry.
type Predicate interface {
	predicateNode()
}

// Select reads from the mutations log, optionally filtered by
// Predicate, projecting exactly the fields named in Bindings —
// SELECT <bindings> FROM mutations WHERE <filter>.
type Select struct {
	From     string            // always "mutations" today; kept for a future second table
	Filter   Predicate         // nil means no filter
	Bindings map[string]string // source column -> output name
}

func (Select) queryNode() {}

// Equals is a field-equals-literal predicate: <field> = <value>.
type Equals struct {
	Field string
	Value ir.IRValue
}

func (Equals) predicateNode() {}

// Range is a numeric field-within-[min,max] predicate — the temporal
// analogue of Equals, since interval bounds and event ids are the
// natural filters over a mutation log. Either bound may be omitted by
// setting HasMin/HasMax false.
type Range struct {
	Field          string
	Min, Max       float64
	HasMin, HasMax bool
}

func (Range) predicateNode() {}

// And is a conjunction: every predicate must hold. An empty slice is
// vacuously true.
type And struct {
	Predicates []Predicate
}

func (And) predicateNode() {}
