package queryir

import (
	"testing"

	"github.com/haldane-labs/nysm-stn/internal/ir"
	"github.com/stretchr/testify/assert"
)

func TestSelectImplementsQuery(t *testing.T) {
	var q Query = Select{From: "mutations"}
	assert.NotNil(t, q)
}

func TestPredicatesImplementPredicate(t *testing.T) {
	var p Predicate = Equals{Field: "kind", Value: ir.IRString("commit_event")}
	assert.NotNil(t, p)

	p = Range{Field: "lo", Min: 0, HasMin: true}
	assert.NotNil(t, p)

	p = And{Predicates: []Predicate{Equals{Field: "kind", Value: ir.IRString("x")}}}
	assert.NotNil(t, p)
}
