// Package querysql compiles queryir queries against the mutations
// table into parameterized SQLite statements.
package querysql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/haldane-labs/nysm-stn/internal/ir"
	"github.com/haldane-labs/nysm-stn/internal/queryir"
)

// Compile converts a queryir.Query to parameterized SQL. Every
// compiled statement carries a deterministic ORDER BY seq ASC, id
// COLLATE BINARY ASC, regardless of the query shape, so results are
// reproducible across SQLite versions and across repeated runs.
func Compile(q queryir.Query) (string, []any, error) {
	if q == nil {
		return "", nil, fmt.Errorf("compile: nil query")
	}
	switch query := q.(type) {
	case queryir.Select:
		return compileSelect(query)
	case *queryir.Select:
		return compileSelect(*query)
	default:
		return "", nil, fmt.Errorf("compile: unsupported query type %T", q)
	}
}

func compileSelect(q queryir.Select) (string, []any, error) {
	selectClause := compileBindings(q.Bindings)
	from := q.From
	if from == "" {
		from = "mutations"
	}

	var where string
	var params []any
	if q.Filter != nil {
		clause, p, err := compilePredicate(q.Filter)
		if err != nil {
			return "", nil, fmt.Errorf("compile filter: %w", err)
		}
		where = " WHERE " + clause
		params = p
	}

	sql := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY seq ASC, id COLLATE BINARY ASC", selectClause, from, where)
	return sql, params, nil
}

func compileBindings(bindings map[string]string) string {
	if len(bindings) == 0 {
		return "*"
	}
	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		out := bindings[field]
		if field == out {
			parts = append(parts, field)
		} else {
			parts = append(parts, fmt.Sprintf("%s AS %s", field, out))
		}
	}
	return strings.Join(parts, ", ")
}

func compilePredicate(p queryir.Predicate) (string, []any, error) {
	if p == nil {
		return "1 = 1", nil, nil
	}
	switch pred := p.(type) {
	case queryir.Equals:
		return compileEquals(pred)
	case *queryir.Equals:
		return compileEquals(*pred)
	case queryir.Range:
		return compileRange(pred)
	case *queryir.Range:
		return compileRange(*pred)
	case queryir.And:
		return compileAnd(pred)
	case *queryir.And:
		return compileAnd(*pred)
	default:
		return "", nil, fmt.Errorf("compile: unsupported predicate type %T", p)
	}
}

func compileEquals(eq queryir.Equals) (string, []any, error) {
	param, err := irValueToParam(eq.Value)
	if err != nil {
		return "", nil, fmt.Errorf("compile equals: %w", err)
	}
	return fmt.Sprintf("%s = ?", eq.Field), []any{param}, nil
}

func compileRange(r queryir.Range) (string, []any, error) {
	if !r.HasMin && !r.HasMax {
		return "", nil, fmt.Errorf("compile range: %s has neither Min nor Max", r.Field)
	}
	var clauses []string
	var params []any
	if r.HasMin {
		clauses = append(clauses, fmt.Sprintf("%s >= ?", r.Field))
		params = append(params, r.Min)
	}
	if r.HasMax {
		clauses = append(clauses, fmt.Sprintf("%s <= ?", r.Field))
		params = append(params, r.Max)
	}
	return strings.Join(clauses, " AND "), params, nil
}

func compileAnd(and queryir.And) (string, []any, error) {
	if len(and.Predicates) == 0 {
		return "1 = 1", nil, nil
	}
	var clauses []string
	var params []any
	for _, pred := range and.Predicates {
		clause, p, err := compilePredicate(pred)
		if err != nil {
			return "", nil, err
		}
		clauses = append(clauses, clause)
		params = append(params, p...)
	}
	return strings.Join(clauses, " AND "), params, nil
}

func irValueToParam(v ir.IRValue) (any, error) {
	switch val := v.(type) {
	case ir.IRString:
		return string(val), nil
	case ir.IRInt:
		return int64(val), nil
	case ir.IRFloat:
		return float64(val), nil
	case ir.IRBool:
		return bool(val), nil
	default:
		return nil, fmt.Errorf("unsupported IRValue type for SQL parameter: %T", v)
	}
}
