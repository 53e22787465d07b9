package store

import (
	"context"
	"fmt"

	"github.com/haldane-labs/nysm-stn/internal/queryir"
	"github.com/haldane-labs/nysm-stn/internal/querysql"
)

// Query compiles q to SQL via querysql and runs it against the
// mutations table, returning one map per row keyed by the query's
// output column names. The dynamic column set (driven by
// queryir.Select.Bindings) rules out scanning into a fixed struct the
// way ReadMutations does.
func (s *Store) Query(ctx context.Context, q queryir.Query) ([]map[string]any, error) {
	sqlStr, params, err := querysql.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("compile query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, sqlStr, params...)
	if err != nil {
		return nil, fmt.Errorf("run query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}

	var out []map[string]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
