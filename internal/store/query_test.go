package store

import (
	"context"
	"testing"

	"github.com/haldane-labs/nysm-stn/internal/interval"
	"github.com/haldane-labs/nysm-stn/internal/ir"
	"github.com/haldane-labs/nysm-stn/internal/queryir"
	"github.com/haldane-labs/nysm-stn/internal/stn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryFiltersByKind(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sched := stn.NewSchedule("chain", s)
	_, err := sched.AddEpisode(interval.New(1, 5))
	require.NoError(t, err)

	rows, err := s.Query(ctx, queryir.Select{
		Filter:   queryir.Equals{Field: "kind", Value: ir.IRString(string(ir.KindAddEpisode))},
		Bindings: map[string]string{"seq": "seq", "kind": "kind"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, string(ir.KindAddEpisode), rows[0]["kind"])
}

func TestQueryRangeOnBounds(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sched := stn.NewSchedule("chain", s)
	_, err := sched.AddEpisode(interval.New(1, 5))
	require.NoError(t, err)
	_, err = sched.AddEpisode(interval.New(20, 30))
	require.NoError(t, err)

	rows, err := s.Query(ctx, queryir.Select{
		Filter:   queryir.Range{Field: "lo", Min: 10, HasMin: true},
		Bindings: map[string]string{"lo": "lo", "hi": "hi"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 20.0, rows[0]["lo"])
}
