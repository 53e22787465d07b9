package cli

import (
	"path/filepath"
	"testing"

	"github.com/haldane-labs/nysm-stn/internal/interval"
	"github.com/haldane-labs/nysm-stn/internal/stn"
	"github.com/haldane-labs/nysm-stn/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryCommandFiltersByKind(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)

	sched := stn.NewSchedule("sched-1", st)
	a, err := sched.CreateEvent()
	require.NoError(t, err)
	b, err := sched.CreateEvent()
	require.NoError(t, err)
	require.NoError(t, sched.AddConstraint(a, b, interval.New(1, 10)))
	require.NoError(t, st.Close())

	out, err := execCommand(t, "query", dbPath, "--schedule", "sched-1", "--kind", "add_constraint")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestQueryCommandRequiresScheduleFlag(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	_, err = execCommand(t, "query", dbPath)
	require.Error(t, err)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitCommandError, exitErr.Code)
}
