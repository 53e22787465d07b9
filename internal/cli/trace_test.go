package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceCommandPrintsDistanceMatrix(t *testing.T) {
	path := writeSchedule(t, validSchedule)
	out, err := execCommand(t, "trace", path)
	require.NoError(t, err)
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
}

func TestTraceCommandStillReportsOnInfeasibleSchedule(t *testing.T) {
	path := writeSchedule(t, `
events:
  - id: a
  - id: b
  - id: c
constraints:
  - {from: a, to: b, interval: [0, 1]}
  - {from: b, to: c, interval: [0, 1]}
  - {from: c, to: a, interval: [-5, -4]}
`)
	_, err := execCommand(t, "trace", path)
	require.NoError(t, err)
}

func TestTraceCommandRejectsInvalidSchedule(t *testing.T) {
	path := writeSchedule(t, invalidSchedule)
	_, err := execCommand(t, "trace", path)
	require.Error(t, err)
}
