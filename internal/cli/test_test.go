package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `
name: passing
events:
  - id: a
  - id: b
constraints:
  - {from: a, to: b, interval: [1, 10]}
assertions:
  - {type: interval, from: a, to: b, expect: [1, 10]}
`

const failingScenario = `
name: failing
events:
  - id: a
  - id: b
constraints:
  - {from: a, to: b, interval: [1, 10]}
assertions:
  - {type: interval, from: a, to: b, expect: [1, 1]}
`

func TestTestCommandReportsAllPassing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "passing.yaml"), []byte(passingScenario), 0o644))

	out, err := execCommand(t, "test", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "passing")
}

func TestTestCommandFailsExitCodeWhenAScenarioFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "failing.yaml"), []byte(failingScenario), 0o644))

	_, err := execCommand(t, "test", dir)
	require.Error(t, err)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitFailure, exitErr.Code)
}

func TestTestCommandRejectsEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := execCommand(t, "test", dir)
	require.Error(t, err)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitCommandError, exitErr.Code)
}
