package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSchedule(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validSchedule = `
events:
  - id: a
  - id: b
constraints:
  - {from: a, to: b, interval: [1, 10]}
`

const invalidSchedule = `
events:
  - id: a
  - id: a
`

func TestValidateAcceptsValidSchedule(t *testing.T) {
	path := writeSchedule(t, validSchedule)
	out, err := execCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestValidateRejectsInvalidSchedule(t *testing.T) {
	path := writeSchedule(t, invalidSchedule)
	_, err := execCommand(t, "validate", path)
	require.Error(t, err)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitCommandError, exitErr.Code)
}

func TestValidateRejectsMissingFile(t *testing.T) {
	_, err := execCommand(t, "validate", "/no/such/file.yaml")
	assert.Error(t, err)
}
