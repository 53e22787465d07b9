package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRejectsMissingName(t *testing.T) {
	_, err := Parse([]byte(`
assertions:
  - {type: root, expect: a}
`))
	assert.Error(t, err)
}

func TestParseRejectsEmptyAssertions(t *testing.T) {
	_, err := Parse([]byte(`
name: empty
`))
	assert.Error(t, err)
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte(`
name: typo
asssertions: []
`))
	assert.Error(t, err)
}

func TestParseRejectsUnknownAssertionType(t *testing.T) {
	_, err := Parse([]byte(`
name: bad-type
assertions:
  - {type: bogus}
`))
	assert.Error(t, err)
}

func TestParseRejectsBinaryAssertionMissingEndpoints(t *testing.T) {
	_, err := Parse([]byte(`
name: bad-endpoints
assertions:
  - {type: interval, from: a, expect: [1, 2]}
`))
	assert.Error(t, err)
}

func TestParseAcceptsNegativeCycleWithoutExpect(t *testing.T) {
	s, err := Parse([]byte(`
name: cycle
assertions:
  - {type: negative_cycle}
`))
	require.NoError(t, err)
	assert.Equal(t, AssertNegativeCycle, s.Assertions[0].Type)
}
