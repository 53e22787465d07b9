package interval

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndAccessors(t *testing.T) {
	iv := New(1, 3)
	assert.Equal(t, 1.0, iv.Lower())
	assert.Equal(t, 3.0, iv.Upper())
	assert.Equal(t, 1.0, iv.At(0))
	assert.Equal(t, 3.0, iv.At(1))
}

func TestAtOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { New(1, 2).At(2) })
}

func TestContains(t *testing.T) {
	iv := New(1, 5)
	assert.True(t, iv.Contains(1))
	assert.True(t, iv.Contains(5))
	assert.True(t, iv.Contains(3))
	assert.False(t, iv.Contains(0.99))
	assert.False(t, iv.Contains(5.01))
}

func TestIsValid(t *testing.T) {
	assert.True(t, New(1, 1).IsValid())
	assert.True(t, New(1, 5).IsValid())
	assert.False(t, New(5, 1).IsValid())
}

func TestUnionIsTighteningNotSetUnion(t *testing.T) {
	tests := []struct {
		a, b, want Interval
	}{
		{New(1, 3), New(2, 4), New(2, 3)},
		{New(0, 10.1), New(1, 12), New(1, 10.1)},
	}
	for _, tt := range tests {
		got := tt.a.Union(tt.b)
		assert.Equal(t, tt.want, got)
		// symmetry
		assert.Equal(t, tt.want, tt.b.Union(tt.a))
	}
}

func TestUnionResultNeverWiderThanEitherInput(t *testing.T) {
	a := New(0, 20)
	b := New(5, 10)
	got := a.Union(b)
	assert.True(t, got.Lower() >= a.Lower())
	assert.True(t, got.Upper() <= a.Upper())
	assert.True(t, got.Lower() >= b.Lower())
	assert.True(t, got.Upper() <= b.Upper())
}

func TestAdd(t *testing.T) {
	got := New(1, 5).Add(New(2, 9))
	assert.Equal(t, New(3, 14), got)
}

func TestNegate(t *testing.T) {
	got := New(2, 5).Negate()
	assert.Equal(t, New(-5, -2), got)
}

func TestConverged(t *testing.T) {
	assert.True(t, New(3, 3).Converged())
	assert.True(t, New(3, 3.0005).Converged())
	assert.False(t, New(3, 4).Converged())
}

func TestUnboundedIsHUGE(t *testing.T) {
	iv := Unbounded()
	assert.Equal(t, -HUGE, iv.Lower())
	assert.Equal(t, HUGE, iv.Upper())
	assert.True(t, iv.IsValid())
}

func TestToJSON(t *testing.T) {
	pair := New(1, 5).ToJSON()
	assert.Equal(t, [2]float64{1, 5}, pair)
}

func TestMarshalJSONRoundTrip(t *testing.T) {
	iv := New(10, 20)
	b, err := json.Marshal(iv)
	require.NoError(t, err)
	assert.JSONEq(t, "[10,20]", string(b))

	var back Interval
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, iv, back)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1, 5]", New(1, 5).String())
}
