package records

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonNegativeInt(t *testing.T) {
	cases := []struct {
		in      any
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{" 0 ", 0, false},
		{0, 0, false},
		{int64(7), 7, false},
		{float64(2), 2, false},
		{json.Number("12"), 12, false},
		{"-1", 0, true},
		{-4, 0, true},
		{"abc", 0, true},
		{2.5, 0, true},
		{json.Number("2.5"), 0, true},
		{true, 0, true},
		{1e30, 0, true},
		{json.Number("1e30"), 0, true},
		{float64(math.MaxInt), 0, true},
		{"9223372036854775808", 0, true},
		{uint64(math.MaxUint64), 0, true},
		{"9223372036854775807", math.MaxInt, false},
	}
	for _, tc := range cases {
		n, err := Fields{"age": tc.in}.NonNegativeInt("age", true, 0)
		if tc.wantErr {
			var v *ValidationError
			assert.ErrorAs(t, err, &v, "%#v", tc.in)
			continue
		}
		require.NoError(t, err, "%#v", tc.in)
		assert.Equal(t, tc.want, n, "%#v", tc.in)
	}
}

func TestNonNegativeIntOutOfRangeIsNotNegative(t *testing.T) {
	_, err := Fields{"age": 1e30}.NonNegativeInt("age", true, 0)
	assert.EqualError(t, err, "age must be an integer")
}

func TestNextCount(t *testing.T) {
	n, err := NextCount("age", 4)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = NextCount("age", math.MaxInt)
	var v *ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "age", v.Field)
	assert.Equal(t, math.MaxInt, n)
}

func TestNonNegativeIntDefault(t *testing.T) {
	n, err := Fields{}.NonNegativeInt("bedsOwned", false, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = Fields{"age": ""}.NonNegativeInt("age", true, 0)
	assert.EqualError(t, err, "age is required")
}

func TestPresentAndString(t *testing.T) {
	f := Fields{"a": "  ", "b": 0, "c": " x ", "d": nil}
	assert.False(t, f.Present("a"))
	assert.True(t, f.Present("b"))
	assert.True(t, f.Present("c"))
	assert.False(t, f.Present("d"))
	assert.False(t, f.Present("missing"))

	assert.Equal(t, "x", f.String("c"))
	assert.Equal(t, "0", f.String("b"))

	_, err := f.RequiredString("a")
	assert.Error(t, err)
}

func TestFilterValidate(t *testing.T) {
	assert.NoError(t, ByName("Tom").Validate())
	assert.NoError(t, Filter{}.Validate())
	assert.Error(t, Filter{"name'; DROP TABLE cats; --": "x"}.Validate())
	assert.Equal(t, []string{"age", "name"}, Filter{"name": "a", "age": "1"}.Keys())
}
