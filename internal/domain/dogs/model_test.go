package dogs

import (
	"testing"

	"pet-records/internal/domain/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d, err := Model{}.Build(records.Fields{"name": " Rex ", "breed": "Lab", "age": "4"})
	require.NoError(t, err)
	assert.Equal(t, "Rex", d.Name)
	assert.Equal(t, "Lab", d.Breed)
	assert.Equal(t, 4, d.Age)
	assert.NotEmpty(t, d.ID)

	d, err = Model{}.Build(records.Fields{"name": "Pup", "breed": "Pug", "age": 0})
	require.NoError(t, err)
	assert.Equal(t, 0, d.Age)
}

func TestBuildValidation(t *testing.T) {
	cases := map[string]records.Fields{
		"name is required":         {"breed": "Lab", "age": 1},
		"breed is required":        {"name": "Rex", "age": 1},
		"age is required":          {"name": "Rex", "breed": "Lab"},
		"age must be an integer":   {"name": "Rex", "breed": "Lab", "age": "old"},
		"age must be non-negative": {"name": "Rex", "breed": "Lab", "age": -2},
	}
	for want, in := range cases {
		_, err := Model{}.Build(in)
		require.Error(t, err, want)
		assert.True(t, records.IsValidation(err), want)
		assert.EqualError(t, err, want)
	}
}

func TestDefaultAndIncrement(t *testing.T) {
	d := Model{}.Default()
	assert.Equal(t, "Spot", d.Name)
	assert.Equal(t, "Unknown", d.Breed)
	assert.Equal(t, 90, d.Age)

	d, err := Model{}.Increment(d, FieldAge)
	require.NoError(t, err)
	assert.Equal(t, 91, d.Age)

	_, err = Model{}.Increment(d, "breed")
	assert.True(t, records.IsValidation(err))
}
