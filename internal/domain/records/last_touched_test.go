package records

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastTouchedUpdateCommitsOnlyOnSuccess(t *testing.T) {
	c := NewLastTouched(1)

	got, err := c.Update(func(cur int) (int, error) { return cur + 1, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, 2, c.Get())

	_, err = c.Update(func(cur int) (int, error) { return cur + 100, errors.New("save failed") })
	require.Error(t, err)
	assert.Equal(t, 2, c.Get())

	c.Replace(10)
	assert.Equal(t, 10, c.Get())
}

func TestLastTouchedReplaceIf(t *testing.T) {
	c := NewLastTouched("rex")

	assert.False(t, c.ReplaceIf(func(cur string) bool { return cur == "fido" }, "fido-2"))
	assert.Equal(t, "rex", c.Get())

	assert.True(t, c.ReplaceIf(func(cur string) bool { return cur == "rex" }, "rex-2"))
	assert.Equal(t, "rex-2", c.Get())
}
