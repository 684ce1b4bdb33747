package memory

import (
	"context"
	"testing"

	"pet-records/internal/domain/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestSaveAndFind(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[doc]()

	require.NoError(t, c.Save(ctx, "1", doc{ID: "1", Name: "Rex", Age: 3}))
	require.NoError(t, c.Save(ctx, "2", doc{ID: "2", Name: "Fido", Age: 1}))
	require.NoError(t, c.Save(ctx, "3", doc{ID: "3", Name: "Rex", Age: 7}))

	got, ok, err := c.FindOne(ctx, records.ByName("Rex"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", got.ID, "earliest insert wins")

	all, err := c.Find(ctx, records.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{all[0].ID, all[1].ID, all[2].ID})

	byAge, err := c.Find(ctx, records.Filter{"age": "7"})
	require.NoError(t, err)
	require.Len(t, byAge, 1)
	assert.Equal(t, "3", byAge[0].ID)

	_, ok, err = c.FindOne(ctx, records.ByName("nobody"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveUpsertKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[doc]()

	require.NoError(t, c.Save(ctx, "1", doc{ID: "1", Name: "Rex", Age: 3}))
	require.NoError(t, c.Save(ctx, "2", doc{ID: "2", Name: "Fido"}))
	require.NoError(t, c.Save(ctx, "1", doc{ID: "1", Name: "Rex", Age: 4}))

	assert.Equal(t, 2, c.Len())
	all, err := c.Find(ctx, records.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, 4, all[0].Age)
}

func TestSaveErrors(t *testing.T) {
	c := NewCollection[doc]()
	assert.Error(t, c.Save(context.Background(), " ", doc{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Save(ctx, "1", doc{ID: "1"}), context.Canceled)
	_, err := c.Find(ctx, records.Filter{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = c.Find(context.Background(), records.Filter{"bad-field": "x"})
	assert.Error(t, err)
}

func TestReturnedValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[doc]()
	require.NoError(t, c.Save(ctx, "1", doc{ID: "1", Name: "Rex"}))

	got, _, err := c.FindOne(ctx, records.ByName("Rex"))
	require.NoError(t, err)
	got.Name = "changed"

	again, ok, err := c.FindOne(ctx, records.ByName("Rex"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Rex", again.Name)
}
