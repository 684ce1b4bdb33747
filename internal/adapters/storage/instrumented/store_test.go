package instrumented

import (
	"context"
	"testing"

	mem "pet-records/internal/adapters/storage/memory"
	"pet-records/internal/domain/records"
	"pet-records/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestWrapCountsOperations(t *testing.T) {
	ctx := context.Background()
	s := Wrap[doc]("instrumented_test", mem.NewCollection[doc]())

	saveOK := metrics.StoreOpsTotal.WithLabelValues("instrumented_test", "save", metrics.Ok)
	saveFail := metrics.StoreOpsTotal.WithLabelValues("instrumented_test", "save", metrics.Fail)
	findOne := metrics.StoreOpsTotal.WithLabelValues("instrumented_test", "find_one", metrics.Ok)
	baseOK, baseFail, baseFind := testutil.ToFloat64(saveOK), testutil.ToFloat64(saveFail), testutil.ToFloat64(findOne)

	require.NoError(t, s.Save(ctx, "1", doc{ID: "1", Name: "Tom"}))
	require.Error(t, s.Save(ctx, "", doc{}))

	got, ok, err := s.FindOne(ctx, records.ByName("Tom"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", got.ID)

	all, err := s.Find(ctx, records.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	assert.Equal(t, baseOK+1, testutil.ToFloat64(saveOK))
	assert.Equal(t, baseFail+1, testutil.ToFloat64(saveFail))
	assert.Equal(t, baseFind+1, testutil.ToFloat64(findOne))
}
