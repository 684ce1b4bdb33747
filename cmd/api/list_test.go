package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-records/internal/domain/records"
	"pet-records/internal/platform/httpclient"
	"pet-records/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPrintsTable(t *testing.T) {
	ctx := context.Background()
	svcs := router.NewMemoryServices()

	_, err := svcs.Cats.Create(ctx, records.Fields{"name": "Tom Cat", "bedsOwned": 2})
	require.NoError(t, err)
	_, err = svcs.Dogs.Create(ctx, records.Fields{"name": "Rex", "breed": "Lab", "age": 4})
	require.NoError(t, err)

	ts := httptest.NewServer(router.NewRouter(router.Options{Services: &svcs}))
	defer ts.Close()

	client, err := httpclient.New(ts.URL, 0)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, (&cmdList{Kind: "cat"}).run(ctx, client, &out))
	assert.Contains(t, out.String(), "Tom Cat")
	assert.NotContains(t, out.String(), "Rex")

	out.Reset()
	require.NoError(t, (&cmdList{Kind: "dog"}).run(ctx, client, &out))
	assert.Contains(t, out.String(), "Rex")
	assert.Contains(t, out.String(), "Lab")

	assert.Error(t, (&cmdList{Kind: "bird"}).run(ctx, client, &out))
}

func TestListServerDown(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	url := ts.URL
	ts.Close()

	client, err := httpclient.New(url, 0)
	require.NoError(t, err)

	var out bytes.Buffer
	assert.Error(t, (&cmdList{Kind: "cat"}).run(context.Background(), client, &out))
}

func TestListWrongServer(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	client, err := httpclient.New(ts.URL, 0)
	require.NoError(t, err)

	var out bytes.Buffer
	err = (&cmdList{Kind: "dog"}).run(context.Background(), client, &out)
	require.Error(t, err)
	assert.True(t, httpclient.IsNotFound(err))
	assert.Contains(t, err.Error(), "/api/dogs not found, is --addr a pet-records server?")
}
