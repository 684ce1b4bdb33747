package pages

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIndex(t *testing.T) {
	r := MustNew()
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, Index, Data{
		Title:    "Home",
		PageName: "Home Page",
		View:     IndexView{CurrentName: "<Tom>"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Home</title>")
	assert.Contains(t, body, "Home Page")
	// html/template escapa
	assert.Contains(t, body, "&lt;Tom&gt;")
}

func TestRenderListWithRows(t *testing.T) {
	type row struct {
		Name      string
		BedsOwned int
	}
	rec := httptest.NewRecorder()
	err := MustNew().Render(rec, http.StatusOK, Page1, Data{
		Title: "Cats",
		View:  struct{ Cats []row }{Cats: []row{{Name: "Tom", BedsOwned: 3}}},
	})
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), "<td>Tom</td><td>3</td>")
}

func TestRenderStaticPagesWithoutView(t *testing.T) {
	for _, name := range []string{Page2, Page3} {
		rec := httptest.NewRecorder()
		require.NoError(t, MustNew().Render(rec, http.StatusOK, name, Data{Title: name}), name)
		assert.Contains(t, rec.Body.String(), "<form", name)
	}
}

func TestRenderNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	err := MustNew().Render(rec, http.StatusNotFound, NotFound, Data{
		Title: "Not Found",
		View:  NotFoundView{Page: "/nope"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "/nope")
}

func TestRenderUnknownView(t *testing.T) {
	rec := httptest.NewRecorder()
	err := MustNew().Render(rec, http.StatusOK, "page9", Data{})
	assert.Error(t, err)
	assert.Equal(t, 0, rec.Body.Len())
}
