package form

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeURLEncoded(t *testing.T) {
	body := url.Values{"firstname": {"Tom"}, "beds": {"0"}}.Encode()
	r := httptest.NewRequest(http.MethodPost, "/setName", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	f, err := Decode(httptest.NewRecorder(), r)
	require.NoError(t, err)
	assert.Equal(t, "Tom", f["firstname"])
	assert.True(t, f.Present("beds"))
	assert.False(t, f.Present("lastname"))
}

func TestDecodeJSONKeepsNumbers(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/setDog", strings.NewReader(`{"name":"Rex","age":4}`))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")

	f, err := Decode(httptest.NewRecorder(), r)
	require.NoError(t, err)
	assert.Equal(t, json.Number("4"), f["age"])

	n, err := f.NonNegativeInt("age", true, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestDecodeEmptyJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/setDog", strings.NewReader(""))
	r.Header.Set("Content-Type", "application/json")

	f, err := Decode(httptest.NewRecorder(), r)
	require.NoError(t, err)
	assert.Empty(t, f)
}

func TestDecodeInvalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/setDog", strings.NewReader(`{"name":`))
	r.Header.Set("Content-Type", "application/json")

	_, err := Decode(httptest.NewRecorder(), r)
	assert.ErrorIs(t, err, ErrInvalidBody)
}
