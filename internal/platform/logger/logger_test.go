package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatIncludesFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := newWithOutput(LogConfig{Level: "info", Format: "json"}, "pet-records", &buf)
	require.NoError(t, err)

	l.With(map[string]any{"kind": "cat"}).Info("record created", map[string]any{"name": "Tom", "": "dropped"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "record created", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "pet-records", entry["app"])
	assert.Equal(t, "cat", entry["kind"])
	assert.Equal(t, "Tom", entry["name"])
	assert.NotContains(t, entry, "")
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l, err := newWithOutput(LogConfig{Level: "warn", Format: "text"}, "", &buf)
	require.NoError(t, err)

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	assert.Empty(t, buf.String())

	l.Warn("shown", map[string]any{"k": 1})
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=1")
}

func TestInvalidConfig(t *testing.T) {
	_, err := New(LogConfig{Level: "loud"}, "")
	assert.Error(t, err)

	_, err = New(LogConfig{Format: "xml"}, "")
	assert.Error(t, err)
}
