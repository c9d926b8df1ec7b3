package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/ports"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		payload := make(map[string]interface{})
		require.NoError(t, json.Unmarshal([]byte(line), &payload), "line %q", line)
		entries = append(entries, payload)
	}
	return entries
}

func TestLoggerIncludesCorrelationIDAndLayer(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Level:     "debug",
		Layer:     "domain",
		Component: "resolver",
	})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "preference loaded", "preference", "dark")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "domain", entry["layer"])
	assert.Equal(t, "resolver", entry["component"])
	assert.Equal(t, "abc123", entry["correlation_id"])
	assert.Equal(t, "dark", entry["preference"])
	assert.Equal(t, "preference loaded", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestLoggerWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "info"})
	require.NoError(t, err)

	derived := logger.With("range", "30d")
	derived.Warn(context.Background(), "range switched", "range", "90d")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	// call-site fields override persistent ones
	assert.Equal(t, "90d", entries[0]["range"])
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "infrastructure", entries[0]["layer"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "warn"})
	require.NoError(t, err)

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")
	assert.Empty(t, strings.TrimSpace(buf.String()))
}

func TestLoggerRecordsErrors(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "debug"})
	require.NoError(t, err)

	logger.Error(context.Background(), "save failed", "error", errors.New("disk full"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "disk full", entries[0]["error"])
	assert.Equal(t, "error", entries[0]["level"])
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestMergeFieldsKeepsOrderAndSkipsBadKeys(t *testing.T) {
	merged := mergeFields(
		[]interface{}{"a", 1, 42, "skipped"},
		[]interface{}{"b", 2, "a", 3},
		map[string]interface{}{"layer": "domain", "empty": ""},
	)
	assert.Equal(t, []interface{}{"a", 3, "b", 2, "layer", "domain"}, merged)
}

func TestNoOpLoggerDiscards(t *testing.T) {
	logger := NewNoOpLogger()
	logger.Info(context.Background(), "ignored")
	assert.NotNil(t, logger.With("k", "v"))
}
