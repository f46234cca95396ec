package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var res []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		res = append(res, entry)
	}
	return res
}

func TestZerologLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.InfoLevel, "discovery")

	l.Debug("hidden %d", 1)
	l.Info("port %s", "COM3")
	l.Warn("duplicate %s", "COM1")
	l.Error("failed: %v", "boom")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "port COM3", lines[0]["message"])
	assert.Equal(t, "discovery", lines[0]["component"])
	assert.Equal(t, "warn", lines[1]["level"])
	assert.Equal(t, "error", lines[2]["level"])
}

func TestZerologLoggerDriverHook(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.DebugLevel, "").With("session", "abc")

	l.Driver()("TX: *IDN?")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "TX: *IDN?", lines[0]["message"])
	assert.Equal(t, "abc", lines[0]["session"])
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "verbose"})
	assert.Error(t, err)

	l, err := New(Config{Level: "DEBUG", JSON: true})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l.logger.GetLevel())
}
