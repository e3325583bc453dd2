package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level Level, jsonFormat bool) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(level, jsonFormat)
	l.SetOutput(&buf)
	l.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return l, &buf
}

func TestTextOutput(t *testing.T) {
	l, buf := newTestLogger(INFO, false)
	l.WithField("timer", "decode").Info("summary", Fields{"samples": 3})

	assert.Equal(t, "[2024-03-01 12:00:00] INFO: summary samples=3 timer=decode\n", buf.String())
}

func TestLevelFilter(t *testing.T) {
	l, buf := newTestLogger(WARN, false)
	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestJSONOutput(t *testing.T) {
	l, buf := newTestLogger(DEBUG, true)
	l.Debug("tic", Fields{"domain": "wall"})

	var e entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
	assert.Equal(t, "DEBUG", e.Level)
	assert.Equal(t, "tic", e.Message)
	assert.Equal(t, "wall", e.Fields["domain"])
	assert.Equal(t, "2024-03-01T12:00:00Z", e.Timestamp)
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newTestLogger(INFO, false)
	_ = parent.WithField("k", "v")
	parent.Info("plain")
	assert.NotContains(t, buf.String(), "k=v")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel("Warning"))
	assert.Equal(t, ERROR, ParseLevel(" ERROR "))
	assert.Equal(t, INFO, ParseLevel("verbose"))
	assert.Equal(t, "ERROR", ERROR.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}
