package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("", true))
	assert.Equal(t, slog.LevelInfo, parseLevel("", false))
	assert.Equal(t, slog.LevelWarn, parseLevel(" WARN ", true))
	assert.Equal(t, slog.LevelError, parseLevel("error", false))
	assert.Equal(t, slog.LevelInfo, parseLevel("loud", false))
}

func TestInitProductionWritesJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(Options{Output: &buf})

	slog.Debug("hidden")
	slog.Info("habit tracked", "habit_id", "h1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "habit tracked", line["msg"])
	assert.Equal(t, "h1", line["habit_id"])
}

func TestInitDevelopmentWritesText(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(Options{Development: true, Output: &buf})

	Log.Debug("quiz scored", "mbti_type", "INFP")
	assert.Contains(t, buf.String(), "msg=\"quiz scored\"")
	assert.Contains(t, buf.String(), "mbti_type=INFP")
}
