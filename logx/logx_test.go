package logx

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level slog.Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	return New(slog.New(h)), &buf
}

func TestLogger_tags(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *Logger)
		level string
		msg   string
	}{
		{"ok", func(l *Logger) { l.OK("ready", "port", 8080) }, "INFO", TagOK + "ready"},
		{"ok debug", func(l *Logger) { l.OKDebug("ready", "port", 8080) }, "DEBUG", TagOK + "ready"},
		{"skip", func(l *Logger) { l.Skip("ready", "port", 8080) }, "INFO", TagSkip + "ready"},
		{"skip warn", func(l *Logger) { l.SkipWarn("ready", "port", 8080) }, "WARN", TagSkip + "ready"},
		{"skip debug", func(l *Logger) { l.SkipDebug("ready", "port", 8080) }, "DEBUG", TagSkip + "ready"},
		{"fail", func(l *Logger) { l.Fail("ready", "port", 8080) }, "ERROR", TagFail + "ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestLogger(slog.LevelDebug)
			tt.log(l)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.msg, entry["msg"])
			assert.EqualValues(t, 8080, entry["port"])
		})
	}
}

func TestLogger_levelFilter(t *testing.T) {
	l, buf := newTestLogger(slog.LevelInfo)
	l.OKDebug("hidden")
	l.SkipDebug("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_nil(t *testing.T) {
	assert.Same(t, slog.Default(), New(nil).Logger)
}

func TestLogger_sourceIsCaller(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{AddSource: true})))

	l.Fail("disk full")

	var entry struct {
		Source slog.Source `json:"source"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "logx_test.go", filepath.Base(entry.Source.File))
	assert.Contains(t, entry.Source.Function, "TestLogger_sourceIsCaller")
}
