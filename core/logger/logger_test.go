package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brdoc/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New("debug", "JSON", &buf)
		log.Debug("checked", logger.Document("CPF", "529.982.247-25"), logger.Error(nil))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "checked", rec["msg"])
		assert.Equal(t, "DEBUG", rec["level"])
		assert.Equal(t, map[string]any{"kind": "CPF", "value": "529.982.247-25"}, rec["document"])
		assert.NotContains(t, rec, "error")
	})

	t.Run("text filters by level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New("warn", "text", &buf)
		log.Info("hidden")
		log.Warn("shown", logger.Result("invalid"))

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "msg=shown")
		assert.Contains(t, out, "result=invalid")
	})

	t.Run("unknown values fall back", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New("loud", "xml", &buf)
		log.Debug("hidden")
		log.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "level=INFO")
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{" DEBUG ", slog.LevelDebug, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := logger.ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
		} else {
			assert.NoError(t, err, tt.in)
		}
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	log := logger.Discard()
	assert.False(t, log.Enabled(t.Context(), slog.LevelError))
}

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("run", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "run", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestTiming(t *testing.T) {
	t.Parallel()
	d := logger.Duration(150 * time.Millisecond)
	assert.Equal(t, "duration", d.Key)
	assert.Equal(t, 150*time.Millisecond, d.Value.Duration())

	e := logger.Elapsed(time.Now().Add(-time.Second))
	assert.Equal(t, "elapsed", e.Key)
	assert.GreaterOrEqual(t, e.Value.Duration(), time.Second)
	assert.True(t, logger.Elapsed(time.Time{}).Equal(slog.Attr{}))
}

func TestMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		value any
	}{
		{"correlation id", logger.CorrelationID("abc"), "correlation_id", "abc"},
		{"component", logger.Component("brdoc"), "component", "brdoc"},
		{"result", logger.Result("valid"), "result", "valid"},
		{"count", logger.Count("invalid", 3), "invalid", int64(3)},
		{"field", logger.Field("cnpj"), "field", "cnpj"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.Any())
		})
	}

	for _, empty := range []slog.Attr{
		logger.CorrelationID(""),
		logger.Component(""),
		logger.Result(""),
		logger.Count("", 1),
		logger.Field(""),
		logger.Document("", ""),
	} {
		assert.True(t, empty.Equal(slog.Attr{}))
	}
}

func TestDocument(t *testing.T) {
	t.Parallel()
	attr := logger.Document("CNPJ", "")
	require.Equal(t, "document", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 1)
	assert.Equal(t, "kind", g[0].Key)
	assert.Equal(t, "CNPJ", g[0].Value.String())
}
