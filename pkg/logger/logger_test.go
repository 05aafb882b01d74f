package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaml/ariaml-go/pkg/logger"
)

type ctxKey struct{}

func requestID(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with extractor", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(requestID, nil))

		ctx := context.WithValue(context.Background(), ctxKey{}, "abc-123")
		log.InfoContext(ctx, "rendered", slog.String("mode", "full"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "rendered", rec["msg"])
		assert.Equal(t, "full", rec["mode"])
		assert.Equal(t, "abc-123", rec["request_id"])
	})

	t.Run("extractor skipped without value", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(requestID))
		log.Info("no id")

		assert.NotContains(t, buf.String(), "request_id")
	})

	t.Run("level filter", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		log.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))
		log.Info("hello", slog.Int("n", 1))

		assert.True(t, strings.Contains(buf.String(), "msg=hello"))
		assert.Contains(t, buf.String(), "n=1")
	})

	t.Run("empty sentry dsn falls back to output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithSentry(logger.SentryConfig{}))
		log.Error("boom")

		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("attrs and groups keep extractors", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(requestID)).
			With(slog.String("component", "pages")).
			WithGroup("page")

		ctx := context.WithValue(context.Background(), ctxKey{}, "r-1")
		log.InfoContext(ctx, "loaded", slog.String("route", "/"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "pages", rec["component"])
		page, ok := rec["page"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "/", page["route"])
		assert.Equal(t, "r-1", page["request_id"])
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()
	log := logger.NewNope()
	require.NotNil(t, log)
	log.Error("discarded")
}

func TestParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
	assert.Equal(t, logger.FormatText, logger.ParseFormat("Text"))
	assert.Equal(t, logger.FormatJSON, logger.ParseFormat(""))
}
