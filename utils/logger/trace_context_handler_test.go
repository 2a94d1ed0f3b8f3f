package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTraceContextHandler_WithValidSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(provider)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	var buf bytes.Buffer
	handler := NewTraceContextHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	testLogger := slog.New(handler)

	tracer := otel.Tracer("test")
	ctx, span := tracer.Start(context.Background(), "test-span")
	defer span.End()

	testLogger.InfoContext(ctx, "test message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	traceID, ok := entry["trace_id"].(string)
	require.True(t, ok, "expected trace_id in log entry")
	assert.NotEmpty(t, traceID)
	assert.NotEqual(t, "00000000000000000000000000000000", traceID)

	spanID, ok := entry["span_id"].(string)
	require.True(t, ok, "expected span_id in log entry")
	assert.NotEmpty(t, spanID)
}

func TestTraceContextHandler_WithoutSpan(t *testing.T) {
	var buf bytes.Buffer
	handler := NewTraceContextHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	testLogger := slog.New(handler)

	testLogger.InfoContext(context.Background(), "test message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	_, hasTraceID := entry["trace_id"]
	assert.False(t, hasTraceID, "trace_id must be absent without an active span")
}

func TestTraceContextHandler_WithAttrsPreservesWrapping(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(provider)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	var buf bytes.Buffer
	handler := NewTraceContextHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	testLogger := slog.New(handler).With("component", "search")

	tracer := otel.Tracer("test")
	ctx, span := tracer.Start(context.Background(), "test-span")
	defer span.End()

	testLogger.InfoContext(ctx, "test message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "search", entry["component"])
	assert.NotEmpty(t, entry["trace_id"])
}
