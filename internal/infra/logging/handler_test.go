package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandler_InjectsStashedAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	logger := slog.New(NewContextHandler(base))

	ctx := WithAttrs(context.Background(), slog.String("request_id", "abc123"))
	logger.InfoContext(ctx, "handled request")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "abc123", record["request_id"])
	assert.Equal(t, "handled request", record["msg"])
}

func TestContextHandler_AccumulatesAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	logger := slog.New(NewContextHandler(base))

	ctx := WithAttrs(context.Background(), slog.String("request_id", "r1"))
	ctx = WithAttrs(ctx, slog.String("job_id", "j1"))
	logger.InfoContext(ctx, "queued job")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "r1", record["request_id"])
	assert.Equal(t, "j1", record["job_id"])
}

func TestContextHandler_NoAttrsIsNoop(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	logger := slog.New(NewContextHandler(base))

	logger.InfoContext(context.Background(), "plain message")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "plain message", record["msg"])
	_, hasRequestID := record["request_id"]
	assert.False(t, hasRequestID)
}

func TestContextHandler_WithGroupAndWithAttrsPassthrough(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	h := NewContextHandler(base).WithGroup("svc").WithAttrs([]slog.Attr{slog.String("component", "queue")})
	logger := slog.New(h)

	logger.InfoContext(context.Background(), "grouped message")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	group, ok := record["svc"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "queue", group["component"])
}
