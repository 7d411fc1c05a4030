package logctx

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestBegin_TagsLoggerWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := Begin(context.Background(), base)

	requestID := GetRequestID(ctx)
	require.NotEmpty(t, requestID)

	GetLogger(ctx).Info("booked")
	assert.Contains(t, buf.String(), "request_id="+requestID)
}

func TestBegin_NilLogger(t *testing.T) {
	ctx := Begin(context.Background(), nil)

	assert.NotEmpty(t, GetRequestID(ctx))
	assert.Nil(t, GetLogger(ctx))
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}
