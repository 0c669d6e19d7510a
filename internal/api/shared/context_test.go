package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	ctx := SetTraceID(context.Background())

	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, TraceIDLength*2)

	// Each request gets its own trace ID.
	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)

	// A context without a trace ID yields an empty string.
	assert.Empty(t, GetTraceID(context.Background()))
}
