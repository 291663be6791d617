package callcontext

import (
	"context"

	"github.com/google/uuid"
)

type KeyContext string

var (
	keyRequestID KeyContext = "request_id"
	keyCallID    KeyContext = "call_id"
)

// WithRequestID stores the HTTP request ID in ctx
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)
	return id
}

// Begin tags ctx with a fresh call ID for one model call
func Begin(parent context.Context) (context.Context, uuid.UUID) {
	callID := uuid.New()
	return context.WithValue(parent, keyCallID, callID), callID
}

// GetCallID extracts the call ID from context
func GetCallID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keyCallID).(uuid.UUID)
	return id, ok
}
