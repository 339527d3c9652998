package utils

import (
	"context"

	"sonrisitas-client/internal/pkg/constvars"

	"github.com/google/uuid"
)

// WithRequestID stamps a fresh request id onto the context so every log line
// of a single user action can be correlated.
func WithRequestID(ctx context.Context) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, uuid.NewString())
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
