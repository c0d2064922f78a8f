package ctxutil

import "context"

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "request_id"
)

// WithCaller stores the caller's wallet address in the context.
func WithCaller(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, callerKey, addr)
}

// CallerFromCtx extracts the caller's wallet address from the context.
// Returns "" and false if the value is missing, empty, or the wrong type.
func CallerFromCtx(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(callerKey).(string)
	if !ok || addr == "" {
		return "", false
	}
	return addr, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
