package ctxutil

import "context"

type ContextKey[T any] string

// RequestIDKey carries the echo request id into manager and client logs.
const RequestIDKey ContextKey[string] = "request_id"

func (t ContextKey[T]) Get(ctx context.Context) (res T, ok bool) {
	val := ctx.Value(t)
	if val == nil {
		return res, false
	}
	res, ok = val.(T)
	return
}

func (t ContextKey[T]) Set(ctx context.Context, val T) context.Context {
	return context.WithValue(ctx, t, val)
}

// RequestID returns the request id stored in ctx, or an empty string.
func RequestID(ctx context.Context) string {
	id, _ := RequestIDKey.Get(ctx)
	return id
}
