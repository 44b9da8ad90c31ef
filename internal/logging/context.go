package logging

import "context"

type requestIDKey struct{}

// WithRequestID tags ctx so every log line of one invocation can be joined.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Fields adds the request id carried by ctx, if any, to f.
func Fields(ctx context.Context, f map[string]any) map[string]any {
	if f == nil {
		f = map[string]any{}
	}
	if id := RequestID(ctx); id != "" {
		f["request_id"] = id
	}
	return f
}
