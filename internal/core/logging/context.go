package logging

import "context"

type contextKey string

const (
	scriptKey contextKey = "script"
	lineKey   contextKey = "line"
)

// WithScript records the script source being executed.
func WithScript(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, scriptKey, source)
}

// WithLine records the script line being executed.
func WithLine(ctx context.Context, line int) context.Context {
	return context.WithValue(ctx, lineKey, line)
}

// GetScript retrieves the script source from the context.
// Returns empty string if not present.
func GetScript(ctx context.Context) string {
	if s, ok := ctx.Value(scriptKey).(string); ok {
		return s
	}
	return ""
}

// GetLine retrieves the script line from the context.
// Returns 0 if not present.
func GetLine(ctx context.Context) int {
	if n, ok := ctx.Value(lineKey).(int); ok {
		return n
	}
	return 0
}
