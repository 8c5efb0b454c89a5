package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts the script source and line from the event context.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if script := GetScript(ctx); script != "" {
		e.Str("script", script)
	}

	if line := GetLine(ctx); line > 0 {
		e.Int("line", line)
	}
}
