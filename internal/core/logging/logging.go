// Package logging defines the leveled logging contract consumed by services
// and its zerolog-backed implementation.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the logging collaborator used by services. Calls are
// fire-and-forget: they never fail and never block on I/O beyond the
// underlying writer.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
}

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return ComponentOf(log.Logger, name)
}

// ComponentOf derives a component logger from base.
func ComponentOf(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str("cmp", name).Logger()
}

// Zerolog adapts a zerolog.Logger to the Logger contract.
type Zerolog struct {
	log zerolog.Logger
}

var _ Logger = (*Zerolog)(nil)

// NewZerolog wraps l.
func NewZerolog(l zerolog.Logger) *Zerolog {
	return &Zerolog{log: l}
}

func (z *Zerolog) Info(msg string, fields ...Field) {
	emit(z.log.Info(), fields).Msg(msg)
}

func (z *Zerolog) Warn(msg string, fields ...Field) {
	emit(z.log.Warn(), fields).Msg(msg)
}

func (z *Zerolog) Error(msg string, err error, fields ...Field) {
	emit(z.log.Error().Err(err), fields).Msg(msg)
}

func emit(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		e = f.apply(e)
	}
	return e
}
