package logging

import (
	"time"

	"github.com/rs/zerolog"
)

type fieldKind uint8

const (
	kindString fieldKind = iota
	kindBool
	kindInt
	kindTime
)

// Field is a single structured key/value attached to a log entry. The set
// of value kinds is closed; construct fields with Str, Bool, Int or Time.
type Field struct {
	Key  string
	kind fieldKind
	str  string
	num  int64
	flag bool
	ts   time.Time
}

// Str returns a string field.
func Str(key, value string) Field {
	return Field{Key: key, kind: kindString, str: value}
}

// Bool returns a boolean field.
func Bool(key string, value bool) Field {
	return Field{Key: key, kind: kindBool, flag: value}
}

// Int returns an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, kind: kindInt, num: int64(value)}
}

// Time returns a timestamp field.
func Time(key string, value time.Time) Field {
	return Field{Key: key, kind: kindTime, ts: value}
}

// Value returns the field's value as a plain Go value (string, bool, int or
// time.Time).
func (f Field) Value() any {
	switch f.kind {
	case kindBool:
		return f.flag
	case kindInt:
		return int(f.num)
	case kindTime:
		return f.ts
	default:
		return f.str
	}
}

func (f Field) apply(e *zerolog.Event) *zerolog.Event {
	switch f.kind {
	case kindBool:
		return e.Bool(f.Key, f.flag)
	case kindInt:
		return e.Int64(f.Key, f.num)
	case kindTime:
		return e.Time(f.Key, f.ts)
	default:
		return e.Str(f.Key, f.str)
	}
}
