package xtrace

import "runtime"

// Location identifies the call site that produced a record.
//
// Locations captured automatically carry Column == 0: the Go runtime
// exposes file and line but not column information. Callers building
// records by hand (or custom formatters) are free to supply one.
type Location struct {
	File   string
	Line   uint32
	Column uint32
}

// Record is one log event: a severity, a fully rendered message and
// the call site it originated from. Records are immutable after
// construction and live only for the duration of the formatter call.
type Record struct {
	level   Level
	message string
	loc     Location
}

// NewRecord builds a record. No validation is performed; empty
// messages and zero locations are accepted as-is.
func NewRecord(level Level, message string, loc Location) *Record {
	return &Record{level: level, message: message, loc: loc}
}

func (r *Record) Level() Level       { return r.level }
func (r *Record) Message() string    { return r.message }
func (r *Record) Location() Location { return r.loc }

// callerLocation walks the stack to the logical call site. skip counts
// frames above callerLocation itself, as in runtime.Caller.
func callerLocation(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "???"}
	}
	return Location{File: file, Line: uint32(line)}
}
