package xtrace

import "fmt"

// The five entry points share one emission path. Each gates on the
// configured minimum level before any rendering happens: a suppressed
// call never touches the format template or its arguments beyond the
// evaluation the caller already paid to produce them.
//
// Formatting follows the fmt verb set; the ...f names put the calls in
// reach of go vet's printf checker, so template/argument mismatches are
// flagged before the program runs.

// Tracef emits a trace-level message.
func Tracef(format string, args ...any) { emit(LevelTrace, format, args) }

// Debugf emits a debug-level message.
func Debugf(format string, args ...any) { emit(LevelDebug, format, args) }

// Infof emits an info-level message.
func Infof(format string, args ...any) { emit(LevelInfo, format, args) }

// Warningf emits a warning-level message.
func Warningf(format string, args ...any) { emit(LevelWarning, format, args) }

// Errorf emits an error-level message.
func Errorf(format string, args ...any) { emit(LevelError, format, args) }

func emit(level Level, format string, args []any) {
	cfg := active.Load()
	if level < cfg.minLevel {
		return
	}

	msg := fmt.Sprintf(format, args...)
	rec := NewRecord(level, msg, callerLocation(2))
	cfg.formatter(cfg.writer, rec)
}
