package xtrace

import "strings"

// Level is the severity of a record. Levels are totally ordered:
// Trace < Debug < Info < Warning < Error. The order is the sole
// filtering mechanism: a record passes when its level is at least the
// configured minimum.
type Level uint32

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
)

// ANSI escapes used by the default formatter. The color decorates only
// the level name; reset follows immediately after the name token.
const (
	ansiReset  = "\x1b[0m"
	ansiGray   = "\x1b[37m"
	ansiBlue   = "\x1b[34m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
)

// String returns the fixed-case display form (TRACE, DEBUG, ...).
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) color() string {
	switch l {
	case LevelTrace:
		return ansiGray
	case LevelDebug:
		return ansiBlue
	case LevelInfo:
		return ansiGreen
	case LevelWarning:
		return ansiYellow
	case LevelError:
		return ansiRed
	default:
		return ansiReset
	}
}

// ParseLevel maps a case-insensitive level name (trace, debug, info,
// warning, error) to its Level. ok is false for any other input;
// callers are expected to keep their previously configured level in
// that case rather than treat it as an error.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, true
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warning":
		return LevelWarning, true
	case "error":
		return LevelError, true
	default:
		return LevelTrace, false
	}
}
