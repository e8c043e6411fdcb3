package zerolog

import (
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xtrace"
)

// New returns a Formatter that forwards records to l instead of
// rendering the console line. The sink argument supplied on each
// emission is ignored; zerolog writes to the writer it was built with.
//
// The call-site location travels as a "caller" field so console and
// JSON output keep the file:line:column information.
func New(l zerolog.Logger) xtrace.Formatter {
	return func(_ io.Writer, r *xtrace.Record) {
		ev := l.WithLevel(mapLevel(r.Level()))
		ev.Str("caller", formatCaller(r.Location()))
		ev.Msg(r.Message())
	}
}

func mapLevel(l xtrace.Level) zerolog.Level {
	switch l {
	case xtrace.LevelTrace:
		return zerolog.TraceLevel
	case xtrace.LevelDebug:
		return zerolog.DebugLevel
	case xtrace.LevelInfo:
		return zerolog.InfoLevel
	case xtrace.LevelWarning:
		return zerolog.WarnLevel
	case xtrace.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.ErrorLevel
	}
}

func formatCaller(loc xtrace.Location) string {
	b := make([]byte, 0, len(loc.File)+8)
	b = append(b, loc.File...)
	b = append(b, ':')
	b = strconv.AppendUint(b, uint64(loc.Line), 10)
	b = append(b, ':')
	b = strconv.AppendUint(b, uint64(loc.Column), 10)
	return string(b)
}
