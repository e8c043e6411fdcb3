package zap

import (
	"io"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xtrace"
)

// New returns a Formatter that forwards records to l. The sink argument
// supplied on each emission is ignored; zap writes to its own core.
//
// Uses Logger.Check so nothing is built when the backend filters the
// level. zap has no trace level; trace records travel as debug.
func New(l *zap.Logger) xtrace.Formatter {
	if l == nil {
		l = zap.NewNop()
	}
	return func(_ io.Writer, r *xtrace.Record) {
		ce := l.Check(mapLevel(r.Level()), r.Message())
		if ce == nil {
			return
		}
		ce.Write(zap.String("caller", formatCaller(r.Location())))
	}
}

func mapLevel(l xtrace.Level) zapcore.Level {
	switch l {
	case xtrace.LevelTrace, xtrace.LevelDebug:
		return zapcore.DebugLevel
	case xtrace.LevelInfo:
		return zapcore.InfoLevel
	case xtrace.LevelWarning:
		return zapcore.WarnLevel
	case xtrace.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.ErrorLevel
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
