package zap

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xtrace"
)

// Config is an explicit, code-first configuration for a zap-backed
// setup.
type Config struct {
	Writer   io.Writer // default: os.Stdout
	MinLevel xtrace.Level
}

// Use builds a JSON-encoding zap core writing to cfg.Writer, wraps it
// in a Formatter and installs it process-wide together with
// cfg.MinLevel. The formatter is returned for reuse.
func Use(cfg Config) xtrace.Formatter {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	al := zap.NewAtomicLevelAt(mapLevel(cfg.MinLevel))
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		al,
	)

	f := New(zap.New(core))
	xtrace.NewBuilder().
		WithMinLevel(cfg.MinLevel).
		WithFormatter(f).
		Init()
	return f
}
