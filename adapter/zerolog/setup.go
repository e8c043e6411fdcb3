package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xtrace"
)

// Config is an explicit, code-first configuration for a zerolog-backed
// setup. No envs, no hidden init, one call to Use.
type Config struct {
	Writer            io.Writer // default: os.Stdout
	MinLevel          xtrace.Level
	Console           bool   // pretty console output instead of JSON
	ConsoleTimeFormat string // only used if Console; default time.RFC3339Nano
	Timestamp         bool   // attach zerolog's own timestamp field
}

// Use builds a zerolog-backed formatter from cfg and installs it as the
// process-wide configuration together with cfg.MinLevel. The formatter
// is returned for callers that want to hold on to it.
func Use(cfg Config) xtrace.Formatter {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w}
		if cfg.ConsoleTimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		} else {
			cw.TimeFormat = cfg.ConsoleTimeFormat
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}
	zl = zl.Level(mapLevel(cfg.MinLevel))
	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}

	f := New(zl)
	xtrace.NewBuilder().
		WithMinLevel(cfg.MinLevel).
		WithFormatter(f).
		Init()
	return f
}
