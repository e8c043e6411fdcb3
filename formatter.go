package xtrace

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/trickstertwo/xclock"
)

// Formatter renders one record to a sink (Strategy pattern). A custom
// Formatter installed via Builder.WithFormatter replaces the default
// entirely: it may ignore the sink, the colors or the line shape; the
// only contract is that it accepts the (sink, record) pair and performs
// the rendering itself. Formatters are swapped whole, never chained.
type Formatter func(w io.Writer, r *Record)

type consoleOptions struct {
	noColor   bool
	detectTTY bool
	clock     xclock.Clock
}

// ConsoleOption adjusts the console formatter built by NewConsole.
type ConsoleOption func(*consoleOptions)

// WithoutColor disables the ANSI decoration of the level name.
func WithoutColor() ConsoleOption {
	return func(o *consoleOptions) { o.noColor = true }
}

// WithColorDetection keeps color only when the sink is a terminal.
// Non-file sinks (buffers, pipes wrapped in io.Writer) render plain.
func WithColorDetection() ConsoleOption {
	return func(o *consoleOptions) { o.detectTTY = true }
}

// WithTimestamps prefixes every line with an RFC3339Nano timestamp read
// from clock. A nil clock falls back to xclock.Default(), so frozen or
// offset clocks installed process-wide are respected.
func WithTimestamps(clock xclock.Clock) ConsoleOption {
	return func(o *consoleOptions) {
		if clock == nil {
			clock = xclock.Default()
		}
		o.clock = clock
	}
}

// NewConsole returns the console Formatter. With no options it renders
// exactly what the built-in default renders:
//
//	[<COLORED-LEVEL-NAME> <file>:<line>:<column>] <message>\n
//
// with the color reset immediately after the level name. Each line is
// staged in a pooled buffer and issued as a single Write.
func NewConsole(opts ...ConsoleOption) Formatter {
	var o consoleOptions
	for _, opt := range opts {
		opt(&o)
	}
	return func(w io.Writer, r *Record) { renderConsole(w, r, &o) }
}

// defaultFormatter is the formatter active before any Init.
func defaultFormatter(w io.Writer, r *Record) {
	renderConsole(w, r, &consoleOptions{})
}

func renderConsole(w io.Writer, r *Record, o *consoleOptions) {
	color := !o.noColor
	if color && o.detectTTY && !sinkIsTerminal(w) {
		color = false
	}

	buf := getBuf()
	if o.clock != nil {
		buf.b = o.clock.Now().AppendFormat(buf.b, time.RFC3339Nano)
		buf.writeByte(' ')
	}
	buf.writeByte('[')
	if color {
		buf.writeString(r.level.color())
	}
	buf.writeString(r.level.String())
	if color {
		buf.writeString(ansiReset)
	}
	buf.writeByte(' ')
	loc := r.loc
	buf.writeString(loc.File)
	buf.writeByte(':')
	buf.b = strconv.AppendUint(buf.b, uint64(loc.Line), 10)
	buf.writeByte(':')
	buf.b = strconv.AppendUint(buf.b, uint64(loc.Column), 10)
	buf.writeString("] ")
	buf.writeString(r.message)
	buf.writeByte('\n')

	// Sink failures are the stream's business; no retry, no suppression.
	_, _ = w.Write(buf.b)
	putBuf(buf)
}

func sinkIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
