// Package xtrace is a minimal leveled tracing facility. Emission entry
// points (Tracef, Debugf, Infof, Warningf, Errorf) filter against a
// process-wide minimum level and hand surviving records, tagged with
// their call site, to a pluggable Formatter.
//
// A built-in default (minimum level Warning, colorized console output
// to stdout) is active from process start. Swap it with a Builder:
//
//	xtrace.FromEnv("XTRACE_LEVEL").Init()
//	xtrace.Infof("Hello, %s!", "world")
//
// The process-wide configuration is held behind an atomic pointer, so
// Init and concurrent emissions are safe; each emission runs under one
// consistent configuration snapshot.
package xtrace
