package xtrace

import "testing"

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	order := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarning, LevelError}
	for i := 1; i < len(order); i++ {
		if !(order[i-1] < order[i]) {
			t.Fatalf("expected %s < %s", order[i-1], order[i])
		}
	}
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	want := map[Level]string{
		LevelTrace:   "TRACE",
		LevelDebug:   "DEBUG",
		LevelInfo:    "INFO",
		LevelWarning: "WARNING",
		LevelError:   "ERROR",
	}
	for l, s := range want {
		if got := l.String(); got != s {
			t.Fatalf("Level(%d).String() = %q, want %q", l, got, s)
		}
	}
}

func TestParseLevelRoundTrip(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"trace":   LevelTrace,
		"TRACE":   LevelTrace,
		"Trace":   LevelTrace,
		"debug":   LevelDebug,
		"DeBuG":   LevelDebug,
		"info":    LevelInfo,
		"INFO":    LevelInfo,
		"warning": LevelWarning,
		"Warning": LevelWarning,
		"error":   LevelError,
		"ERROR":   LevelError,
		"  info ": LevelInfo,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		if !ok {
			t.Fatalf("ParseLevel(%q): ok = false", in)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "warn", "verbose", "fatal", "0", "infoo"} {
		if _, ok := ParseLevel(in); ok {
			t.Fatalf("ParseLevel(%q): ok = true, want false", in)
		}
	}
}
