package xtrace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// config is one installed configuration snapshot. Emission loads a
// snapshot per call, so a concurrent Init can never expose a
// half-applied configuration.
type config struct {
	minLevel  Level
	formatter Formatter
	writer    io.Writer
}

func defaultConfig() *config {
	return &config{
		minLevel:  LevelWarning,
		formatter: defaultFormatter,
		writer:    os.Stdout,
	}
}

// active holds the process-wide configuration (Singleton). The built-in
// default (Warning minimum, console formatter, standard output) is in
// place before any Init.
var active atomic.Pointer[config]

func init() { active.Store(defaultConfig()) }

// Builder separates configuration assembly from installation (Builder
// pattern). Assemble with the With* methods, then call Init to swap the
// configuration in process-wide.
type Builder struct {
	cfg config
}

// NewBuilder returns a builder carrying the default settings: minimum
// level Warning, console formatter, standard output sink.
func NewBuilder() *Builder {
	return &Builder{cfg: *defaultConfig()}
}

// FromEnv returns a builder seeded from NewBuilder, with the minimum
// level overridden when the named environment variable is set to one of
// trace, debug, info, warning or error in any casing. An unset variable
// or an unrecognized value keeps the default level; FromEnv never
// fails and emits no diagnostic.
func FromEnv(name string) *Builder {
	b := NewBuilder()
	if lvl, ok := ParseLevel(os.Getenv(name)); ok {
		b.cfg.minLevel = lvl
	}
	return b
}

// fileConfig is the on-disk shape accepted by FromFile.
type fileConfig struct {
	Level string `yaml:"level" json:"level"`
	Color *bool  `yaml:"color" json:"color"`
}

// FromFile returns a builder seeded from a YAML or JSON file, chosen by
// extension. The level key follows the FromEnv contract: unrecognized
// values silently keep the default. color: false switches the console
// formatter to plain output.
func FromFile(path string) (*Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	b := NewBuilder()
	if lvl, ok := ParseLevel(fc.Level); ok {
		b.cfg.minLevel = lvl
	}
	if fc.Color != nil && !*fc.Color {
		b.cfg.formatter = NewConsole(WithoutColor())
	}
	return b, nil
}

// WithMinLevel sets the minimum level that passes filtering. The filter
// is inclusive: a record at exactly this level is emitted.
func (b *Builder) WithMinLevel(l Level) *Builder {
	b.cfg.minLevel = l
	return b
}

// WithFormatter installs f as the active formatter, replacing the
// default whole. nil restores the default console formatter.
func (b *Builder) WithFormatter(f Formatter) *Builder {
	if f == nil {
		f = defaultFormatter
	}
	b.cfg.formatter = f
	return b
}

// WithWriter sets the sink handed to the formatter on every emission.
// nil restores standard output.
func (b *Builder) WithWriter(w io.Writer) *Builder {
	if w == nil {
		w = os.Stdout
	}
	b.cfg.writer = w
	return b
}

// Init atomically replaces the process-wide configuration with the
// builder's. Replacement is a full swap, never a merge: emissions that
// load the configuration after Init observe every new setting, while
// emissions already past their load finish under the old one. Init may
// be called at any time; emissions before the first Init run under the
// built-in default.
func (b *Builder) Init() {
	c := b.cfg
	active.Store(&c)
}
