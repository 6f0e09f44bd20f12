// Package logger builds the process-wide slog.Logger: a console handler
// and an optional log file, fanned out with slog-multi.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
)

const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

type config struct {
	level   slog.Level
	format  string
	console io.Writer
	file    string
	quiet   bool
}

type Option func(*config)

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithFormat sets the format (auto, text or json).
func WithFormat(format string) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithConsole replaces stderr as the console writer.
func WithConsole(w io.Writer) Option {
	return func(c *config) {
		c.console = w
	}
}

// WithFile also appends every record to the file at path.
func WithFile(path string) Option {
	return func(c *config) {
		c.file = path
	}
}

// WithQuiet suppresses console output.
func WithQuiet() Option {
	return func(c *config) {
		c.quiet = true
	}
}

// New builds a logger. The returned close function releases the log file,
// if any, and is always non-nil.
func New(opts ...Option) (*slog.Logger, func() error, error) {
	cfg := &config{level: slog.LevelInfo, format: FormatAuto, console: os.Stderr}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     cfg.level,
		AddSource: cfg.level == slog.LevelDebug,
	}

	var handlers []slog.Handler
	closeFn := func() error { return nil }

	if !cfg.quiet && cfg.console != nil {
		handlers = append(handlers, newHandler(cfg.console, resolveFormat(cfg.format, cfg.console), handlerOpts))
	}

	if cfg.file != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.file), 0o755); err != nil {
			return nil, closeFn, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("opening log file: %w", err)
		}
		// Files always get JSON unless text was asked for explicitly.
		format := FormatJSON
		if cfg.format == FormatText {
			format = FormatText
		}
		handlers = append(handlers, &guardedHandler{handler: newHandler(f, format, handlerOpts), mu: &sync.Mutex{}})
		closeFn = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// ValidFormat reports whether s names a supported format.
func ValidFormat(s string) bool {
	switch s {
	case FormatAuto, FormatText, FormatJSON:
		return true
	}
	return false
}

func resolveFormat(format string, w io.Writer) string {
	if format != FormatAuto {
		return format
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return FormatText
	}
	return FormatJSON
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if format == FormatText {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// guardedHandler serialises writes so concurrent requests do not interleave
// lines in the log file.
type guardedHandler struct {
	handler slog.Handler
	mu      *sync.Mutex
}

func (g *guardedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return g.handler.Enabled(ctx, level)
}

func (g *guardedHandler) Handle(ctx context.Context, record slog.Record) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.handler.Handle(ctx, record)
}

func (g *guardedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &guardedHandler{handler: g.handler.WithAttrs(attrs), mu: g.mu}
}

func (g *guardedHandler) WithGroup(name string) slog.Handler {
	return &guardedHandler{handler: g.handler.WithGroup(name), mu: g.mu}
}
