// Package log holds the structured logger shared by the symint
// packages. Records below warning level are only emitted for the
// enabled sections.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync/atomic"
)

var enabledSections = []string{
	"deduce",
	"shape",
	"cli",
}

// Level is the minimum level written by DefaultLogger.
var Level = new(slog.LevelVar)

var LoggerOpts = &slog.HandlerOptions{
	Level: Level,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	},
}

var current atomic.Pointer[slog.Logger]

func init() {
	SetOutput(os.Stderr)
}

// DefaultLogger returns the logger currently in use.
func DefaultLogger() *slog.Logger {
	return current.Load()
}

// SetOutput redirects all subsequently obtained loggers to w.
func SetOutput(w io.Writer) {
	current.Store(slog.New(&filteringHandler{underlying: slog.NewTextHandler(w, LoggerOpts)}))
}

// SetLevel parses one of debug, info, warn or error.
func SetLevel(name string) error {
	return Level.UnmarshalText([]byte(name))
}

// Section returns a logger whose records carry the named section.
func Section(name string) *slog.Logger {
	return DefaultLogger().With("section", name)
}

var _ slog.Handler = &filteringHandler{}

type filteringHandler struct {
	underlying slog.Handler
	sections   []string
}

func enabled(section string) bool {
	return slices.ContainsFunc(enabledSections, func(s string) bool {
		return strings.HasPrefix(section, s)
	})
}

func (f filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return f.underlying.Enabled(ctx, level)
}

func (f filteringHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= slog.LevelWarn || len(f.sections) != 0 {
		return f.underlying.Handle(ctx, record)
	}
	wantSection := false
	record.Attrs(func(attr slog.Attr) bool {
		wantSection = attr.Key == "section" && enabled(attr.Value.String())
		// stop at the first enabled section
		return !wantSection
	})
	if !wantSection {
		return nil
	}
	return f.underlying.Handle(ctx, record)
}

func (f filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sections := slices.Clone(f.sections)
	for _, attr := range attrs {
		if attr.Key == "section" && enabled(attr.Value.String()) {
			sections = append(sections, attr.Value.String())
		}
	}
	return &filteringHandler{
		underlying: f.underlying.WithAttrs(attrs),
		sections:   sections,
	}
}

func (f filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{
		underlying: f.underlying.WithGroup(name),
		sections:   f.sections,
	}
}
