// Package logging provides the slog handlers used by genything: JSON for
// machines, pretty JSON for people, and a sink that routes records into
// a test's log.
package logging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"time"
)

// PrettyJSONHandler is a custom handler that pretty prints JSON in development
type PrettyJSONHandler struct {
	*slog.JSONHandler
	writer io.Writer
	attrs  []slog.Attr
}

func (h *PrettyJSONHandler) Handle(ctx context.Context, r slog.Record) error {
	attrs := make(map[string]any, r.NumAttrs()+len(h.attrs)+3)
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	attrs["time"] = r.Time.Format(time.RFC3339)
	attrs["level"] = r.Level.String()
	attrs["msg"] = r.Message

	prettyJSON, err := json.MarshalIndent(attrs, "", "  ")
	if err != nil {
		return err
	}

	_, err = h.writer.Write(append(prettyJSON, '\n'))
	return err
}

// WithAttrs keeps logger-scoped attributes such as the property name.
func (h *PrettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyJSONHandler{
		JSONHandler: h.JSONHandler,
		writer:      h.writer,
		attrs:       append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

// NewPrettyJSONHandler creates a pretty JSON handler writing to w.
func NewPrettyJSONHandler(w io.Writer) *PrettyJSONHandler {
	return &PrettyJSONHandler{
		JSONHandler: slog.NewJSONHandler(w, nil),
		writer:      w,
	}
}

// New returns a logger writing format ("json", "pretty" or "text") to w.
// An empty or unknown format discards everything.
func New(w io.Writer, format string) *slog.Logger {
	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, nil))
	case "pretty":
		return slog.New(NewPrettyJSONHandler(w))
	case "text":
		return slog.New(slog.NewTextHandler(w, nil))
	default:
		return slog.New(slog.DiscardHandler)
	}
}

// Logfer is the part of testing.TB a test logger writes to.
type Logfer interface {
	Logf(format string, args ...any)
}

type logfWriter struct {
	tb Logfer
}

func (w logfWriter) Write(p []byte) (int, error) {
	w.tb.Logf("%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// NewTestLogger returns a logger whose records appear in the test's output,
// one t.Logf line per record, without timestamps.
func NewTestLogger(tb Logfer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(logfWriter{tb: tb}, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
