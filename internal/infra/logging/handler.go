// Package logging provides the process-wide slog setup: a JSON or text
// handler chosen by the configured log format, and a context-aware
// wrapper that injects request-scoped attributes (request_id, job_id) into
// every log line without threading a logger through every call site.
package logging

import (
	"context"
	"log/slog"
)

type ctxKey string

// attrsKey is the context key under which request-scoped attributes are
// stashed by WithAttrs.
const attrsKey ctxKey = "log_attrs"

// ContextHandler wraps a slog.Handler, splicing in any attributes attached
// to the record's context via WithAttrs.
type ContextHandler struct {
	slog.Handler
}

// NewContextHandler wraps h.
func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{Handler: h}
}

// Handle extracts attributes from ctx and adds them to the log record.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(attrsKey).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

// WithAttrs returns a context carrying attrs for automatic inclusion in any
// log record made with that context, in addition to any already attached.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	existing, _ := ctx.Value(attrsKey).([]slog.Attr)
	return context.WithValue(ctx, attrsKey, append(existing, attrs...))
}

// WithGroup implements slog.Handler.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// WithAttrs implements slog.Handler (distinct from the package-level
// WithAttrs, which operates on a context rather than a handler).
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}
