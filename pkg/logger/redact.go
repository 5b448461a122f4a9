package logger

import (
	"context"
	"log/slog"
)

// secretKeys are attribute keys whose values are masked before writing.
// Authorization codes are single-use but still grant a token if intercepted
// before the exchange, so they are masked too.
var secretKeys = map[string]struct{}{
	"access_token":  {},
	"refresh_token": {},
	"client_secret": {},
	"code":          {},
	"authorization": {},
	"token":         {},
}

// redactSecrets is a slog ReplaceAttr hook that masks secret values.
func redactSecrets(_ []string, a slog.Attr) slog.Attr {
	if _, secret := secretKeys[a.Key]; !secret {
		return a
	}
	if a.Value.Kind() != slog.KindString {
		return a
	}
	a.Value = slog.StringValue(mask(a.Value.String()))
	return a
}

// redactHandler masks secret attributes on the record itself, so handlers
// behind it (fan-out destinations without their own ReplaceAttr hook) never
// see the raw values.
type redactHandler struct {
	next slog.Handler
}

func newRedactHandler(next slog.Handler) slog.Handler {
	return &redactHandler{next: next}
}

func (h *redactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *redactHandler) Handle(ctx context.Context, rec slog.Record) error {
	clean := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(redactSecrets(nil, a))
		return true
	})
	return h.next.Handle(ctx, clean)
}

func (h *redactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = redactSecrets(nil, a)
	}
	return &redactHandler{next: h.next.WithAttrs(masked)}
}

func (h *redactHandler) WithGroup(name string) slog.Handler {
	return &redactHandler{next: h.next.WithGroup(name)}
}

// mask keeps a short prefix for correlation and hides the rest. Values too
// short to safely truncate are hidden entirely.
func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "[redacted]"
	}
	return s[:4] + "...[redacted]"
}
