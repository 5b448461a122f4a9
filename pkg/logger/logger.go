package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// New creates a JSON logger writing to stdout with secret redaction applied.
func New() *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: redactSecrets,
	})
	return slog.New(newFlowHandler(h))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type flowIDKey struct{}

// WithFlowID stores a login-attempt identifier in the context so every log
// record carries it, no matter which goroutine emits the record.
func WithFlowID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, flowIDKey{}, id)
}

// FlowIDFromContext returns the flow ID stored by WithFlowID, if any.
func FlowIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(flowIDKey{}).(string)
	return id, ok && id != ""
}

// flowHandler injects the context flow ID into each record before delegating.
type flowHandler struct {
	next slog.Handler
}

func newFlowHandler(next slog.Handler) slog.Handler {
	return &flowHandler{next: next}
}

func (h *flowHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *flowHandler) Handle(ctx context.Context, rec slog.Record) error {
	if id, ok := FlowIDFromContext(ctx); ok {
		rec.AddAttrs(slog.String("flow_id", id))
	}
	return h.next.Handle(ctx, rec)
}

func (h *flowHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &flowHandler{next: h.next.WithAttrs(attrs)}
}

func (h *flowHandler) WithGroup(name string) slog.Handler {
	return &flowHandler{next: h.next.WithGroup(name)}
}
