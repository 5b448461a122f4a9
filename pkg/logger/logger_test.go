package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: redactSecrets,
	})
	return slog.New(newFlowHandler(h))
}

func TestRedaction(t *testing.T) {
	t.Parallel()

	t.Run("secret keys are masked", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := testLogger(&buf)

		log.Info("exchange done",
			slog.String("access_token", "gho_supersecretvalue1234"),
			slog.String("refresh_token", "ghr_othersecretvalue5678"),
			slog.String("client_secret", "shhh-not-this-either"),
			slog.String("provider", "github"),
		)

		out := buf.String()
		require.NotContains(t, out, "gho_supersecretvalue1234")
		require.NotContains(t, out, "ghr_othersecretvalue5678")
		require.NotContains(t, out, "shhh-not-this-either")
		require.Contains(t, out, "github")
		require.Contains(t, out, "[redacted]")
	})

	t.Run("short secrets are fully hidden", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := testLogger(&buf)

		log.Info("cb", slog.String("code", "abc123"))
		require.NotContains(t, buf.String(), "abc123")
	})

	t.Run("non-secret keys pass through", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := testLogger(&buf)

		log.Info("start", slog.String("authorize_url", "https://example.com/auth"))
		require.Contains(t, buf.String(), "https://example.com/auth")
	})
}

func TestFlowID(t *testing.T) {
	t.Parallel()

	t.Run("attached from context", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := testLogger(&buf)

		ctx := WithFlowID(context.Background(), "flow-42")
		log.InfoContext(ctx, "waiting")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		require.Equal(t, "flow-42", rec["flow_id"])
	})

	t.Run("absent without context value", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := testLogger(&buf)

		log.InfoContext(context.Background(), "waiting")
		require.NotContains(t, buf.String(), "flow_id")
	})

	t.Run("round-trip", func(t *testing.T) {
		t.Parallel()
		ctx := WithFlowID(context.Background(), "flow-7")
		id, ok := FlowIDFromContext(ctx)
		require.True(t, ok)
		require.Equal(t, "flow-7", id)

		_, ok = FlowIDFromContext(context.Background())
		require.False(t, ok)
	})
}
