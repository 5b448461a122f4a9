// Package logger provides structured logging for login flows built on
// log/slog.
//
// Login flows handle secrets that must never reach a log line: access and
// refresh tokens, client secrets, and authorization codes. Every logger this
// package builds masks the values of those attribute keys before they are
// written, so call sites can log request and response metadata without
// auditing each attribute.
//
// # Usage
//
//	log := logger.New()
//
//	ctx := logger.WithFlowID(ctx, flowID)
//	log.InfoContext(ctx, "token exchange complete",
//		slog.String("provider", "github"),
//		slog.String("access_token", token)) // written masked
//
// Flow IDs stored in context via WithFlowID are attached to every record
// logged with that context, which is how a callback arriving on an arbitrary
// goroutine is correlated back to the attempt that produced it.
//
// NewWithSentry adds error forwarding to Sentry and degrades to plain stdout
// logging when no DSN is configured. NewNope returns a discard logger for
// library defaults.
package logger
