package loopback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/gitauth/pkg/logger"
)

// callbackPath is the only path that can resolve a pending server.
const callbackPath = "/callback"

// Callback is the payload of a successful OAuth redirect.
type Callback struct {
	Code  string
	State string
}

type result struct {
	err error
	cb  Callback
}

// Server is a one-shot loopback callback listener. It resolves exactly once:
// to a Callback, a *ProviderError, ErrMalformedCallback, ErrTimeout, or a
// transport failure. After resolution it is spent.
type Server struct {
	srv       *http.Server
	log       *slog.Logger
	results   chan result
	grp       *errgroup.Group
	port      int
	closeOnce sync.Once
}

// Option configures a loopback server.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the server logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Bind starts a server on the first preferred port that can be bound, falling
// back to an OS-assigned ephemeral port. Returns ErrBindFailed only when the
// ephemeral bind fails too.
func Bind(preferred []int, opts ...Option) (*Server, error) {
	var lastErr error
	for _, port := range preferred {
		ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err != nil {
			lastErr = err
			continue
		}
		return newServer(ln, opts...), nil
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, errors.Join(ErrBindFailed, err, lastErr)
	}
	return newServer(ln, opts...), nil
}

// BindRequired starts a server on exactly the given port. Providers that
// allow a single registered callback URL must not silently move to another
// port, so a failed bind is ErrPortUnavailable, not a fallback.
func BindRequired(port int, opts ...Option) (*Server, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, errors.Join(ErrPortUnavailable, fmt.Errorf("port %d: %w", port, err))
	}
	return newServer(ln, opts...), nil
}

func newServer(ln net.Listener, opts ...Option) *Server {
	o := options{logger: logger.NewNope()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Server{
		port:    ln.Addr().(*net.TCPAddr).Port,
		log:     o.logger,
		results: make(chan result, 1),
		grp:     &errgroup.Group{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, s.handleCallback)
	mux.HandleFunc("/", s.handleOther)

	s.srv = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.grp.Go(func() error {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.deliver(result{err: fmt.Errorf("loopback: serve on port %d: %w", s.port, err)})
			return err
		}
		return nil
	})

	s.log.Info("loopback server listening", slog.Int("port", s.port))
	return s
}

// Port returns the bound local port.
func (s *Server) Port() int {
	return s.port
}

// Wait blocks until the server resolves or ctx expires, whichever comes
// first, and shuts the server down on the way out. A deadline expiry maps to
// ErrTimeout. Wait must be called off the caller's main execution context;
// the accept loop itself runs on its own goroutine either way.
func (s *Server) Wait(ctx context.Context) (Callback, error) {
	defer s.Close()

	select {
	case res := <-s.results:
		if res.err != nil {
			s.log.InfoContext(ctx, "loopback callback failed",
				slog.Int("port", s.port), slog.String("error", res.err.Error()))
			return Callback{}, res.err
		}
		s.log.InfoContext(ctx, "loopback callback resolved", slog.Int("port", s.port))
		return res.cb, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Callback{}, ErrTimeout
		}
		return Callback{}, ctx.Err()
	}
}

// Close stops the listener and waits for the accept goroutine to exit.
// It is idempotent; closing an unresolved server cancels it cleanly.
func (s *Server) Close() error {
	s.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(ctx)
		_ = s.grp.Wait()
	})
	return nil
}

// deliver hands the terminal result to Wait. Only the first result counts;
// later requests on a resolved server are answered but ignored.
func (s *Server) deliver(res result) {
	select {
	case s.results <- res:
	default:
	}
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// Every /callback request is terminal; stop listening once the page
	// below has been written.
	defer func() { go s.Close() }()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	switch {
	case q.Get("code") != "":
		s.deliver(result{cb: Callback{
			Code:  q.Get("code"),
			State: q.Get("state"),
		}})
		_, _ = w.Write([]byte(successPage))
	case q.Get("error") != "":
		provErr := &ProviderError{
			Code:        q.Get("error"),
			Description: q.Get("error_description"),
		}
		s.deliver(result{err: provErr})
		reason := provErr.Code
		if provErr.Description != "" {
			reason = provErr.Description
		}
		_ = failurePage.Execute(w, reason)
	default:
		s.deliver(result{err: ErrMalformedCallback})
		_ = failurePage.Execute(w, "The login response was missing its authorization code.")
	}
}

// handleOther answers favicon requests and stray probes without resolving
// the pending wait.
func (s *Server) handleOther(w http.ResponseWriter, r *http.Request) {
	s.log.Debug("ignoring non-callback request",
		slog.Int("port", s.port), slog.String("path", r.URL.Path))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(notFoundPage))
}
