package gitauth

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures the login service.
type Option func(*Service)

// WithLogger sets the service logger. Token values are masked by call sites;
// pair with pkg/logger for belt-and-braces redaction. Defaults to a no-op
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithHTTPClient sets the HTTP client used for token endpoint calls.
// Useful for testing with httptest servers or custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Service) {
		if hc != nil {
			s.httpClient = hc
		}
	}
}

// WithWaitTimeout bounds how long WaitForCallback blocks.
// Defaults to 5 minutes.
func WithWaitTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.waitTimeout = d
		}
	}
}

// WithPreferredPorts sets the loopback ports tried, in order, before falling
// back to an OS-assigned ephemeral port. Fixed-port providers ignore this.
func WithPreferredPorts(ports []int) Option {
	return func(s *Service) {
		if len(ports) > 0 {
			s.preferredPorts = ports
		}
	}
}
