package gitauth

import "errors"

var (
	// ErrProviderNotConfigured is returned when a login is requested for a
	// provider that has no configuration.
	ErrProviderNotConfigured = errors.New("gitauth: provider not configured")

	// ErrNoProviders is returned by New when the config holds no provider at
	// all.
	ErrNoProviders = errors.New("gitauth: no providers configured")

	// ErrStateMismatch is returned when the callback's state parameter does
	// not match the one issued at flow start. The authorization code is
	// discarded; the flow must be restarted.
	ErrStateMismatch = errors.New("gitauth: callback state mismatch")
)
