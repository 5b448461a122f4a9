package loopback

import (
	"errors"
	"fmt"
)

var (
	// ErrPortUnavailable is returned by BindRequired when the required port
	// cannot be bound. The flow fails; there is no fallback.
	ErrPortUnavailable = errors.New("loopback: required port unavailable")

	// ErrBindFailed is returned by Bind when neither a preferred port nor an
	// OS-assigned ephemeral port could be bound.
	ErrBindFailed = errors.New("loopback: no port could be bound")

	// ErrTimeout is returned by Wait when no callback arrived in time.
	// The login must be restarted from scratch with fresh PKCE and state.
	ErrTimeout = errors.New("loopback: timed out waiting for callback")

	// ErrMalformedCallback is returned when a /callback request carries
	// neither a code nor an error parameter.
	ErrMalformedCallback = errors.New("loopback: callback carried neither code nor error")

	// ErrNotFound is returned by Registry.Take when no pending server exists
	// for the port. Waiting twice on the same port is a caller bug.
	ErrNotFound = errors.New("loopback: no pending server for port")

	// ErrAlreadyRegistered is returned by Registry.Register when the port
	// already has a pending server.
	ErrAlreadyRegistered = errors.New("loopback: port already registered")
)

// ProviderError is the provider's denial delivered on the redirect, e.g.
// error=access_denied. It is surfaced to the user verbatim.
type ProviderError struct {
	Code        string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("loopback: provider returned error %q", e.Code)
	}
	return fmt.Sprintf("loopback: provider returned error %q: %s", e.Code, e.Description)
}
