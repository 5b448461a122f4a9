package provider

import "errors"

var (
	// ErrMissingClientID is returned when a provider is constructed without
	// an OAuth client ID.
	ErrMissingClientID = errors.New("provider: missing client ID")

	// ErrUnknownKind is returned for provider identifiers outside the
	// supported set.
	ErrUnknownKind = errors.New("provider: unknown provider")

	// ErrInvalidInstanceURL is returned when a self-hosted instance URL
	// cannot be parsed or lacks a scheme.
	ErrInvalidInstanceURL = errors.New("provider: invalid instance URL")

	// ErrInvalidFixedPort is returned when a fixed-port provider is
	// configured with a port outside the valid TCP range.
	ErrInvalidFixedPort = errors.New("provider: invalid fixed callback port")
)
