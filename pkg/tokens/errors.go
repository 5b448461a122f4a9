package tokens

import "errors"

var (
	// ErrTokenEndpoint is returned when the token endpoint rejects the call:
	// a non-2xx response, or any JSON body carrying an "error" field even on
	// HTTP 200. The wrapped detail includes status and body for diagnostics.
	ErrTokenEndpoint = errors.New("tokens: token endpoint rejected request")

	// ErrParse is returned when the response body is not valid JSON or lacks
	// an access token.
	ErrParse = errors.New("tokens: cannot parse token response")

	// ErrMissingTokenURL is returned when a request has no token URL.
	ErrMissingTokenURL = errors.New("tokens: missing token URL")
)
