// Package pkce generates the random material an OAuth2 authorization-code
// login needs: RFC 7636 verifier/challenge pairs and CSRF state tokens.
//
// All randomness comes from crypto/rand. Values are sampled uniformly over an
// alphanumeric alphabet without modulo bias, so collisions between concurrent
// login attempts are cryptographically negligible.
//
// # Usage
//
//	ch, err := pkce.New()
//	if err != nil {
//		// crypto/rand failure, not recoverable
//	}
//	state, err := pkce.NewState()
//
// The verifier is sent with the token exchange, the challenge with the
// authorize request, and the state must be compared against the value echoed
// back on the redirect. None of these values are meant to be persisted beyond
// a single login attempt.
package pkce
