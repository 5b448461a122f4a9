package pkce

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	// VerifierLength is the length of a generated code verifier.
	VerifierLength = 64

	// StateLength is the length of a generated CSRF state token.
	StateLength = 32
)

// ErrRandomSource is returned when crypto/rand fails to produce bytes.
var ErrRandomSource = errors.New("pkce: random source failed")

// Challenge is an RFC 7636 verifier/challenge pair for one login attempt.
// The challenge is a pure function of the verifier and is always 43
// characters (base64url, no padding, of a SHA-256 digest).
type Challenge struct {
	Verifier  string
	Challenge string
}

// New generates a fresh PKCE pair using the S256 challenge method.
func New() (Challenge, error) {
	verifier, err := randomAlphanumeric(VerifierLength)
	if err != nil {
		return Challenge{}, err
	}
	return Challenge{
		Verifier:  verifier,
		Challenge: ChallengeS256(verifier),
	}, nil
}

// ChallengeS256 computes the S256 challenge for a verifier:
// base64url-no-pad(SHA256(verifier)).
func ChallengeS256(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// NewState generates a CSRF state token. The caller must reject any callback
// whose state parameter does not match the generated value.
func NewState() (string, error) {
	return randomAlphanumeric(StateLength)
}

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// randomAlphanumeric samples n characters uniformly from the 62-character
// alphanumeric alphabet. Rejection sampling keeps the distribution uniform:
// bytes >= 248 (the largest multiple of 62 below 256) are discarded instead
// of folded with a biased modulo.
func randomAlphanumeric(n int) (string, error) {
	const limit = byte(248) // 4 * 62

	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", errors.Join(ErrRandomSource, fmt.Errorf("read %d bytes: %w", n, err))
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
