package pkce_test

import (
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gitauth/pkg/pkce"
)

func isAlphanumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("verifier shape", func(t *testing.T) {
		t.Parallel()
		ch, err := pkce.New()
		require.NoError(t, err)
		require.Len(t, ch.Verifier, pkce.VerifierLength)
		require.True(t, isAlphanumeric(ch.Verifier), "verifier must be alphanumeric: %q", ch.Verifier)
	})

	t.Run("challenge is S256 of verifier", func(t *testing.T) {
		t.Parallel()
		ch, err := pkce.New()
		require.NoError(t, err)

		sum := sha256.Sum256([]byte(ch.Verifier))
		want := base64.RawURLEncoding.EncodeToString(sum[:])
		require.Equal(t, want, ch.Challenge)
		require.Len(t, ch.Challenge, 43)
	})

	t.Run("no collisions across 10000 pairs", func(t *testing.T) {
		t.Parallel()
		seen := make(map[string]struct{}, 10000)
		for i := 0; i < 10000; i++ {
			ch, err := pkce.New()
			require.NoError(t, err)
			_, dup := seen[ch.Verifier]
			require.False(t, dup, "verifier repeated: %q", ch.Verifier)
			seen[ch.Verifier] = struct{}{}
		}
	})
}

func TestChallengeS256(t *testing.T) {
	t.Parallel()

	// Worked example from RFC 7636 appendix B.
	got := pkce.ChallengeS256("dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk")
	require.Equal(t, "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM", got)
}

func TestNewState(t *testing.T) {
	t.Parallel()

	t.Run("shape", func(t *testing.T) {
		t.Parallel()
		state, err := pkce.NewState()
		require.NoError(t, err)
		require.Len(t, state, pkce.StateLength)
		require.True(t, isAlphanumeric(state))
	})

	t.Run("no collisions across 10000 tokens", func(t *testing.T) {
		t.Parallel()
		seen := make(map[string]struct{}, 10000)
		for i := 0; i < 10000; i++ {
			state, err := pkce.NewState()
			require.NoError(t, err)
			_, dup := seen[state]
			require.False(t, dup, "state repeated: %q", state)
			seen[state] = struct{}{}
		}
	})
}
