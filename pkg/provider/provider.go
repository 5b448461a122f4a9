package provider

import (
	"fmt"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/gitauth/pkg/pkce"
)

// Kind identifies a supported Git-hosting identity provider.
type Kind string

// Supported provider kinds. The set is closed: the login flow only knows how
// to negotiate redirects and exchange tokens for these four.
const (
	KindGitHub    Kind = "github"
	KindGitLab    Kind = "gitlab"
	KindAzure     Kind = "azure"
	KindBitbucket Kind = "bitbucket"
)

// ParseKind converts a string identifier into a Kind.
// Returns ErrUnknownKind for anything outside the closed set.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindGitHub, KindGitLab, KindAzure, KindBitbucket:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// RedirectMode describes how the authorization redirect reaches the process.
type RedirectMode int

const (
	// RedirectLoopback uses a local listener on a negotiated port.
	RedirectLoopback RedirectMode = iota
	// RedirectFixedPort uses a local listener on one registered port that
	// must never be substituted with another.
	RedirectFixedPort
	// RedirectCustomScheme relies on an OS custom-scheme handler; no local
	// listener is started.
	RedirectCustomScheme
)

// Provider abstracts provider-specific OAuth details.
// Each provider (GitHub, GitLab, Azure, Bitbucket) implements this interface.
type Provider interface {
	// Kind returns the provider identifier.
	Kind() Kind

	// ClientID returns the OAuth application client ID.
	ClientID() string

	// ClientSecret returns the client secret, or "" when the application
	// is configured as a public client.
	ClientSecret() string

	// Endpoint returns the authorize/token endpoint pair.
	Endpoint() oauth2.Endpoint

	// DefaultScopes returns the scopes requested for Git hosting access.
	DefaultScopes() []string

	// RedirectMode returns the redirect strategy for this provider.
	RedirectMode() RedirectMode

	// RedirectURI renders the redirect URI for a bound port. Custom-scheme
	// providers ignore the port.
	RedirectURI(port int) string

	// FixedPort returns the single registered callback port for
	// RedirectFixedPort providers, and 0 otherwise.
	FixedPort() int
}

// AuthorizeURL renders the full authorization URL for a provider: client_id,
// redirect_uri, response_type=code, scope (space-joined), state, and the PKCE
// code_challenge with method S256, all percent-encoded.
func AuthorizeURL(p Provider, redirectURI string, ch pkce.Challenge, state string) string {
	cfg := &oauth2.Config{
		ClientID:    p.ClientID(),
		Endpoint:    p.Endpoint(),
		RedirectURL: redirectURI,
		Scopes:      p.DefaultScopes(),
	}
	return cfg.AuthCodeURL(state,
		oauth2.SetAuthURLParam("code_challenge", ch.Challenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
}

func loopbackRedirectURI(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d/callback", port)
}
