package provider

import (
	"fmt"

	"golang.org/x/oauth2"
	bitbucketOAuth "golang.org/x/oauth2/bitbucket"
)

// defaultBitbucketPort is the callback port baked into the OAuth consumer
// registration when none is configured.
const defaultBitbucketPort = 8976

// BitbucketDefaultScopes returns the default scopes for Bitbucket OAuth.
func BitbucketDefaultScopes() []string {
	return []string{"repository", "account"}
}

// BitbucketProvider implements Provider for Bitbucket Cloud.
// Bitbucket allows a single registered callback URL per OAuth consumer, so
// the callback port is fixed: if it cannot be bound the flow fails instead of
// falling back to another port.
type BitbucketProvider struct {
	clientID     string
	clientSecret string
	scopes       []string
	port         int
}

// NewBitbucket creates a Bitbucket provider.
// A zero Port falls back to the default registered port; out-of-range ports
// are rejected.
func NewBitbucket(cfg BitbucketConfig) (*BitbucketProvider, error) {
	if cfg.ClientID == "" {
		return nil, ErrMissingClientID
	}

	port := cfg.Port
	if port == 0 {
		port = defaultBitbucketPort
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFixedPort, cfg.Port)
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = BitbucketDefaultScopes()
	}

	return &BitbucketProvider{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		scopes:       scopes,
		port:         port,
	}, nil
}

func (p *BitbucketProvider) Kind() Kind                 { return KindBitbucket }
func (p *BitbucketProvider) ClientID() string           { return p.clientID }
func (p *BitbucketProvider) ClientSecret() string       { return p.clientSecret }
func (p *BitbucketProvider) Endpoint() oauth2.Endpoint  { return bitbucketOAuth.Endpoint }
func (p *BitbucketProvider) DefaultScopes() []string    { return p.scopes }
func (p *BitbucketProvider) RedirectMode() RedirectMode { return RedirectFixedPort }
func (p *BitbucketProvider) FixedPort() int             { return p.port }

// RedirectURI renders the loopback callback URI for the registered port.
func (p *BitbucketProvider) RedirectURI(port int) string {
	return loopbackRedirectURI(port)
}
