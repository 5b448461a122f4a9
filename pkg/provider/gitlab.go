package provider

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

const (
	gitlabDefaultInstance = "https://gitlab.com"
	gitlabAuthorizePath   = "/oauth/authorize"
	gitlabTokenPath       = "/oauth/token"
)

// GitLabDefaultScopes returns the default scopes for GitLab OAuth:
// full API access (required for push over HTTPS) plus profile read.
func GitLabDefaultScopes() []string {
	return []string{"api", "read_user"}
}

// GitLabProvider implements Provider for GitLab, including self-hosted
// instances. Endpoints are derived from the instance URL.
type GitLabProvider struct {
	endpoint oauth2.Endpoint
	clientID string
	scopes   []string
}

// NewGitLab creates a GitLab provider.
// An empty InstanceURL defaults to https://gitlab.com.
func NewGitLab(cfg GitLabConfig) (*GitLabProvider, error) {
	if cfg.ClientID == "" {
		return nil, ErrMissingClientID
	}

	instance := strings.TrimRight(cfg.InstanceURL, "/")
	if instance == "" {
		instance = gitlabDefaultInstance
	}
	u, err := url.Parse(instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidInstanceURL, cfg.InstanceURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q: missing http(s) scheme", ErrInvalidInstanceURL, cfg.InstanceURL)
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = GitLabDefaultScopes()
	}

	return &GitLabProvider{
		clientID: cfg.ClientID,
		scopes:   scopes,
		endpoint: oauth2.Endpoint{
			AuthURL:  instance + gitlabAuthorizePath,
			TokenURL: instance + gitlabTokenPath,
		},
	}, nil
}

func (p *GitLabProvider) Kind() Kind                 { return KindGitLab }
func (p *GitLabProvider) ClientID() string           { return p.clientID }
func (p *GitLabProvider) ClientSecret() string       { return "" }
func (p *GitLabProvider) Endpoint() oauth2.Endpoint  { return p.endpoint }
func (p *GitLabProvider) DefaultScopes() []string    { return p.scopes }
func (p *GitLabProvider) RedirectMode() RedirectMode { return RedirectLoopback }
func (p *GitLabProvider) FixedPort() int             { return 0 }

// RedirectURI renders the loopback callback URI for a bound port.
func (p *GitLabProvider) RedirectURI(port int) string {
	return loopbackRedirectURI(port)
}
