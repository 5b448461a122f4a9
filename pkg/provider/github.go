package provider

import (
	"golang.org/x/oauth2"
	githubOAuth "golang.org/x/oauth2/github"
)

// GitHubDefaultScopes returns the default scopes for GitHub OAuth:
// repository access plus basic profile read.
func GitHubDefaultScopes() []string {
	return []string{"repo", "read:user"}
}

// GitHubProvider implements Provider for GitHub.
type GitHubProvider struct {
	clientID     string
	clientSecret string
	scopes       []string
}

// NewGitHub creates a GitHub provider.
// Returns an error if ClientID is empty. ClientSecret is optional: GitHub
// OAuth Apps (as opposed to GitHub Apps) require it on the token exchange.
func NewGitHub(cfg GitHubConfig) (*GitHubProvider, error) {
	if cfg.ClientID == "" {
		return nil, ErrMissingClientID
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = GitHubDefaultScopes()
	}

	return &GitHubProvider{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		scopes:       scopes,
	}, nil
}

func (p *GitHubProvider) Kind() Kind                 { return KindGitHub }
func (p *GitHubProvider) ClientID() string           { return p.clientID }
func (p *GitHubProvider) ClientSecret() string       { return p.clientSecret }
func (p *GitHubProvider) Endpoint() oauth2.Endpoint  { return githubOAuth.Endpoint }
func (p *GitHubProvider) DefaultScopes() []string    { return p.scopes }
func (p *GitHubProvider) RedirectMode() RedirectMode { return RedirectLoopback }
func (p *GitHubProvider) FixedPort() int             { return 0 }

// RedirectURI renders the loopback callback URI for a bound port.
func (p *GitHubProvider) RedirectURI(port int) string {
	return loopbackRedirectURI(port)
}
