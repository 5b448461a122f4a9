// Package provider maps Git-hosting identity providers to their OAuth2
// endpoints, scopes and redirect strategies.
//
// This package includes a Provider interface and concrete implementations for
// GitHub, GitLab (including self-hosted instances), Azure/Entra ID and
// Bitbucket. Adding a provider means adding one implementation; the rest of
// the login flow is provider-agnostic.
//
// # Redirect strategies
//
// Providers differ in how the authorization redirect reaches a desktop
// process:
//
//   - RedirectLoopback: a short-lived local listener on a negotiated port
//     (GitHub, GitLab). The port is chosen at flow start.
//   - RedirectFixedPort: Bitbucket accepts exactly one registered callback
//     URL, so the configured port must be bound as-is and never substituted.
//   - RedirectCustomScheme: Azure/Entra delivers the callback through an OS
//     custom-scheme handler; no local listener is involved.
//
// # Usage
//
//	p, err := provider.NewGitHub(provider.GitHubConfig{ClientID: "..."})
//	if err != nil {
//		// handle error
//	}
//
//	ch, _ := pkce.New()
//	state, _ := pkce.NewState()
//	url := provider.AuthorizeURL(p, p.RedirectURI(port), ch, state)
//
// Configuration structs carry env tags for environment-based setup and yaml
// tags for file-based setup.
package provider
