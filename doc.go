// Package gitauth implements the OAuth 2.0 authorization-code-with-PKCE
// login flow a desktop Git client uses to obtain tokens from GitHub, GitLab,
// Azure/Entra ID and Bitbucket.
//
// A login happens in three separate calls, because the middle step runs out
// of process in the user's browser:
//
//	svc, err := gitauth.New(cfg)
//
//	start, err := svc.StartLogin(ctx, provider.KindGitHub)
//	// open start.AuthorizeURL in a browser (host-provided mechanism)
//
//	code, err := svc.WaitForCallback(ctx, start.Port, start.State)
//
//	resp, err := svc.ExchangeCode(ctx, provider.KindGitHub, code,
//		start.Verifier, start.RedirectURI)
//
// StartLogin returns immediately: for loopback providers it binds a local
// callback server and parks it in a registry keyed by port, so the later
// WaitForCallback call — possibly from a different goroutine — finds the
// same live server. WaitForCallback blocks for at most the configured
// timeout (5 minutes by default), rejects callbacks whose state does not
// match, and consumes the server either way: a failed or abandoned flow is
// restarted from scratch with fresh PKCE material.
//
// Azure/Entra uses a custom-scheme redirect delivered by the OS instead of a
// loopback listener; StartLogin returns no port and the host feeds the
// received code straight to ExchangeCode.
//
// The package persists nothing and schedules nothing: storing tokens and
// deciding when to call RefreshToken are the caller's concerns.
package gitauth
