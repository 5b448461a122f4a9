// Package tokens performs the direct calls against a provider's OAuth token
// endpoint: exchanging an authorization code (with its PKCE verifier) for
// tokens, and refreshing with a refresh token.
//
// The four supported providers disagree on response shapes and on failure
// signaling. GitHub in particular answers HTTP 200 with an error payload, so
// any JSON body carrying an "error" key is classified as ErrTokenEndpoint
// regardless of status code or provider. Successful bodies are decoded
// tolerating both snake_case and camelCase key spellings.
//
// # Usage
//
//	client := tokens.NewClient()
//	resp, err := client.Exchange(ctx, tokens.ExchangeRequest{
//		TokenURL:    p.Endpoint().TokenURL,
//		ClientID:    p.ClientID(),
//		Code:        code,
//		RedirectURI: redirectURI,
//		Verifier:    verifier,
//	})
//
// The client performs no retries: a failed exchange means the login flow must
// be restarted with fresh PKCE and state. Use WithHTTPClient to inject an
// httptest server in tests.
package tokens
