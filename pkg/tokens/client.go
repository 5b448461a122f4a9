package tokens

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/gitauth/pkg/logger"
)

// maxBodySize caps how much of a token response is read; nobody's token
// payload is measured in megabytes.
const maxBodySize = 1 << 20

// Client calls OAuth token endpoints. It holds no per-flow state, so one
// client can serve any number of concurrent exchanges.
type Client struct {
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a token client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client for token requests.
// This is useful for testing with httptest servers or injecting custom
// transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the client logger. Defaults to a no-op logger.
// Token and secret values are never written, only call metadata.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient creates a token client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.NewNope(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExchangeRequest carries an authorization-code exchange.
type ExchangeRequest struct {
	TokenURL string
	ClientID string
	// ClientSecret is included in the form body when set (GitHub OAuth Apps
	// require it). It is never logged.
	ClientSecret string
	Code         string
	RedirectURI  string
	Verifier     string
}

// RefreshRequest carries a refresh-token grant.
type RefreshRequest struct {
	TokenURL     string
	ClientID     string
	RefreshToken string
}

// Exchange trades an authorization code plus PKCE verifier for tokens.
func (c *Client) Exchange(ctx context.Context, req ExchangeRequest) (*Response, error) {
	if req.TokenURL == "" {
		return nil, ErrMissingTokenURL
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", req.ClientID)
	form.Set("code", req.Code)
	form.Set("redirect_uri", req.RedirectURI)
	form.Set("code_verifier", req.Verifier)
	if req.ClientSecret != "" {
		form.Set("client_secret", req.ClientSecret)
	}

	c.log.InfoContext(ctx, "exchanging authorization code",
		slog.String("token_url", req.TokenURL),
		slog.String("client_id", req.ClientID))

	return c.post(ctx, req.TokenURL, form)
}

// Refresh trades a refresh token for a fresh access token.
func (c *Client) Refresh(ctx context.Context, req RefreshRequest) (*Response, error) {
	if req.TokenURL == "" {
		return nil, ErrMissingTokenURL
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", req.ClientID)
	form.Set("refresh_token", req.RefreshToken)

	c.log.InfoContext(ctx, "refreshing access token",
		slog.String("token_url", req.TokenURL),
		slog.String("client_id", req.ClientID))

	return c.post(ctx, req.TokenURL, form)
}

func (c *Client) post(ctx context.Context, tokenURL string, form url.Values) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("tokens: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tokens: token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("tokens: read response: %w", err)
	}

	var wire wireResponse
	jsonErr := json.Unmarshal(body, &wire)

	// Some providers (GitHub among them) signal failure with an error field
	// in an HTTP 200 body, so the body is inspected before the status code.
	if jsonErr == nil && wire.Error != "" {
		return nil, errors.Join(ErrTokenEndpoint,
			fmt.Errorf("provider error %q: %s (status %d)", wire.Error, wire.ErrorDescription, resp.StatusCode))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Join(ErrTokenEndpoint,
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(body, 512)))
	}

	if jsonErr != nil {
		return nil, errors.Join(ErrParse, fmt.Errorf("decode body: %w", jsonErr))
	}

	token := wire.normalize()
	if token.AccessToken == "" {
		return nil, errors.Join(ErrParse, errors.New("response missing access_token"))
	}

	c.log.InfoContext(ctx, "token endpoint call succeeded",
		slog.String("token_url", tokenURL),
		slog.Int64("expires_in", token.ExpiresIn))

	return token, nil
}

func truncate(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
