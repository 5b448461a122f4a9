package gitauth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/gitauth/pkg/logger"
	"github.com/dmitrymomot/gitauth/pkg/loopback"
	"github.com/dmitrymomot/gitauth/pkg/pkce"
	"github.com/dmitrymomot/gitauth/pkg/provider"
	"github.com/dmitrymomot/gitauth/pkg/tokens"
)

// defaultWaitTimeout bounds WaitForCallback; a user who has not finished the
// browser dance in five minutes is not going to.
const defaultWaitTimeout = 5 * time.Minute

// defaultPreferredPorts are the loopback ports tried before an ephemeral one.
// Stable low-traffic ports keep redirect URIs predictable for OAuth apps that
// whitelist them, while the ephemeral fallback keeps login working when all
// are taken.
var defaultPreferredPorts = []int{8721, 8722, 8723}

// Service orchestrates login flows. It owns the pending-server registry, so
// two Services never share flow state; hosts create one and keep it.
//
// All methods are safe for concurrent use. Waits for different flows run
// independently; token calls share nothing but the HTTP client.
type Service struct {
	registry       *loopback.Registry
	providers      map[provider.Kind]provider.Provider
	tokens         *tokens.Client
	httpClient     *http.Client
	log            *slog.Logger
	waitTimeout    time.Duration
	preferredPorts []int
}

// StartLoginResponse is everything the caller must retain between starting a
// flow and finishing it: the URL to open, the PKCE verifier and state for
// the later calls, and the loopback port to wait on.
type StartLoginResponse struct {
	// FlowID correlates log records for one attempt.
	FlowID string
	// AuthorizeURL is opened in the user's browser.
	AuthorizeURL string
	// RedirectURI is the callback the provider will redirect to; the same
	// value must be sent with the code exchange.
	RedirectURI string
	// Verifier is the PKCE verifier for ExchangeCode.
	Verifier string
	// State must be passed to WaitForCallback for CSRF checking.
	State string
	// Port is the bound loopback port, or 0 for custom-scheme providers
	// where no local server exists.
	Port int
}

// New creates a login service from the provider configuration.
func New(cfg Config, opts ...Option) (*Service, error) {
	providers, err := cfg.buildProviders()
	if err != nil {
		return nil, err
	}

	s := &Service{
		registry:       loopback.NewRegistry(),
		providers:      providers,
		log:            logger.NewNope(),
		waitTimeout:    defaultWaitTimeout,
		preferredPorts: defaultPreferredPorts,
	}
	for _, opt := range opts {
		opt(s)
	}

	tokenOpts := []tokens.Option{tokens.WithLogger(s.log)}
	if s.httpClient != nil {
		tokenOpts = append(tokenOpts, tokens.WithHTTPClient(s.httpClient))
	}
	s.tokens = tokens.NewClient(tokenOpts...)

	return s, nil
}

// StartLogin begins a flow for the given provider and returns immediately,
// before any user interaction: fresh PKCE and state are generated, and for
// loopback providers a callback server is bound and registered so the
// browser redirect has somewhere to land. The caller opens AuthorizeURL and
// then calls WaitForCallback.
func (s *Service) StartLogin(ctx context.Context, kind provider.Kind) (*StartLoginResponse, error) {
	p, ok := s.providers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotConfigured, kind)
	}

	ch, err := pkce.New()
	if err != nil {
		return nil, err
	}
	state, err := pkce.NewState()
	if err != nil {
		return nil, err
	}

	flowID := uuid.NewString()
	ctx = logger.WithFlowID(ctx, flowID)

	var srv *loopback.Server
	switch p.RedirectMode() {
	case provider.RedirectCustomScheme:
		// The OS scheme handler delivers this callback; nothing to bind.
	case provider.RedirectFixedPort:
		srv, err = loopback.BindRequired(p.FixedPort(), loopback.WithLogger(s.log))
	default:
		srv, err = loopback.Bind(s.preferredPorts, loopback.WithLogger(s.log))
	}
	if err != nil {
		return nil, err
	}

	port := 0
	if srv != nil {
		port = srv.Port()
		if err := s.registry.Register(port, srv); err != nil {
			_ = srv.Close()
			return nil, err
		}
	}

	redirectURI := p.RedirectURI(port)
	authorizeURL := provider.AuthorizeURL(p, redirectURI, ch, state)

	s.log.InfoContext(ctx, "login flow started",
		slog.String("provider", string(kind)),
		slog.Int("port", port))

	return &StartLoginResponse{
		FlowID:       flowID,
		AuthorizeURL: authorizeURL,
		RedirectURI:  redirectURI,
		Verifier:     ch.Verifier,
		State:        state,
		Port:         port,
	}, nil
}

// WaitForCallback blocks until the redirect for the flow parked on port
// arrives, the wait timeout elapses, or ctx is cancelled. The server is
// consumed either way: a port can be waited on exactly once, and a second
// call returns loopback.ErrNotFound.
//
// The callback's state must equal the state issued by StartLogin; on
// mismatch the code is discarded and ErrStateMismatch returned.
func (s *Service) WaitForCallback(ctx context.Context, port int, state string) (string, error) {
	srv, err := s.registry.Take(port)
	if err != nil {
		return "", err
	}

	waitCtx, cancel := context.WithTimeout(ctx, s.waitTimeout)
	defer cancel()

	cb, err := srv.Wait(waitCtx)
	if err != nil {
		return "", err
	}
	if cb.State != state {
		s.log.WarnContext(ctx, "callback state mismatch", slog.Int("port", port))
		return "", ErrStateMismatch
	}
	return cb.Code, nil
}

// CancelLogin abandons a pending flow: the server is removed from the
// registry and shut down without waiting. Returns loopback.ErrNotFound when
// no flow is pending on the port.
func (s *Service) CancelLogin(port int) error {
	srv, err := s.registry.Take(port)
	if err != nil {
		return err
	}
	s.log.Info("login flow cancelled", slog.Int("port", port))
	return srv.Close()
}

// ExchangeCode trades an authorization code for tokens. Verifier and
// redirectURI must be the values from the StartLoginResponse that produced
// the code.
func (s *Service) ExchangeCode(ctx context.Context, kind provider.Kind, code, verifier, redirectURI string) (*tokens.Response, error) {
	p, ok := s.providers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotConfigured, kind)
	}
	return s.tokens.Exchange(ctx, tokens.ExchangeRequest{
		TokenURL:     p.Endpoint().TokenURL,
		ClientID:     p.ClientID(),
		ClientSecret: p.ClientSecret(),
		Code:         code,
		RedirectURI:  redirectURI,
		Verifier:     verifier,
	})
}

// RefreshToken trades a refresh token for a new access token. Callers decide
// when; nothing here tracks expiry.
func (s *Service) RefreshToken(ctx context.Context, kind provider.Kind, refreshToken string) (*tokens.Response, error) {
	p, ok := s.providers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotConfigured, kind)
	}
	return s.tokens.Refresh(ctx, tokens.RefreshRequest{
		TokenURL:     p.Endpoint().TokenURL,
		ClientID:     p.ClientID(),
		RefreshToken: refreshToken,
	})
}

// PendingFlows reports how many loopback servers are parked in the registry.
func (s *Service) PendingFlows() int {
	return s.registry.Len()
}
