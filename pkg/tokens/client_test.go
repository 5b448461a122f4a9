package tokens_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gitauth/pkg/tokens"
)

func tokenEndpoint(t *testing.T, status int, body string, gotForm *map[string][]string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		require.NoError(t, r.ParseForm())
		if gotForm != nil {
			*gotForm = r.PostForm
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestClient_Exchange(t *testing.T) {
	t.Parallel()

	t.Run("successful snake_case response", func(t *testing.T) {
		t.Parallel()
		ts := tokenEndpoint(t, http.StatusOK,
			`{"access_token":"tok123","token_type":"bearer"}`, nil)

		client := tokens.NewClient(tokens.WithHTTPClient(ts.Client()))
		resp, err := client.Exchange(context.Background(), tokens.ExchangeRequest{
			TokenURL:    ts.URL,
			ClientID:    "abc",
			Code:        "code-1",
			RedirectURI: "http://127.0.0.1:8080/callback",
			Verifier:    "verifier-1",
		})
		require.NoError(t, err)
		require.Equal(t, "tok123", resp.AccessToken)
		require.Equal(t, "bearer", resp.TokenType)
		require.Empty(t, resp.RefreshToken)
		require.Zero(t, resp.ExpiresIn)
	})

	t.Run("camelCase keys are tolerated", func(t *testing.T) {
		t.Parallel()
		ts := tokenEndpoint(t, http.StatusOK,
			`{"accessToken":"tok456","refreshToken":"ref789","expiresIn":3600,"tokenType":"Bearer"}`, nil)

		client := tokens.NewClient(tokens.WithHTTPClient(ts.Client()))
		resp, err := client.Exchange(context.Background(), tokens.ExchangeRequest{TokenURL: ts.URL, ClientID: "abc"})
		require.NoError(t, err)
		require.Equal(t, "tok456", resp.AccessToken)
		require.Equal(t, "ref789", resp.RefreshToken)
		require.Equal(t, int64(3600), resp.ExpiresIn)
		require.Equal(t, "Bearer", resp.TokenType)
	})

	t.Run("form body carries the grant", func(t *testing.T) {
		t.Parallel()
		var form map[string][]string
		ts := tokenEndpoint(t, http.StatusOK, `{"access_token":"tok"}`, &form)

		client := tokens.NewClient(tokens.WithHTTPClient(ts.Client()))
		_, err := client.Exchange(context.Background(), tokens.ExchangeRequest{
			TokenURL:    ts.URL,
			ClientID:    "abc",
			Code:        "the-code",
			RedirectURI: "http://127.0.0.1:9000/callback",
			Verifier:    "the-verifier",
		})
		require.NoError(t, err)
		require.Equal(t, []string{"authorization_code"}, form["grant_type"])
		require.Equal(t, []string{"the-code"}, form["code"])
		require.Equal(t, []string{"http://127.0.0.1:9000/callback"}, form["redirect_uri"])
		require.Equal(t, []string{"the-verifier"}, form["code_verifier"])
		require.Equal(t, []string{"abc"}, form["client_id"])
		require.NotContains(t, form, "client_secret")
	})

	t.Run("client secret included when configured", func(t *testing.T) {
		t.Parallel()
		var form map[string][]string
		ts := tokenEndpoint(t, http.StatusOK, `{"access_token":"tok"}`, &form)

		client := tokens.NewClient(tokens.WithHTTPClient(ts.Client()))
		_, err := client.Exchange(context.Background(), tokens.ExchangeRequest{
			TokenURL:     ts.URL,
			ClientID:     "abc",
			ClientSecret: "s3cret",
		})
		require.NoError(t, err)
		require.Equal(t, []string{"s3cret"}, form["client_secret"])
	})

	t.Run("error body on HTTP 200 is a failure", func(t *testing.T) {
		t.Parallel()
		ts := tokenEndpoint(t, http.StatusOK,
			`{"error":"incorrect_client_credentials","error_description":"bad creds"}`, nil)

		client := tokens.NewClient(tokens.WithHTTPClient(ts.Client()))
		resp, err := client.Exchange(context.Background(), tokens.ExchangeRequest{TokenURL: ts.URL, ClientID: "abc"})
		require.ErrorIs(t, err, tokens.ErrTokenEndpoint)
		require.ErrorContains(t, err, "incorrect_client_credentials")
		require.Nil(t, resp)
	})

	t.Run("non-2xx status is a failure with status and body", func(t *testing.T) {
		t.Parallel()
		ts := tokenEndpoint(t, http.StatusBadGateway, `upstream unavailable`, nil)

		client := tokens.NewClient(tokens.WithHTTPClient(ts.Client()))
		_, err := client.Exchange(context.Background(), tokens.ExchangeRequest{TokenURL: ts.URL, ClientID: "abc"})
		require.ErrorIs(t, err, tokens.ErrTokenEndpoint)
		require.ErrorContains(t, err, "502")
		require.ErrorContains(t, err, "upstream unavailable")
	})

	t.Run("non-JSON 200 body is a parse failure", func(t *testing.T) {
		t.Parallel()
		ts := tokenEndpoint(t, http.StatusOK, `<html>not json</html>`, nil)

		client := tokens.NewClient(tokens.WithHTTPClient(ts.Client()))
		_, err := client.Exchange(context.Background(), tokens.ExchangeRequest{TokenURL: ts.URL, ClientID: "abc"})
		require.ErrorIs(t, err, tokens.ErrParse)
	})

	t.Run("missing access token is a parse failure", func(t *testing.T) {
		t.Parallel()
		ts := tokenEndpoint(t, http.StatusOK, `{"token_type":"bearer"}`, nil)

		client := tokens.NewClient(tokens.WithHTTPClient(ts.Client()))
		_, err := client.Exchange(context.Background(), tokens.ExchangeRequest{TokenURL: ts.URL, ClientID: "abc"})
		require.ErrorIs(t, err, tokens.ErrParse)
	})

	t.Run("missing token URL", func(t *testing.T) {
		t.Parallel()
		client := tokens.NewClient()
		_, err := client.Exchange(context.Background(), tokens.ExchangeRequest{ClientID: "abc"})
		require.ErrorIs(t, err, tokens.ErrMissingTokenURL)
	})
}

func TestClient_Refresh(t *testing.T) {
	t.Parallel()

	t.Run("refresh grant body shape", func(t *testing.T) {
		t.Parallel()
		var form map[string][]string
		ts := tokenEndpoint(t, http.StatusOK,
			`{"access_token":"new-tok","refresh_token":"new-ref","expires_in":7200}`, &form)

		client := tokens.NewClient(tokens.WithHTTPClient(ts.Client()))
		resp, err := client.Refresh(context.Background(), tokens.RefreshRequest{
			TokenURL:     ts.URL,
			ClientID:     "abc",
			RefreshToken: "old-ref",
		})
		require.NoError(t, err)
		require.Equal(t, []string{"refresh_token"}, form["grant_type"])
		require.Equal(t, []string{"old-ref"}, form["refresh_token"])
		require.Equal(t, []string{"abc"}, form["client_id"])
		require.NotContains(t, form, "code")
		require.Equal(t, "new-tok", resp.AccessToken)
		require.Equal(t, "new-ref", resp.RefreshToken)
		require.Equal(t, int64(7200), resp.ExpiresIn)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		t.Parallel()
		ts := tokenEndpoint(t, http.StatusBadRequest,
			`{"error":"invalid_grant","error_description":"refresh token expired"}`, nil)

		client := tokens.NewClient(tokens.WithHTTPClient(ts.Client()))
		_, err := client.Refresh(context.Background(), tokens.RefreshRequest{
			TokenURL:     ts.URL,
			ClientID:     "abc",
			RefreshToken: "stale",
		})
		require.ErrorIs(t, err, tokens.ErrTokenEndpoint)
		require.ErrorContains(t, err, "invalid_grant")
	})
}

func TestMask(t *testing.T) {
	t.Parallel()

	require.Equal(t, "short", tokens.Mask("short"))
	require.Equal(t, "gho_ab...wxyz", tokens.Mask("gho_abcdefghijklmnopqrstuvwxyz"))

	// Masked output never contains the full middle of the token.
	masked := tokens.Mask("gho_abcdefghijklmnopqrstuvwxyz")
	require.NotContains(t, masked, "cdefghijklmnopqrstuv")

	require.Len(t, []byte(tokens.Mask("0123456789")), 10)
}
