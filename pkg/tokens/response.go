package tokens

// Response is the normalized result of an exchange or refresh call.
// Only AccessToken is guaranteed; everything else is provider-dependent.
type Response struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Scope        string
	// ExpiresIn is the token lifetime in seconds; 0 when the provider did
	// not report one. Renewal scheduling is the caller's concern.
	ExpiresIn int64
}

// wireResponse tolerates the key spellings seen across providers: snake_case
// per RFC 6749 and camelCase from proxies that re-serialize the payload.
type wireResponse struct {
	AccessToken      string `json:"access_token"`
	AccessTokenAlt   string `json:"accessToken"`
	RefreshToken     string `json:"refresh_token"`
	RefreshTokenAlt  string `json:"refreshToken"`
	TokenType        string `json:"token_type"`
	TokenTypeAlt     string `json:"tokenType"`
	Scope            string `json:"scope"`
	ExpiresIn        int64  `json:"expires_in"`
	ExpiresInAlt     int64  `json:"expiresIn"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (w wireResponse) normalize() *Response {
	return &Response{
		AccessToken:  firstOf(w.AccessToken, w.AccessTokenAlt),
		RefreshToken: firstOf(w.RefreshToken, w.RefreshTokenAlt),
		TokenType:    firstOf(w.TokenType, w.TokenTypeAlt),
		Scope:        w.Scope,
		ExpiresIn:    max(w.ExpiresIn, w.ExpiresInAlt),
	}
}

func firstOf(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// Mask renders a token safe for display or logging: a short prefix and
// suffix with the middle elided.
func Mask(token string) string {
	if len(token) <= 10 {
		return token
	}
	return token[:6] + "..." + token[len(token)-4:]
}
