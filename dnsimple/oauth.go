package dnsimple

import (
	"context"
	"golang.org/x/oauth2"
)

const (
	authorizeURL        = "https://dnsimple.com/oauth/authorize"
	sandboxAuthorizeURL = "https://sandbox.dnsimple.com/oauth/authorize"
)

// AccessToken is the result of the OAuth authorization code exchange.
type AccessToken struct {
	Token     string  `json:"access_token"`
	Type      string  `json:"token_type"`
	Scope     *string `json:"scope"`
	AccountID int64   `json:"account_id"`
}

// OAuth2 converts t for use as Config.TokenSource via oauth2.StaticTokenSource.
func (t *AccessToken) OAuth2() *oauth2.Token {
	return &oauth2.Token{AccessToken: t.Token, TokenType: t.Type}
}

// ExchangeAuthorizationRequest carries the parameters of the code exchange.
// GrantType defaults to "authorization_code".
type ExchangeAuthorizationRequest struct {
	Code         string `json:"code"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURI  string `json:"redirect_uri,omitempty"`
	State        string `json:"state,omitempty"`
	GrantType    string `json:"grant_type"`
}

// OauthService handles https://developer.dnsimple.com/v2/oauth/
type OauthService struct {
	client *Client
}

// ExchangeAuthorizationForToken trades an authorization code for an access
// token. Unlike the other endpoints the response isn't wrapped in "data".
func (s *OauthService) ExchangeAuthorizationForToken(ctx context.Context, req ExchangeAuthorizationRequest) (*Response[AccessToken], error) {
	if req.GrantType == "" {
		req.GrantType = "authorization_code"
	}

	return decodeBody[AccessToken](s.client.Post(ctx, "/oauth/access_token", req))
}

// AuthorizeURL returns the URL to send the user to for granting access.
// The sandbox authorization page is used when the client targets the sandbox API.
func (s *OauthService) AuthorizeURL(clientID, redirectURI, state string) string {
	return s.oauth2Config(clientID, redirectURI).AuthCodeURL(state)
}

func (s *OauthService) oauth2Config(clientID, redirectURI string) *oauth2.Config {
	authURL := authorizeURL
	if s.client.cfg.BaseURL == DefaultSandboxURL {
		authURL = sandboxAuthorizeURL
	}

	return &oauth2.Config{
		ClientID:    clientID,
		RedirectURL: redirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   authURL,
			TokenURL:  s.client.url("/oauth/access_token"),
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}
