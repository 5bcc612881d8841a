package dnsimple

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/url"
	"testing"
)

func TestOauthService_ExchangeAuthorizationForToken(t *testing.T) {
	m := setupMockFor(t, "POST", "/oauth/access_token", "oauthAccessToken/success")

	resp, err := m.client.Oauth.ExchangeAuthorizationForToken(context.Background(), ExchangeAuthorizationRequest{
		Code:         "1234567890",
		ClientID:     "a1b2c3",
		ClientSecret: "thisisasecret",
		State:        "12345678",
	})
	require.NoError(t, err)

	var sent map[string]string
	require.NoError(t, json.Unmarshal([]byte(m.body()), &sent))
	assert.Equal(t, map[string]string{
		"code":          "1234567890",
		"client_id":     "a1b2c3",
		"client_secret": "thisisasecret",
		"state":         "12345678",
		"grant_type":    "authorization_code",
	}, sent)

	assert.Equal(t, "zKQ7OLqF5N1gylcJweA9WodA000BUNJD", resp.Data.Token)
	assert.Equal(t, "Bearer", resp.Data.Type)
	assert.Nil(t, resp.Data.Scope)
	assert.Equal(t, int64(1), resp.Data.AccountID)
	assert.Equal(t, "30", resp.RateLimit.Remaining)

	token := resp.Data.OAuth2()
	assert.Equal(t, "zKQ7OLqF5N1gylcJweA9WodA000BUNJD", token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
}

func TestOauthService_ExchangeAuthorizationForToken_InvalidRequest(t *testing.T) {
	m := setupMockFor(t, "POST", "/oauth/access_token", "oauthAccessToken/error-invalid-request")

	resp, err := m.client.Oauth.ExchangeAuthorizationForToken(context.Background(), ExchangeAuthorizationRequest{
		Code:      "1234567890",
		State:     "bogus",
		GrantType: "authorization_code",
	})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "invalid_request", apiErr.Message.Code)
	assert.Equal(t, `Invalid "state": value doesn't match the "state" in the authorization request`, apiErr.Message.Description)

	require.NotNil(t, resp)
	assert.Equal(t, AccessToken{}, resp.Data)
	assert.Equal(t, "invalid_request", resp.Error.Code)
}

func TestOauthService_AuthorizeURL(t *testing.T) {
	for _, tc := range []struct {
		name    string
		sandbox bool
		host    string
	}{
		{"production", false, "dnsimple.com"},
		{"sandbox", true, "sandbox.dnsimple.com"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			client := NewClient(NewConfig(tc.sandbox, testToken))

			u, err := url.Parse(client.Oauth.AuthorizeURL("a1b2c3", "https://example.com/callback", "12345678"))
			require.NoError(t, err)

			assert.Equal(t, "https", u.Scheme)
			assert.Equal(t, tc.host, u.Host)
			assert.Equal(t, "/oauth/authorize", u.Path)

			q := u.Query()
			assert.Equal(t, "code", q.Get("response_type"))
			assert.Equal(t, "a1b2c3", q.Get("client_id"))
			assert.Equal(t, "https://example.com/callback", q.Get("redirect_uri"))
			assert.Equal(t, "12345678", q.Get("state"))
		})
	}
}

func TestOauthService_AuthorizeURL_OmitsEmptyParameters(t *testing.T) {
	client := NewClient(NewConfig(false, testToken))

	u, err := url.Parse(client.Oauth.AuthorizeURL("a1b2c3", "", ""))
	require.NoError(t, err)

	_, hasRedirect := u.Query()["redirect_uri"]
	_, hasState := u.Query()["state"]
	assert.False(t, hasRedirect)
	assert.False(t, hasState)
}
