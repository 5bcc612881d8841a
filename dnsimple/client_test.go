package dnsimple

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	sandbox := NewConfig(true, testToken)
	assert.Equal(t, DefaultSandboxURL, sandbox.BaseURL)
	assert.Equal(t, testToken, sandbox.Token)
	assert.Equal(t, "dnsimple-client/"+Version, sandbox.UserAgent)

	production := NewConfig(false, testToken)
	assert.Equal(t, DefaultBaseURL, production.BaseURL)
}

func TestConfig_WithBaseURL(t *testing.T) {
	cfg := NewConfig(true, testToken)
	changed := cfg.WithBaseURL("https://example.com").WithTimeout(time.Second)

	assert.Equal(t, DefaultSandboxURL, cfg.BaseURL)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, "https://example.com", changed.BaseURL)
	assert.Equal(t, time.Second, changed.Timeout)
}

func TestClient_VersionedURL(t *testing.T) {
	client := NewClient(NewConfig(true, testToken))
	assert.Equal(t, DefaultSandboxURL+"/v2", client.VersionedURL())

	changed := client.WithBaseURL("https://example.com")
	assert.Equal(t, "https://example.com/v2", changed.VersionedURL())
	assert.Equal(t, DefaultSandboxURL+"/v2", client.VersionedURL())
	assert.Equal(t, "https://example.com/v2", NewClient(NewConfig(false, "").WithBaseURL("https://example.com/")).VersionedURL())
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{})

	assert.Equal(t, DefaultBaseURL, client.Config().BaseURL)
	assert.Equal(t, defaultUserAgent, client.Config().UserAgent)
	assert.NotNil(t, client.Config().Logger)
	assert.NotNil(t, client.Domains)
	assert.NotNil(t, client.Oauth)
}

func TestClient_WithBaseURLRoutesRequests(t *testing.T) {
	var oldHits, newHits int32

	oldSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&oldHits, 1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer oldSrv.Close()

	newSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&newHits, 1)
		assert.Equal(t, "/v2/1385/domains/example.com", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer newSrv.Close()

	client := NewClient(NewConfig(true, testToken).WithBaseURL(oldSrv.URL))
	moved := client.WithBaseURL(newSrv.URL)

	_, err := moved.Domains.DeleteDomain(context.Background(), 1385, "example.com")
	require.NoError(t, err)

	assert.Equal(t, int32(0), atomic.LoadInt32(&oldHits))
	assert.Equal(t, int32(1), atomic.LoadInt32(&newHits))
}

func TestClient_Get_EncodesQuery(t *testing.T) {
	m := setupMockFor(t, "GET", "/1385/domains", "listDomains/success")

	_, err := m.client.Domains.ListDomains(context.Background(), 1385, &DomainListOptions{
		ListOptions:  ListOptions{Page: 2, PerPage: 30, Sort: "expiration:asc"},
		NameLike:     "example",
		RegistrantID: 2715,
	})
	require.NoError(t, err)

	q := m.query()
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "30", q.Get("per_page"))
	assert.Equal(t, "expiration:asc", q.Get("sort"))
	assert.Equal(t, "example", q.Get("name_like"))
	assert.Equal(t, "2715", q.Get("registrant_id"))
}

func TestClient_Get_OmitsZeroQuery(t *testing.T) {
	m := setupMockFor(t, "GET", "/tlds", "listTlds/success")

	_, err := m.client.Tlds.ListTlds(context.Background(), &ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, m.query())
}

func TestClient_Post_SendsJSON(t *testing.T) {
	var contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		w.Header().Set("X-RateLimit-Limit", "2400")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	client := NewClient(NewConfig(false, testToken).WithBaseURL(srv.URL))
	raw, err := client.Post(context.Background(), "/anything", map[string]string{"name": "a<b>.com"})
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, http.StatusCreated, raw.StatusCode)
	assert.Equal(t, "2400", raw.RateLimit.Limit)
	assert.Equal(t, `{"data":{}}`, string(raw.Body))
}

func TestClient_MissingRateLimitHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"user":null,"account":null}}`))
	}))
	defer srv.Close()

	client := NewClient(NewConfig(false, testToken).WithBaseURL(srv.URL))
	resp, err := client.Identity.Whoami(context.Background())
	require.NoError(t, err)

	assert.Equal(t, RateLimit{}, resp.RateLimit)
	assert.False(t, resp.RateLimit.Known())
	assert.Nil(t, resp.Error)
}

func TestClient_TransportError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	client := NewClient(NewConfig(false, testToken).WithBaseURL("http://" + addr))
	resp, err := client.Identity.Whoami(context.Background())

	assert.Nil(t, resp)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "GET", transportErr.Method)
	assert.Equal(t, "http://"+addr+"/v2/whoami", transportErr.URL)
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := NewClient(NewConfig(false, testToken).WithBaseURL(srv.URL).WithTimeout(50 * time.Millisecond))
	_, err := client.Identity.Whoami(context.Background())

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestClient_ContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(NewConfig(false, testToken).WithBaseURL(srv.URL))
	_, err := client.Identity.Whoami(ctx)

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestClient_NoRetryByDefault(t *testing.T) {
	m := setupMockFor(t, "GET", "/whoami", "badgateway")

	_, err := m.client.Identity.Whoami(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, m.requests())
}

func TestClient_RetryMax(t *testing.T) {
	var hits int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		_, _ = w.Write([]byte(`{"data":{"user":null,"account":{"id":1}}}`))
	}))
	defer srv.Close()

	cfg := NewConfig(false, testToken).WithBaseURL(srv.URL)
	cfg.RetryMax = 2

	resp, err := NewClient(cfg).Identity.Whoami(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Data.Account.ID)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestClient_TokenSource(t *testing.T) {
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := NewConfig(false, "ignored").WithBaseURL(srv.URL)
	cfg.TokenSource = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "from-source"})

	_, err := NewClient(cfg).Delete(context.Background(), "/anything")
	require.NoError(t, err)
	assert.Equal(t, "Bearer from-source", auth)
}

func TestClient_NoTokenNoAuthorization(t *testing.T) {
	var present bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, err := NewClient(NewConfig(false, "").WithBaseURL(srv.URL)).Delete(context.Background(), "/anything")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestClient_Throttle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := NewConfig(false, testToken).WithBaseURL(srv.URL)
	cfg.Throttle = []Throttle{{Requests: 1, Per: 100 * time.Millisecond}}
	client := NewClient(cfg)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := client.Delete(context.Background(), "/anything")
		require.NoError(t, err)
	}

	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}
