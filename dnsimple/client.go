// Package dnsimple is a client for the DNSimple API v2.
//
// A Client is built once from a Config and is safe for concurrent use: none of
// its fields change after NewClient returns. Routing to another host is done
// with WithBaseURL, which returns a new Client.
package dnsimple

import (
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"net/http"
	"strings"
	"time"
)

const Version = "0.1.0"

const (
	DefaultBaseURL    = "https://api.dnsimple.com"
	DefaultSandboxURL = "https://api.sandbox.dnsimple.com"

	apiVersion       = "v2"
	defaultUserAgent = "dnsimple-client/" + Version
)

// Throttle allows Requests requests every Per.
type Throttle struct {
	Requests int64
	Per      time.Duration
}

// Config holds everything a Client needs. The zero value of every optional
// field means "library default".
type Config struct {
	BaseURL string
	Token   string

	// TokenSource takes precedence over Token.
	TokenSource oauth2.TokenSource

	UserAgent string

	// Timeout bounds a whole exchange, retries included. Zero means no timeout.
	Timeout time.Duration

	// RetryMax is the number of retries on connection errors, 429 and 5xx.
	// Zero (the default) performs exactly one attempt per call.
	RetryMax int

	Throttle []Throttle

	// HTTPClient replaces the whole built HTTP stack.
	HTTPClient *http.Client

	Logger *log.Entry
}

// NewConfig returns a Config for the production or the sandbox environment.
func NewConfig(sandbox bool, token string) Config {
	url := DefaultBaseURL
	if sandbox {
		url = DefaultSandboxURL
	}

	return Config{BaseURL: url, Token: token, UserAgent: defaultUserAgent}
}

func (c Config) WithBaseURL(url string) Config {
	c.BaseURL = url
	return c
}

func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}

// Client talks to the DNSimple API. Obtain one with NewClient.
type Client struct {
	cfg    Config
	tokens oauth2.TokenSource
	http   *http.Client
	logger *log.Entry

	Identity          *IdentityService
	Accounts          *AccountsService
	Domains           *DomainsService
	Tlds              *TldsService
	VanityNameServers *VanityNameServersService
	Registrar         *RegistrarService
	Oauth             *OauthService
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	if cfg.Logger == nil {
		cfg.Logger = log.WithField("api", "dnsimple")
	}

	tokens := cfg.TokenSource
	if tokens == nil {
		tokens = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = newHTTPClient(cfg)
	}

	return wire(&Client{cfg: cfg, tokens: tokens, http: httpClient, logger: cfg.Logger})
}

// WithBaseURL returns a Client sending its requests to url instead. It shares
// the HTTP stack and token source with c; c itself is not modified.
func (c *Client) WithBaseURL(url string) *Client {
	clone := *c
	clone.cfg = c.cfg.WithBaseURL(url)

	return wire(&clone)
}

// Config returns a copy of the configuration c was built from.
func (c *Client) Config() Config {
	return c.cfg
}

// VersionedURL returns the base URL including the API version path.
func (c *Client) VersionedURL() string {
	return strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + apiVersion
}

func (c *Client) url(path string) string {
	return c.VersionedURL() + path
}

func wire(c *Client) *Client {
	c.Identity = &IdentityService{c}
	c.Accounts = &AccountsService{c}
	c.Domains = &DomainsService{c}
	c.Tlds = &TldsService{c}
	c.VanityNameServers = &VanityNameServersService{c}
	c.Registrar = &RegistrarService{c}
	c.Oauth = &OauthService{c}

	return c
}

func newHTTPClient(cfg Config) *http.Client {
	tx := throttle(cfg.Throttle, &loggingTransport{cfg.Logger, cleanhttp.DefaultPooledTransport()})

	r := retryablehttp.NewClient()
	r.Logger = nil
	r.RetryMax = cfg.RetryMax
	r.ErrorHandler = retryablehttp.PassthroughErrorHandler
	r.HTTPClient = &http.Client{Transport: tx}

	std := r.StandardClient()
	std.Timeout = cfg.Timeout

	return std
}
