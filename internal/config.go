package internal

import (
	"dnsimple-client/dnsimple"
	"errors"
	"fmt"
	"github.com/Al2Klimov/FUeL.go"
	"github.com/caarlos0/env/v8"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"io"
	"net/url"
	"os"
	"strings"
	"time"
)

const envPrefix = "DNSIMPLE_"

type Throttle struct {
	Requests int64         `yaml:"requests"`
	Per      time.Duration `yaml:"per"`
}

type OAuth struct {
	ClientID     string `yaml:"client_id" env:"CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"CLIENT_SECRET"`
	RedirectURI  string `yaml:"redirect_uri" env:"REDIRECT_URI"`
}

// Config is the CLI configuration. Every field can be overridden by a
// DNSIMPLE_* environment variable.
type Config struct {
	Token     string        `yaml:"token" env:"TOKEN"`
	AccountID int64         `yaml:"account_id" env:"ACCOUNT_ID"`
	Sandbox   bool          `yaml:"sandbox" env:"SANDBOX"`
	BaseURL   string        `yaml:"base_url" env:"BASE_URL"`
	Timeout   time.Duration `yaml:"timeout" env:"TIMEOUT"`
	Retries   int           `yaml:"retries" env:"RETRIES"`
	Throttle  []Throttle    `yaml:"throttle"`
	OAuth     OAuth         `yaml:"oauth" envPrefix:"OAUTH_"`
	LogLevel  string        `yaml:"log_level" env:"LOG_LEVEL"`
}

// LoadConfig reads configFile (if it exists) over the defaults and applies
// the environment on top.
func LoadConfig(configFile string) (*Config, fuel.ErrorWithStack) {
	cfg := &Config{}

	cfg.Timeout = time.Minute
	cfg.LogLevel = "info"

	if configFile != "" {
		log.WithField("file", configFile).Debug("loading config")

		if err := decodeConfigFile(configFile, cfg); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fuel.AttachStackToError(err, 0)
	}

	return cfg, cfg.Validate()
}

func decodeConfigFile(configFile string, cfg *Config) fuel.ErrorWithStack {
	f, err := os.Open(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.WithField("file", configFile).Debug("config file missing, using defaults")
			return nil
		}

		return fuel.AttachStackToError(err, 0)
	}
	defer func() { _ = f.Close() }()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fuel.AttachStackToError(err, 0)
	}

	return nil
}

func (c *Config) Validate() fuel.ErrorWithStack {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fuel.AttachStackToError(err, 0)
	}

	if c.AccountID < 0 {
		return fuel.AttachStackToError(errors.New("account_id must not be negative"), 0)
	}

	if c.Timeout < 0 {
		return fuel.AttachStackToError(errors.New("timeout must not be negative"), 0)
	}

	if c.Retries < 0 {
		return fuel.AttachStackToError(errors.New("retries must not be negative"), 0)
	}

	for i, t := range c.Throttle {
		if t.Requests < 1 || t.Per <= 0 {
			return fuel.AttachStackToError(fmt.Errorf("throttle #%d: requests and per must be positive", i+1), 0)
		}
	}

	if strings.TrimSpace(c.BaseURL) != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return fuel.AttachStackToError(err, 0)
		}

		if !u.IsAbs() || u.Host == "" {
			return fuel.AttachStackToError(fmt.Errorf("base_url %q is not an absolute URL", c.BaseURL), 0)
		}
	}

	return nil
}

func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}

	return level
}

// ClientConfig translates c into a library configuration. token is used when
// c has none, e.g. the one persisted by "oauth exchange".
func (c *Config) ClientConfig(token string) dnsimple.Config {
	if c.Token != "" {
		token = c.Token
	}

	cfg := dnsimple.NewConfig(c.Sandbox, token).WithTimeout(c.Timeout)
	if c.BaseURL != "" {
		cfg = cfg.WithBaseURL(c.BaseURL)
	}

	cfg.RetryMax = c.Retries

	for _, t := range c.Throttle {
		cfg.Throttle = append(cfg.Throttle, dnsimple.Throttle{Requests: t.Requests, Per: t.Per})
	}

	return cfg
}
