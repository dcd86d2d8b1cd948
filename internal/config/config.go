package config

import (
	"strings"
	"time"
)

// DefaultUpstreamURL is the Flare Systems Explorer backend API.
const DefaultUpstreamURL = "https://flare-systems-explorer.flare.network/backend-url/api/v0"

const (
	defaultListenAddress = ":3000"
	defaultFetchTimeout  = 10 * time.Second
	defaultCacheTTL      = 5 * time.Minute
	defaultPageLimit     = 200
)

type Config struct {
	ListenAddress string `mapstructure:"listen_address"`
	UpstreamURL   string `mapstructure:"upstream_url"`
	FetchTimeout  string `mapstructure:"fetch_timeout"`
	CacheTTL      string `mapstructure:"cache_ttl"`
	PageLimit     int    `mapstructure:"page_limit"`
}

func (c *Config) GetListenAddress() string {
	if c.ListenAddress == "" {
		return defaultListenAddress
	}
	return c.ListenAddress
}

func (c *Config) GetUpstreamURL() string {
	if c.UpstreamURL == "" {
		return DefaultUpstreamURL
	}
	return strings.TrimRight(c.UpstreamURL, "/")
}

// GetFetchTimeout returns the upstream request timeout, defaulting when the
// configured value is missing or unparseable.
func (c *Config) GetFetchTimeout() time.Duration {
	duration, err := time.ParseDuration(c.FetchTimeout)
	if err != nil || duration <= 0 {
		return defaultFetchTimeout
	}
	return duration
}

// GetCacheTTL returns the snapshot freshness window.
func (c *Config) GetCacheTTL() time.Duration {
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil || duration <= 0 {
		return defaultCacheTTL
	}
	return duration
}

// GetPageLimit returns the upstream page size, capped at the explorer's
// maximum of 200 records per page.
func (c *Config) GetPageLimit() int {
	if c.PageLimit <= 0 || c.PageLimit > defaultPageLimit {
		return defaultPageLimit
	}
	return c.PageLimit
}
