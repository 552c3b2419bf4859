package config

import (
	"fmt"
	"os"
	"time"

	"github.com/lianzhou/tizhi/pkg/formatting"
	"github.com/lianzhou/tizhi/pkg/middleware"
	"github.com/lianzhou/tizhi/pkg/openapi"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "TIZHI_CORS_ENABLED",
	Origins:          "TIZHI_CORS_ORIGINS",
	AllowedMethods:   "TIZHI_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "TIZHI_CORS_ALLOWED_HEADERS",
	AllowCredentials: "TIZHI_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "TIZHI_CORS_MAX_AGE",
}

var authEnv = &middleware.AuthEnv{
	Enabled: "TIZHI_AUTH_ENABLED",
	Keys:    "TIZHI_API_KEYS",
}

var rateLimitEnv = &middleware.RateLimitEnv{
	Enabled:   "TIZHI_RATE_LIMIT_ENABLED",
	PerMinute: "TIZHI_RATE_LIMIT_PER_MINUTE",
	Burst:     "TIZHI_RATE_LIMIT_BURST",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "TIZHI_OPENAPI_TITLE",
	Description: "TIZHI_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, security, and caching settings.
type APIConfig struct {
	BasePath       string                     `toml:"base_path"`
	MaxBodySize    string                     `toml:"max_body_size"`
	RequestTimeout string                     `toml:"request_timeout"`
	CORS           middleware.CORSConfig      `toml:"cors"`
	Auth           middleware.AuthConfig      `toml:"auth"`
	RateLimit      middleware.RateLimitConfig `toml:"rate_limit"`
	Cache          CacheConfig                `toml:"cache"`
	OpenAPI        openapi.Config             `toml:"openapi"`
}

// MaxBodySizeBytes returns the parsed body size cap.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return 32 * 1024 // 32KB fallback
	}
	return size
}

// RequestTimeoutDuration returns RequestTimeout as a time.Duration.
func (c *APIConfig) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested sub-configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request_timeout: %w", err)
	}
	if _, err := formatting.ParseBytes(c.MaxBodySize); err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Auth.Finalize(authEnv); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.RateLimit.Finalize(rateLimitEnv); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if err := c.Cache.Finalize(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
	if overlay.RequestTimeout != "" {
		c.RequestTimeout = overlay.RequestTimeout
	}

	c.CORS.Merge(&overlay.CORS)
	c.Auth.Merge(&overlay.Auth)
	c.RateLimit.Merge(&overlay.RateLimit)
	c.Cache.Merge(&overlay.Cache)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "32KB"
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = "5s"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("TIZHI_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("TIZHI_API_MAX_BODY_SIZE"); v != "" {
		c.MaxBodySize = v
	}
	if v := os.Getenv("TIZHI_API_REQUEST_TIMEOUT"); v != "" {
		c.RequestTimeout = v
	}
}

// CacheConfig controls memoization of classification results.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	TTL     string `toml:"ttl"`
}

// TTLDuration returns TTL as a time.Duration.
func (c *CacheConfig) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *CacheConfig) Finalize() error {
	if c.TTL == "" {
		c.TTL = "10m"
	}

	if v := os.Getenv("TIZHI_CACHE_ENABLED"); v != "" {
		c.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("TIZHI_CACHE_TTL"); v != "" {
		c.TTL = v
	}

	if _, err := time.ParseDuration(c.TTL); err != nil {
		return fmt.Errorf("invalid ttl: %w", err)
	}
	return nil
}

// Merge overwrites fields from overlay.
func (c *CacheConfig) Merge(overlay *CacheConfig) {
	c.Enabled = overlay.Enabled
	if overlay.TTL != "" {
		c.TTL = overlay.TTL
	}
}
