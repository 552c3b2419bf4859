package middleware

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CORSConfig holds CORS policy settings.
type CORSConfig struct {
	Enabled          bool     `toml:"enabled"`
	Origins          []string `toml:"origins"`
	AllowedMethods   []string `toml:"allowed_methods"`
	AllowedHeaders   []string `toml:"allowed_headers"`
	AllowCredentials bool     `toml:"allow_credentials"`
	MaxAge           int      `toml:"max_age"`
}

// CORSEnv maps CORS config fields to environment variable names for override
// injection.
type CORSEnv struct {
	Enabled          string
	Origins          string
	AllowedMethods   string
	AllowedHeaders   string
	AllowCredentials string
	MaxAge           string
}

// Finalize applies defaults and environment variable overrides.
func (c *CORSConfig) Finalize(env *CORSEnv) error {
	if len(c.AllowedMethods) == 0 {
		c.AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(c.AllowedHeaders) == 0 {
		c.AllowedHeaders = []string{"Content-Type", "Authorization"}
	}
	if c.MaxAge <= 0 {
		c.MaxAge = 3600
	}

	if env == nil {
		return nil
	}
	if v := envBool(env.Enabled); v != nil {
		c.Enabled = *v
	}
	if v := envList(env.Origins); v != nil {
		c.Origins = v
	}
	if v := envList(env.AllowedMethods); v != nil {
		c.AllowedMethods = v
	}
	if v := envList(env.AllowedHeaders); v != nil {
		c.AllowedHeaders = v
	}
	if v := envBool(env.AllowCredentials); v != nil {
		c.AllowCredentials = *v
	}
	if v := envInt(env.MaxAge); v != nil {
		c.MaxAge = *v
	}
	return nil
}

// Merge overwrites fields from overlay. Boolean fields always apply; slice
// and int fields only apply when non-zero.
func (c *CORSConfig) Merge(overlay *CORSConfig) {
	c.Enabled = overlay.Enabled
	c.AllowCredentials = overlay.AllowCredentials

	if overlay.Origins != nil {
		c.Origins = overlay.Origins
	}
	if overlay.AllowedMethods != nil {
		c.AllowedMethods = overlay.AllowedMethods
	}
	if overlay.AllowedHeaders != nil {
		c.AllowedHeaders = overlay.AllowedHeaders
	}
	if overlay.MaxAge > 0 {
		c.MaxAge = overlay.MaxAge
	}
}

// AuthConfig holds bearer API-key authentication settings. Keys are supplied
// through configuration or a comma-separated environment variable, never
// persisted elsewhere.
type AuthConfig struct {
	Enabled bool     `toml:"enabled"`
	Keys    []string `toml:"keys"`
}

// AuthEnv maps auth config fields to environment variable names.
type AuthEnv struct {
	Enabled string
	Keys    string
}

// Finalize applies environment variable overrides and validates that enabled
// auth has at least one key.
func (c *AuthConfig) Finalize(env *AuthEnv) error {
	if env != nil {
		if v := envBool(env.Enabled); v != nil {
			c.Enabled = *v
		}
		if v := envList(env.Keys); v != nil {
			c.Keys = v
		}
	}

	if c.Enabled && len(c.Keys) == 0 {
		return fmt.Errorf("auth enabled but no API keys configured")
	}
	return nil
}

// Merge overwrites fields from overlay.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	c.Enabled = overlay.Enabled
	if overlay.Keys != nil {
		c.Keys = overlay.Keys
	}
}

// RateLimitConfig holds per-caller rate limiting settings.
type RateLimitConfig struct {
	Enabled   bool `toml:"enabled"`
	PerMinute int  `toml:"per_minute"`
	Burst     int  `toml:"burst"`
}

// RateLimitEnv maps rate limit config fields to environment variable names.
type RateLimitEnv struct {
	Enabled   string
	PerMinute string
	Burst     string
}

// Finalize applies defaults and environment variable overrides.
func (c *RateLimitConfig) Finalize(env *RateLimitEnv) error {
	if c.PerMinute <= 0 {
		c.PerMinute = 60
	}

	if env != nil {
		if v := envBool(env.Enabled); v != nil {
			c.Enabled = *v
		}
		if v := envInt(env.PerMinute); v != nil && *v > 0 {
			c.PerMinute = *v
		}
		if v := envInt(env.Burst); v != nil && *v > 0 {
			c.Burst = *v
		}
	}

	// allow the full minute quota to arrive at once by default
	if c.Burst <= 0 {
		c.Burst = c.PerMinute
	}
	return nil
}

// Merge overwrites fields from overlay.
func (c *RateLimitConfig) Merge(overlay *RateLimitConfig) {
	c.Enabled = overlay.Enabled
	if overlay.PerMinute > 0 {
		c.PerMinute = overlay.PerMinute
	}
	if overlay.Burst > 0 {
		c.Burst = overlay.Burst
	}
}

func envBool(name string) *bool {
	if name == "" {
		return nil
	}
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &parsed
}

func envInt(name string) *int {
	if name == "" {
		return nil
	}
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &parsed
}

func envList(name string) []string {
	if name == "" {
		return nil
	}
	v := os.Getenv(name)
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
