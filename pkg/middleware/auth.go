package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// Auth validates the Authorization: Bearer <API_KEY> header against the
// configured key set and records a truncated key hash on the request meta
// for log correlation. Passes through when disabled.
func Auth(cfg *AuthConfig) func(http.Handler) http.Handler {
	keys := make(map[string]struct{}, len(cfg.Keys))
	for _, k := range cfg.Keys {
		keys[k] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			token := parseBearerToken(r.Header.Get("Authorization"))
			if token == "" {
				RespondAPIError(w, r, Unauthorized("缺少或无效的 Authorization: Bearer <API_KEY>"))
				return
			}

			if _, ok := keys[token]; !ok {
				RespondAPIError(w, r, Unauthorized("API Key 无效"))
				return
			}

			if meta := requestMeta(r.Context()); meta != nil {
				meta.APIKeyHash = HashAPIKey(token)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HashAPIKey returns the first 12 hex characters of the key's SHA-256,
// enough to correlate log lines without exposing the key.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:12]
}

func parseBearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
