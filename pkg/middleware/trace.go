package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const metaKey contextKey = "request-meta"

// Meta carries per-request observability fields. It is installed by Trace
// and populated as the request flows down the stack, so upstream middleware
// (the logger) can read values recorded downstream (the auth key hash).
type Meta struct {
	TraceID    string
	APIKeyHash string
}

// Trace assigns a UUID trace id to each request, exposes it through the
// context, and echoes it in the X-Trace-Id response header.
func Trace() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			meta := &Meta{TraceID: uuid.NewString(), APIKeyHash: "-"}
			ctx := context.WithValue(r.Context(), metaKey, meta)
			w.Header().Set("X-Trace-Id", meta.TraceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TraceID returns the trace id assigned by Trace, or "-" when absent.
func TraceID(ctx context.Context) string {
	if meta := requestMeta(ctx); meta != nil {
		return meta.TraceID
	}
	return "-"
}

// APIKeyHash returns the truncated key hash recorded by Auth, or "-".
func APIKeyHash(ctx context.Context) string {
	if meta := requestMeta(ctx); meta != nil {
		return meta.APIKeyHash
	}
	return "-"
}

func requestMeta(ctx context.Context) *Meta {
	meta, _ := ctx.Value(metaKey).(*Meta)
	return meta
}
