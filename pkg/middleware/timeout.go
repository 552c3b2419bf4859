package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"
)

// WithTimeout aborts request handling after d and writes a 504 envelope.
// The inner handler runs against a buffered writer so a response is only
// released to the client when it completes in time; on timeout the inner
// handler keeps running until it observes its cancelled context, but its
// output is discarded.
func WithTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if d <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := newBufferedResponse()
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case <-done:
				buf.flush(w)
			case <-ctx.Done():
				RespondAPIError(w, r, Timeout("请求处理超时"))
			}
		})
	}
}

// bufferedResponse captures a handler's full response for atomic replay.
type bufferedResponse struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newBufferedResponse() *bufferedResponse {
	return &bufferedResponse{
		header: make(http.Header),
		status: http.StatusOK,
	}
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(status int) {
	b.status = status
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	return b.body.Write(p)
}

func (b *bufferedResponse) flush(w http.ResponseWriter) {
	for key, values := range b.header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.WriteHeader(b.status)
	w.Write(b.body.Bytes())
}
