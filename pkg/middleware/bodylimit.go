package middleware

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// BodyLimit rejects mutating requests whose body exceeds maxBytes with a 413
// envelope. The declared Content-Length is checked first; the body is then
// read with a hard cap so a lying or absent Content-Length cannot bypass the
// limit, and downstream handlers receive a replayable reader.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
			default:
				next.ServeHTTP(w, r)
				return
			}

			if r.ContentLength > maxBytes {
				RespondAPIError(w, r, PayloadTooLarge(tooLargeMessage(maxBytes)))
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
			if err != nil {
				RespondAPIError(w, r, Internal("读取请求体失败"))
				return
			}
			if int64(len(body)) > maxBytes {
				RespondAPIError(w, r, PayloadTooLarge(tooLargeMessage(maxBytes)))
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			r.ContentLength = int64(len(body))
			next.ServeHTTP(w, r)
		})
	}
}

func tooLargeMessage(maxBytes int64) string {
	return fmt.Sprintf("请求体大小超过限制 %d 字节", maxBytes)
}
