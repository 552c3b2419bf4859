package middleware

import (
	"encoding/json"
	"net/http"
)

// APIError is a transport-boundary failure with a machine-readable code.
// The code set is closed: UNAUTHORIZED, RATE_LIMITED, PAYLOAD_TOO_LARGE,
// TIMEOUT, INTERNAL_ERROR.
type APIError struct {
	Code    string
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return e.Message
}

// Unauthorized builds a 401 APIError.
func Unauthorized(message string) *APIError {
	return &APIError{Code: "UNAUTHORIZED", Message: message, Status: http.StatusUnauthorized}
}

// RateLimited builds a 429 APIError.
func RateLimited(message string) *APIError {
	return &APIError{Code: "RATE_LIMITED", Message: message, Status: http.StatusTooManyRequests}
}

// PayloadTooLarge builds a 413 APIError.
func PayloadTooLarge(message string) *APIError {
	return &APIError{Code: "PAYLOAD_TOO_LARGE", Message: message, Status: http.StatusRequestEntityTooLarge}
}

// Timeout builds a 504 APIError.
func Timeout(message string) *APIError {
	return &APIError{Code: "TIMEOUT", Message: message, Status: http.StatusGatewayTimeout}
}

// Internal builds a 500 APIError.
func Internal(message string) *APIError {
	return &APIError{Code: "INTERNAL_ERROR", Message: message, Status: http.StatusInternalServerError}
}

// RespondAPIError writes the error envelope carrying the request trace id:
// {"error": {"code", "message", "trace_id"}}.
func RespondAPIError(w http.ResponseWriter, r *http.Request, apiErr *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	json.NewEncoder(w).Encode(map[string]map[string]string{
		"error": {
			"code":     apiErr.Code,
			"message":  apiErr.Message,
			"trace_id": TraceID(r.Context()),
		},
	})
}
