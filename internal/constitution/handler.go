package constitution

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lianzhou/tizhi/pkg/handlers"
	"github.com/lianzhou/tizhi/pkg/routes"
)

// Handler provides HTTP endpoints for constitution classification.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "constitution"),
	}
}

// Routes returns the route group definition for constitution endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/constitution",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/estimate", Handler: h.Estimate},
		},
	}
}

// Estimate classifies the submitted symptom text and responds with the
// primary and secondary constitution types, supporting evidence, lifestyle
// recommendations, and clarifying questions. Short or unmatchable input
// yields the insufficient-information response, not an error.
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if req.Text == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrEmptyText)
		return
	}

	result := h.sys.Analyze(req.Text)
	handlers.RespondJSON(w, http.StatusOK, BuildResponse(h.sys, result))
}
