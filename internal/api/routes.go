package api

import (
	"net/http"

	"github.com/lianzhou/tizhi/internal/config"
	"github.com/lianzhou/tizhi/pkg/openapi"
	"github.com/lianzhou/tizhi/pkg/routes"
)

// registerRoutes builds the API mux from the domain handlers and adds the
// OpenAPI document endpoint.
func registerRoutes(cfg *config.Config, domain *Domain) (*http.ServeMux, error) {
	mux := http.NewServeMux()

	routes.Register(mux,
		domain.Constitution.Handler().Routes(),
	)

	specBytes, err := openapi.MarshalJSON(buildSpec(cfg))
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	return mux, nil
}
