// Package api assembles the HTTP API module: domain systems, route
// registration, the middleware stack, and the generated OpenAPI document.
package api

import (
	"fmt"

	"github.com/lianzhou/tizhi/internal/config"
	"github.com/lianzhou/tizhi/internal/infrastructure"
	"github.com/lianzhou/tizhi/pkg/middleware"
	"github.com/lianzhou/tizhi/pkg/module"
)

// NewModule wires the domain systems into an HTTP module mounted at the
// configured base path, with the full middleware stack applied.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux, err := registerRoutes(cfg, domain)
	if err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	m := module.New(cfg.API.BasePath, mux)

	// Trace must be outermost so the mutable request meta exists for every
	// downstream middleware. Logger sits just inside it to observe the final
	// status and the api key hash Auth records later in the chain. The
	// timeout is innermost so its deadline covers only handler work.
	m.Use(middleware.Trace())
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.BodyLimit(cfg.API.MaxBodySizeBytes()))
	m.Use(middleware.Auth(&cfg.API.Auth))
	m.Use(middleware.RateLimit(&cfg.API.RateLimit))
	m.Use(middleware.WithTimeout(cfg.API.RequestTimeoutDuration()))

	return m, nil
}
