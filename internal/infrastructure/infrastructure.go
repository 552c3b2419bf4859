// Package infrastructure provides core service initialization for
// application startup: lifecycle coordination, logging, and the immutable
// constitution rule table shared by all requests.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lianzhou/tizhi/internal/config"
	"github.com/lianzhou/tizhi/internal/constitution"
	"github.com/lianzhou/tizhi/pkg/lifecycle"
)

// Infrastructure holds the core systems required by the API module.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Rules     *constitution.Table
}

// New creates an Infrastructure from the application configuration. The rule
// table is built from the compiled-in lexicon, or loaded from rules_path when
// configured; either way it is immutable from here on.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	rules := constitution.Builtin()
	if cfg.RulesPath != "" {
		loaded, err := constitution.LoadTable(cfg.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("rules load failed: %w", err)
		}
		rules = loaded
		logger.Info("rule table loaded", "path", cfg.RulesPath)
	}

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Rules:     rules,
	}, nil
}

// Start marks the service ready. The rule table needs no warm-up; readiness
// exists so the readyz probe flips only after the HTTP server is wired.
func (i *Infrastructure) Start() error {
	i.Lifecycle.SetReady()
	return nil
}
