// Package api assembles the JSON API module: analysis endpoints, optional
// history endpoints, and the generated OpenAPI document.
package api

import (
	"net/http"

	"github.com/JaimeStill/opiniao/internal/config"
	"github.com/JaimeStill/opiniao/pkg/middleware"
	"github.com/JaimeStill/opiniao/pkg/module"
)

// NewModule creates the API module mounted at cfg.API.BasePath.
func NewModule(cfg *config.Config, runtime *Runtime, domain *Domain) (*module.Module, error) {
	mux := http.NewServeMux()
	if err := registerRoutes(mux, domain, cfg, runtime); err != nil {
		return nil, err
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestID())
	m.Use(middleware.Recover(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
