package main

import (
	"net/http"

	"github.com/JaimeStill/opiniao/internal/api"
	"github.com/JaimeStill/opiniao/internal/config"
	"github.com/JaimeStill/opiniao/internal/infrastructure"
	"github.com/JaimeStill/opiniao/pkg/handlers"
	"github.com/JaimeStill/opiniao/pkg/module"
	"github.com/JaimeStill/opiniao/web/app"
)

// Modules holds the HTTP modules mounted on the root router.
type Modules struct {
	API *module.Module
	App *module.Module
}

// NewModules builds the API and form modules over one shared analysis domain.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	runtime := api.NewRuntime(cfg, infra)
	domain := api.NewDomain(runtime)

	apiModule, err := api.NewModule(cfg, runtime, domain)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(cfg.API.AppPath, domain.Analysis, infra.Logger, runtime.MaxReviewSize)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

// Mount registers every module on router.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	router.Redirect("/", cfg.API.AppPath)

	return router
}
