package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/opiniao/internal/analysis"
	"github.com/JaimeStill/opiniao/internal/config"
	"github.com/JaimeStill/opiniao/internal/history"
	"github.com/JaimeStill/opiniao/pkg/openapi"
	"github.com/JaimeStill/opiniao/pkg/routes"
)

func groups(domain *Domain, maxReviewSize int64) []routes.Group {
	g := []routes.Group{domain.Analysis.Handler(maxReviewSize).Routes()}
	if domain.History != nil {
		g = append(g, domain.History.Handler().Routes())
	}
	return g
}

func registerRoutes(mux *http.ServeMux, domain *Domain, cfg *config.Config, runtime *Runtime) error {
	g := groups(domain, runtime.MaxReviewSize)
	routes.Register(mux, g...)

	spec, err := buildSpec(cfg, domain.History != nil, g)
	if err != nil {
		return err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(spec))
	return nil
}

func buildSpec(cfg *config.Config, withHistory bool, g []routes.Group) ([]byte, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)

	// paths are documented relative to the module prefix
	servers := cfg.API.OpenAPI.Servers
	if len(servers) == 0 {
		servers = []string{cfg.API.BasePath}
	}
	for _, s := range servers {
		spec.AddServer(s)
	}
	spec.Components.AddSchemas(analysis.Spec.Schemas())
	if withHistory {
		spec.Components.AddSchemas(history.Spec.Schemas())
	}
	routes.Describe(spec, "", g...)

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}
	return data, nil
}
