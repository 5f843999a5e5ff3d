// Package app serves the review form: a server-rendered page where a
// Portuguese review is submitted and its sentiment shown with a confidence
// percentage and a two-bar probability chart.
package app

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/opiniao/internal/analysis"
	"github.com/JaimeStill/opiniao/pkg/middleware"
	"github.com/JaimeStill/opiniao/pkg/module"
	"github.com/JaimeStill/opiniao/pkg/routes"
	"github.com/JaimeStill/opiniao/pkg/web"
)

//go:embed templates static public
var content embed.FS

const layout = "layout"

var (
	indexView    = web.ViewDef{Template: "index.html", Title: "Analisador de Sentimentos"}
	notFoundView = web.ViewDef{Template: "notfound.html", Title: "Página não encontrada"}
)

// NewModule creates the form module mounted at basePath.
func NewModule(basePath string, sys analysis.System, logger *slog.Logger, maxReviewSize int64) (*module.Module, error) {
	logger = logger.With("module", "app")

	ts, err := web.NewTemplateSet(
		content,
		"templates/layout.html",
		"templates/views",
		basePath,
		[]web.ViewDef{indexView, notFoundView},
	)
	if err != nil {
		return nil, err
	}

	static, err := web.StaticServer(content, "static", "/static/")
	if err != nil {
		return nil, err
	}

	h := newHandler(sys, ts, logger, maxReviewSize)

	router := web.NewRouter()
	router.SetFallback(ts.ErrorHandler(layout, notFoundView, http.StatusNotFound))

	routes.Register(
		router.Mux(),
		h.routes(),
		routes.Group{
			Routes: append(
				web.PublicFileRoutes(content, "public", "favicon.svg"),
				routes.Route{Method: "GET", Pattern: "/static/", Handler: static},
			),
		},
	)

	m := module.New(basePath, router)
	m.Use(middleware.RequestID())
	m.Use(middleware.Recover(logger))
	m.Use(middleware.Logger(logger))

	return m, nil
}
