package api

import (
	"github.com/JaimeStill/opiniao/internal/config"
	"github.com/JaimeStill/opiniao/internal/infrastructure"
	"github.com/JaimeStill/opiniao/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination    pagination.Config
	MaxReviewSize int64
	History       bool
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	scoped := *infra
	scoped.Logger = infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &scoped,
		Pagination:     cfg.API.Pagination,
		MaxReviewSize:  cfg.API.MaxReviewChars(),
		History:        cfg.History.Enabled && infra.Database != nil,
	}
}
