// Package infrastructure provides core service initialization for application startup.
// It assembles the shared systems (logging, normalizer, artifact loader, optional
// blob storage and database) that the analysis domain requires.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/opiniao/internal/config"
	"github.com/JaimeStill/opiniao/pkg/artifacts"
	"github.com/JaimeStill/opiniao/pkg/database"
	"github.com/JaimeStill/opiniao/pkg/langcheck"
	"github.com/JaimeStill/opiniao/pkg/lifecycle"
	"github.com/JaimeStill/opiniao/pkg/storage"
	"github.com/JaimeStill/opiniao/pkg/textnorm"
)

// Infrastructure holds the core systems required by all domain modules.
// Storage is nil unless artifacts come from blob storage. Database is nil
// unless history is enabled. Language is nil when detection is disabled.
type Infrastructure struct {
	Lifecycle  *lifecycle.Coordinator
	Logger     *slog.Logger
	Normalizer *textnorm.Normalizer
	Loader     *artifacts.Loader
	Language   *langcheck.Detector
	Storage    storage.System
	Database   database.System

	// NormalizerErr records a stopword resource failure. The service still
	// starts so the failure can be surfaced per request and via readiness.
	NormalizerErr error
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithLogger(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// NewWithLogger behaves like New with an explicit logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	infra := &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
	}

	normalizer, err := textnorm.New(textnorm.Options{
		StopwordsFile:  cfg.Normalizer.StopwordsFile,
		ExtraStopwords: cfg.Normalizer.ExtraStopwords,
	})
	if err != nil {
		logger.Error("normalizer init failed", "error", err)
		infra.NormalizerErr = err
	}
	infra.Normalizer = normalizer

	src := artifacts.NewDirSource(cfg.Artifacts.Dir)
	if cfg.BlobArtifacts() {
		store, err := storage.New(&cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("storage init failed: %w", err)
		}
		infra.Storage = store
		src = artifacts.NewBlobSource(store, cfg.Storage.ContainerName)
	}
	infra.Loader = artifacts.NewLoader(src, &cfg.Artifacts, logger)

	if cfg.Language.On() {
		infra.Language = langcheck.New(&cfg.Language)
	}

	if cfg.History.Enabled {
		db, err := database.New(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		infra.Database = db
	}

	return infra, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
// The artifact loader and the normalizer resources are readiness requirements.
func (i *Infrastructure) Start() error {
	if i.Storage != nil {
		if err := i.Storage.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("storage start failed: %w", err)
		}
	}
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("database start failed: %w", err)
		}
	}
	if err := i.Loader.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("artifact loader start failed: %w", err)
	}

	i.Lifecycle.Require(i.Loader)
	i.Lifecycle.Require(normalizerCheck{i.NormalizerErr})
	return nil
}

type normalizerCheck struct{ err error }

func (c normalizerCheck) Ready() bool { return c.err == nil }
