// Package config loads the opiniao service configuration from config.toml, an
// optional environment overlay, and OPINIAO_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/opiniao/pkg/artifacts"
	"github.com/JaimeStill/opiniao/pkg/database"
	"github.com/JaimeStill/opiniao/pkg/langcheck"
	"github.com/JaimeStill/opiniao/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvOpiniaoEnv             = "OPINIAO_ENV"
	EnvOpiniaoShutdownTimeout = "OPINIAO_SHUTDOWN_TIMEOUT"
	EnvOpiniaoVersion         = "OPINIAO_VERSION"
)

var artifactsEnv = &artifacts.Env{
	Source:      "OPINIAO_ARTIFACTS_SOURCE",
	Dir:         "OPINIAO_ARTIFACTS_DIR",
	Vectorizer:  "OPINIAO_ARTIFACTS_VECTORIZER",
	Classifier:  "OPINIAO_ARTIFACTS_CLASSIFIER",
	LoadTimeout: "OPINIAO_ARTIFACTS_LOAD_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "OPINIAO_STORAGE_CONTAINER_NAME",
	ConnectionString: "OPINIAO_STORAGE_CONNECTION_STRING",
	ServiceURL:       "OPINIAO_STORAGE_SERVICE_URL",
	Prefix:           "OPINIAO_STORAGE_PREFIX",
}

var databaseEnv = &database.Env{
	Host:            "OPINIAO_DB_HOST",
	Port:            "OPINIAO_DB_PORT",
	Name:            "OPINIAO_DB_NAME",
	User:            "OPINIAO_DB_USER",
	Password:        "OPINIAO_DB_PASSWORD",
	SSLMode:         "OPINIAO_DB_SSL_MODE",
	ApplicationName: "OPINIAO_DB_APPLICATION_NAME",
	MaxOpenConns:    "OPINIAO_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "OPINIAO_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "OPINIAO_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "OPINIAO_DB_CONN_TIMEOUT",
}

var languageEnv = &langcheck.Env{
	Enabled:             "OPINIAO_LANGUAGE_ENABLED",
	MinLength:           "OPINIAO_LANGUAGE_MIN_LENGTH",
	Threshold:           "OPINIAO_LANGUAGE_THRESHOLD",
	MinRelativeDistance: "OPINIAO_LANGUAGE_MIN_RELATIVE_DISTANCE",
}

// Config is the root configuration for the opiniao service.
// Storage is only finalized when artifacts are read from blob storage, and
// Database only when history is enabled.
type Config struct {
	Server          ServerConfig     `toml:"server"`
	Artifacts       artifacts.Config `toml:"artifacts"`
	Storage         storage.Config   `toml:"storage"`
	Normalizer      NormalizerConfig `toml:"normalizer"`
	Language        langcheck.Config `toml:"language"`
	History         HistoryConfig    `toml:"history"`
	Database        database.Config  `toml:"database"`
	API             APIConfig        `toml:"api"`
	ShutdownTimeout string           `toml:"shutdown_timeout"`
	Version         string           `toml:"version"`
}

// Env returns the OPINIAO_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvOpiniaoEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// BlobArtifacts reports whether artifacts are read from blob storage.
func (c *Config) BlobArtifacts() bool {
	return c.Artifacts.Source == artifacts.SourceBlob
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	return LoadFile(BaseConfigFile)
}

// LoadFile behaves like Load with an explicit base config path. The overlay is
// resolved next to path.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		loaded, err := load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if overlay := overlayPath(path); overlay != "" {
		o, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(o)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Artifacts.Merge(&overlay.Artifacts)
	c.Storage.Merge(&overlay.Storage)
	c.Normalizer.Merge(&overlay.Normalizer)
	c.Language.Merge(&overlay.Language)
	c.History.Merge(&overlay.History)
	c.Database.Merge(&overlay.Database)
	c.API.Merge(&overlay.API)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Artifacts.Finalize(artifactsEnv); err != nil {
		return fmt.Errorf("artifacts: %w", err)
	}
	if c.BlobArtifacts() {
		if err := c.Storage.Finalize(storageEnv); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
	}
	if err := c.Normalizer.Finalize(); err != nil {
		return fmt.Errorf("normalizer: %w", err)
	}
	if err := c.Language.Finalize(languageEnv); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	if err := c.History.Finalize(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if c.History.Enabled {
		if err := c.Database.Finalize(databaseEnv); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvOpiniaoShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvOpiniaoVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath(base string) string {
	env := os.Getenv(EnvOpiniaoEnv)
	if env == "" {
		return ""
	}

	path := filepath.Join(filepath.Dir(base), fmt.Sprintf(OverlayConfigPattern, env))
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
