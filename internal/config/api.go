package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/opiniao/pkg/formatting"
	"github.com/JaimeStill/opiniao/pkg/middleware"
	"github.com/JaimeStill/opiniao/pkg/openapi"
	"github.com/JaimeStill/opiniao/pkg/pagination"
)

const defaultMaxReviewSize = 16 * 1024

var corsEnv = &middleware.CORSEnv{
	Enabled:          "OPINIAO_CORS_ENABLED",
	Origins:          "OPINIAO_CORS_ORIGINS",
	AllowedMethods:   "OPINIAO_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "OPINIAO_CORS_ALLOWED_HEADERS",
	AllowCredentials: "OPINIAO_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "OPINIAO_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "OPINIAO_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "OPINIAO_PAGINATION_MAX_PAGE_SIZE",
	MaxSearchLength: "OPINIAO_PAGINATION_MAX_SEARCH_LENGTH",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "OPINIAO_OPENAPI_TITLE",
	Description: "OPINIAO_OPENAPI_DESCRIPTION",
	Servers:     "OPINIAO_OPENAPI_SERVERS",
}

// APIConfig holds API routing, request limits, CORS, pagination, and OpenAPI settings.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	AppPath       string                `toml:"app_path"`
	MaxReviewSize string                `toml:"max_review_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
	Pagination    pagination.Config     `toml:"pagination"`
	OpenAPI       openapi.Config        `toml:"openapi"`
}

// MaxReviewChars returns the review limit in characters. MaxReviewSize takes
// size suffixes, so "16KB" allows 16384 characters.
func (c *APIConfig) MaxReviewChars() int64 {
	size, err := formatting.ParseBytes(c.MaxReviewSize)
	if err != nil {
		return defaultMaxReviewSize
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.AppPath != "" {
		c.AppPath = overlay.AppPath
	}
	if overlay.MaxReviewSize != "" {
		c.MaxReviewSize = overlay.MaxReviewSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.AppPath == "" {
		c.AppPath = "/app"
	}
	if c.MaxReviewSize == "" {
		c.MaxReviewSize = "16KB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("OPINIAO_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("OPINIAO_API_APP_PATH"); v != "" {
		c.AppPath = v
	}
	if v := os.Getenv("OPINIAO_API_MAX_REVIEW_SIZE"); v != "" {
		c.MaxReviewSize = v
	}
}

func (c *APIConfig) validate() error {
	size, err := formatting.ParseBytes(c.MaxReviewSize)
	if err != nil {
		return fmt.Errorf("invalid max_review_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_review_size must be positive")
	}
	if c.BasePath == c.AppPath {
		return fmt.Errorf("base_path and app_path must differ: %s", c.BasePath)
	}
	return nil
}
