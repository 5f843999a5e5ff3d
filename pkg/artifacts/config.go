package artifacts

import (
	"fmt"
	"os"
	"time"
)

// Source kinds.
const (
	SourceDir  = "dir"
	SourceBlob = "blob"
)

// Config locates the fitted vectorizer and classifier artifacts.
type Config struct {
	Source      string `toml:"source"`
	Dir         string `toml:"dir"`
	Vectorizer  string `toml:"vectorizer"`
	Classifier  string `toml:"classifier"`
	LoadTimeout string `toml:"load_timeout"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Source      string
	Dir         string
	Vectorizer  string
	Classifier  string
	LoadTimeout string
}

// LoadTimeoutDuration returns LoadTimeout as a time.Duration.
func (c *Config) LoadTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.LoadTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Source != "" {
		c.Source = overlay.Source
	}
	if overlay.Dir != "" {
		c.Dir = overlay.Dir
	}
	if overlay.Vectorizer != "" {
		c.Vectorizer = overlay.Vectorizer
	}
	if overlay.Classifier != "" {
		c.Classifier = overlay.Classifier
	}
	if overlay.LoadTimeout != "" {
		c.LoadTimeout = overlay.LoadTimeout
	}
}

func (c *Config) loadDefaults() {
	if c.Source == "" {
		c.Source = SourceDir
	}
	if c.Dir == "" {
		c.Dir = "models"
	}
	if c.Vectorizer == "" {
		c.Vectorizer = "vectorizer.json"
	}
	if c.Classifier == "" {
		c.Classifier = "classifier.json"
	}
	if c.LoadTimeout == "" {
		c.LoadTimeout = "30s"
	}
}

func (c *Config) loadEnv(env *Env) {
	set := func(name string, dst *string) {
		if name == "" {
			return
		}
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	set(env.Source, &c.Source)
	set(env.Dir, &c.Dir)
	set(env.Vectorizer, &c.Vectorizer)
	set(env.Classifier, &c.Classifier)
	set(env.LoadTimeout, &c.LoadTimeout)
}

func (c *Config) validate() error {
	switch c.Source {
	case SourceDir, SourceBlob:
	default:
		return fmt.Errorf("invalid source %q: want %s or %s", c.Source, SourceDir, SourceBlob)
	}
	if c.Vectorizer == "" {
		return fmt.Errorf("vectorizer required")
	}
	if c.Classifier == "" {
		return fmt.Errorf("classifier required")
	}
	if _, err := time.ParseDuration(c.LoadTimeout); err != nil {
		return fmt.Errorf("invalid load_timeout: %w", err)
	}
	return nil
}
