package langcheck

import (
	"fmt"
	"os"
	"strconv"
)

// Config controls language detection.
type Config struct {
	Enabled             *bool   `toml:"enabled"`
	MinLength           int     `toml:"min_length"`
	Threshold           float64 `toml:"threshold"`
	MinRelativeDistance float64 `toml:"min_relative_distance"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Enabled             string
	MinLength           string
	Threshold           string
	MinRelativeDistance string
}

// On reports whether detection is enabled. Detection defaults to enabled.
func (c *Config) On() bool {
	return c.Enabled == nil || *c.Enabled
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
	if overlay.Enabled != nil {
		c.Enabled = overlay.Enabled
	}
	if overlay.MinLength != 0 {
		c.MinLength = overlay.MinLength
	}
	if overlay.Threshold != 0 {
		c.Threshold = overlay.Threshold
	}
	if overlay.MinRelativeDistance != 0 {
		c.MinRelativeDistance = overlay.MinRelativeDistance
	}
}

func (c *Config) loadDefaults() {
	if c.MinLength <= 0 {
		c.MinLength = 12
	}
	if c.Threshold == 0 {
		c.Threshold = 0.6
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Enabled != "" {
		if v := os.Getenv(env.Enabled); v != "" {
			if enabled, err := strconv.ParseBool(v); err == nil {
				c.Enabled = &enabled
			}
		}
	}
	if env.MinLength != "" {
		if v := os.Getenv(env.MinLength); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MinLength = n
			}
		}
	}
	if env.Threshold != "" {
		if v := os.Getenv(env.Threshold); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				c.Threshold = f
			}
		}
	}
	if env.MinRelativeDistance != "" {
		if v := os.Getenv(env.MinRelativeDistance); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				c.MinRelativeDistance = f
			}
		}
	}
}

func (c *Config) validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("threshold must be within [0, 1]: %v", c.Threshold)
	}
	if c.MinRelativeDistance < 0 || c.MinRelativeDistance > 0.99 {
		return fmt.Errorf("min_relative_distance must be within [0, 0.99]: %v", c.MinRelativeDistance)
	}
	return nil
}
