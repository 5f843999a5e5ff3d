package config

import (
	"os"
	"strconv"
	"strings"
)

// NormalizerConfig customizes the stopword set used by the text normalizer.
type NormalizerConfig struct {
	StopwordsFile  string   `toml:"stopwords_file"`
	ExtraStopwords []string `toml:"extra_stopwords"`
}

// Finalize applies environment variable overrides.
func (c *NormalizerConfig) Finalize() error {
	if v := os.Getenv("OPINIAO_NORMALIZER_STOPWORDS_FILE"); v != "" {
		c.StopwordsFile = v
	}
	if v := os.Getenv("OPINIAO_NORMALIZER_EXTRA_STOPWORDS"); v != "" {
		c.ExtraStopwords = nil
		for w := range strings.SplitSeq(v, ",") {
			if w = strings.TrimSpace(w); w != "" {
				c.ExtraStopwords = append(c.ExtraStopwords, w)
			}
		}
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *NormalizerConfig) Merge(overlay *NormalizerConfig) {
	if overlay.StopwordsFile != "" {
		c.StopwordsFile = overlay.StopwordsFile
	}
	if overlay.ExtraStopwords != nil {
		c.ExtraStopwords = overlay.ExtraStopwords
	}
}

// HistoryConfig toggles recording of completed analyses. History is disabled
// by default and the service performs no writes while disabled.
type HistoryConfig struct {
	Enabled bool `toml:"enabled"`
}

// Finalize applies environment variable overrides.
func (c *HistoryConfig) Finalize() error {
	if v := os.Getenv("OPINIAO_HISTORY_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	return nil
}

// Merge applies the overlay's Enabled value when it is set.
func (c *HistoryConfig) Merge(overlay *HistoryConfig) {
	if overlay.Enabled {
		c.Enabled = true
	}
}
