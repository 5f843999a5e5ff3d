package history

import (
	"net/url"
	"time"

	"github.com/JaimeStill/opiniao/internal/analysis"
	"github.com/JaimeStill/opiniao/pkg/query"
	"github.com/JaimeStill/opiniao/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "analyses", "a").
	Project("id", "ID").
	Project("review", "Review").
	Project("normalized", "Normalized").
	Project("sentiment", "Sentiment").
	Project("label", "Label").
	Project("confidence", "Confidence").
	Project("prob_negative", "Negative").
	Project("prob_positive", "Positive").
	Project("language", "Language").
	Project("warning", "Warning").
	Project("analyzed_at", "AnalyzedAt")

var defaultSort = query.SortField{
	Field:      "AnalyzedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for history queries.
// Nil fields are ignored.
type Filters struct {
	Sentiment *string    `json:"sentiment,omitempty"`
	Language  *string    `json:"language,omitempty"`
	Since     *time.Time `json:"since,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Sentiment", f.Sentiment).
		WhereEquals("Language", f.Language).
		WhereAtLeast("AnalyzedAt", f.Since)
}

// FiltersFromQuery extracts filter values from URL query parameters.
// since accepts an RFC 3339 timestamp; invalid values are ignored.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("sentiment"); s == analysis.SentimentPositive || s == analysis.SentimentNegative {
		f.Sentiment = &s
	}

	if l := values.Get("language"); l != "" {
		f.Language = &l
	}

	if s := values.Get("since"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			f.Since = &t
		}
	}

	return f
}

func scanAnalysis(s repository.Scanner) (analysis.Analysis, error) {
	var a analysis.Analysis
	err := s.Scan(
		&a.ID,
		&a.Review,
		&a.Normalized,
		&a.Sentiment,
		&a.Label,
		&a.Confidence,
		&a.Probabilities.Negative,
		&a.Probabilities.Positive,
		&a.Language,
		&a.Warning,
		&a.AnalyzedAt,
	)
	return a, err
}
