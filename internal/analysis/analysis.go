// Package analysis implements the review sentiment domain. It runs raw review
// text through the normalizer, the fitted vectorizer, and the fitted
// classifier, and reports the predicted sentiment with its confidence.
package analysis

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
)

// Probabilities holds the classifier probability of each sentiment.
// The values are reported as the classifier emitted them and sum to 1.
type Probabilities struct {
	Negative float64 `json:"negative"`
	Positive float64 `json:"positive"`
}

// Analysis is the outcome of analyzing a single review.
// Label is 1 for positive and 0 for negative. Confidence is the probability
// of the predicted sentiment.
type Analysis struct {
	ID            uuid.UUID     `json:"id"`
	Review        string        `json:"review"`
	Normalized    string        `json:"normalized"`
	Sentiment     string        `json:"sentiment"`
	Label         int           `json:"label"`
	Confidence    float64       `json:"confidence"`
	Probabilities Probabilities `json:"probabilities"`
	Language      string        `json:"language,omitempty"`
	Warning       string        `json:"warning,omitempty"`
	AnalyzedAt    time.Time     `json:"analyzed_at"`
}

// Positive reports whether the review was classified as positive.
func (a *Analysis) Positive() bool {
	return a.Label == 1
}

// AnalyzeCommand is the request body of the analyze endpoint.
type AnalyzeCommand struct {
	Review string `json:"review"`
}

// Status describes whether the service can analyze reviews.
type Status struct {
	Ready      bool       `json:"ready"`
	Source     string     `json:"source,omitempty"`
	LoadedAt   *time.Time `json:"loaded_at,omitempty"`
	Vocabulary int        `json:"vocabulary,omitempty"`
	Classifier string     `json:"classifier,omitempty"`
	Language   bool       `json:"language_check"`
	History    bool       `json:"history"`
	Error      string     `json:"error,omitempty"`
}
