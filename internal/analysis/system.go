package analysis

import (
	"context"

	"github.com/JaimeStill/opiniao/pkg/artifacts"
	"github.com/JaimeStill/opiniao/pkg/langcheck"
)

// System defines the public contract for review analysis.
type System interface {
	Handler(maxReviewSize int64) *Handler

	// Analyze classifies a single review. Empty reviews return ErrEmptyReview
	// and oversized reviews ErrReviewTooLarge without running the model.
	Analyze(ctx context.Context, review string) (*Analysis, error)

	// Status reports whether the model is loaded and which features are on.
	Status(ctx context.Context) Status
}

// BundleLoader provides the fitted vectorizer and classifier.
type BundleLoader interface {
	Load(ctx context.Context) (*artifacts.Bundle, error)
}

// LanguageDetector detects the language of raw review text.
type LanguageDetector interface {
	Detect(text string) langcheck.Result
	Warn(r langcheck.Result) string
}

// Recorder persists completed analyses.
type Recorder interface {
	Record(ctx context.Context, a *Analysis) error
}
