package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/JaimeStill/opiniao/pkg/textnorm"
)

type service struct {
	normalizer    *textnorm.Normalizer
	loader        BundleLoader
	language      LanguageDetector
	recorder      Recorder
	logger        *slog.Logger
	maxReviewSize int64
}

// New creates the analysis System. A nil normalizer means the stopword
// resource failed to load; every Analyze call then returns ErrUnavailable.
// language and recorder are optional.
func New(
	normalizer *textnorm.Normalizer,
	loader BundleLoader,
	language LanguageDetector,
	recorder Recorder,
	logger *slog.Logger,
	maxReviewSize int64,
) System {
	return &service{
		normalizer:    normalizer,
		loader:        loader,
		language:      language,
		recorder:      recorder,
		logger:        logger.With("system", "analysis"),
		maxReviewSize: maxReviewSize,
	}
}

func (s *service) Handler(maxReviewSize int64) *Handler {
	return NewHandler(s, s.logger, maxReviewSize)
}

func (s *service) Analyze(ctx context.Context, review string) (*Analysis, error) {
	if strings.TrimSpace(review) == "" {
		return nil, ErrEmptyReview
	}
	if s.maxReviewSize > 0 {
		if n := int64(utf8.RuneCountInString(review)); n > s.maxReviewSize {
			return nil, fmt.Errorf("%w: %d characters, limit %d", ErrReviewTooLarge, n, s.maxReviewSize)
		}
	}
	if s.normalizer == nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, textnorm.ErrResourceUnavailable)
	}

	bundle, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	normalized, err := s.normalizer.Normalize(review)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInference, err)
	}

	pred, err := Predict(bundle, normalized)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		ID:            uuid.New(),
		Review:        review,
		Normalized:    normalized,
		Sentiment:     pred.Sentiment(),
		Label:         pred.Label,
		Confidence:    pred.Confidence,
		Probabilities: pred.Probabilities,
		AnalyzedAt:    time.Now().UTC(),
	}

	if s.language != nil {
		result := s.language.Detect(review)
		a.Language = result.Language
		a.Warning = s.language.Warn(result)
	}

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, a); err != nil {
			s.logger.Warn("analysis not recorded", "id", a.ID, "error", err)
		}
	}

	s.logger.Info(
		"review analyzed",
		"id", a.ID,
		"sentiment", a.Sentiment,
		"confidence", a.Confidence,
		"tokens", len(strings.Fields(normalized)),
	)

	return a, nil
}

func (s *service) Status(ctx context.Context) Status {
	st := Status{
		Language: s.language != nil,
		History:  s.recorder != nil,
	}

	if s.normalizer == nil {
		st.Error = textnorm.ErrResourceUnavailable.Error()
		return st
	}

	bundle, err := s.loader.Load(ctx)
	if err != nil {
		st.Error = err.Error()
		return st
	}

	st.Ready = true
	st.Source = bundle.Source
	st.LoadedAt = &bundle.LoadedAt
	st.Vocabulary = bundle.Vectorizer.Dim()
	st.Classifier = bundle.Classifier.Kind()
	return st
}
