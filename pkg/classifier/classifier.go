// Package classifier evaluates fitted binary linear classifiers over sparse
// feature vectors and reports class probabilities as the model emits them.
package classifier

import (
	"errors"
	"fmt"
	"math"

	"github.com/JaimeStill/opiniao/pkg/vectorizer"
)

// Supported model kinds.
const (
	KindLogisticRegression = "logistic_regression"
	KindMultinomialNB      = "multinomial_nb"
)

var (
	// ErrInvalid indicates the classifier parameters are malformed.
	ErrInvalid = errors.New("invalid classifier")
	// ErrDimension indicates a feature vector does not match the model dimension.
	ErrDimension = errors.New("feature dimension mismatch")
)

// Classifier maps a feature vector to per-class probabilities.
// Probabilities are ordered like Classes.
type Classifier interface {
	Kind() string
	Classes() []int
	Dim() int
	PredictProba(x vectorizer.Vector) ([]float64, error)
}

// Model is the decoded form of an exported classifier artifact.
// LogisticRegression uses Coef and Intercept; MultinomialNB uses
// ClassLogPrior and FeatureLogProb.
type Model struct {
	Kind           string      `json:"kind" yaml:"kind"`
	Classes        []int       `json:"classes" yaml:"classes"`
	Coef           []float64   `json:"coef,omitempty" yaml:"coef,omitempty"`
	Intercept      float64     `json:"intercept,omitempty" yaml:"intercept,omitempty"`
	ClassLogPrior  []float64   `json:"class_log_prior,omitempty" yaml:"class_log_prior,omitempty"`
	FeatureLogProb [][]float64 `json:"feature_log_prob,omitempty" yaml:"feature_log_prob,omitempty"`
}

// Build validates the model and returns the matching Classifier.
func (m *Model) Build() (Classifier, error) {
	if len(m.Classes) != 2 {
		return nil, fmt.Errorf("%w: expected 2 classes, got %d", ErrInvalid, len(m.Classes))
	}
	if m.Classes[0] == m.Classes[1] {
		return nil, fmt.Errorf("%w: duplicate class %d", ErrInvalid, m.Classes[0])
	}

	switch m.Kind {
	case KindLogisticRegression, "":
		return newLogistic(m)
	case KindMultinomialNB:
		return newMultinomialNB(m)
	default:
		return nil, fmt.Errorf("%w: unsupported kind %q", ErrInvalid, m.Kind)
	}
}

// Predict returns the class with the highest probability along with the full
// probability slice. Ties resolve to the first class.
func Predict(c Classifier, x vectorizer.Vector) (int, []float64, error) {
	proba, err := c.PredictProba(x)
	if err != nil {
		return 0, nil, err
	}

	best := 0
	for i := 1; i < len(proba); i++ {
		if proba[i] > proba[best] {
			best = i
		}
	}
	return c.Classes()[best], proba, nil
}

func checkDim(c Classifier, x vectorizer.Vector) error {
	if x.Dim != c.Dim() {
		return fmt.Errorf("%w: vector %d, model %d", ErrDimension, x.Dim, c.Dim())
	}
	return nil
}

func finite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
