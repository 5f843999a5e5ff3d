package classifier

import (
	"fmt"
	"math"

	"github.com/JaimeStill/opiniao/pkg/vectorizer"
)

type logistic struct {
	classes   []int
	coef      []float64
	intercept float64
}

func newLogistic(m *Model) (Classifier, error) {
	if len(m.Coef) == 0 {
		return nil, fmt.Errorf("%w: logistic regression requires coef", ErrInvalid)
	}
	if !finite(m.Coef) || !finite([]float64{m.Intercept}) {
		return nil, fmt.Errorf("%w: non-finite coefficients", ErrInvalid)
	}
	return &logistic{
		classes:   m.Classes,
		coef:      m.Coef,
		intercept: m.Intercept,
	}, nil
}

func (l *logistic) Kind() string   { return KindLogisticRegression }
func (l *logistic) Classes() []int { return l.classes }
func (l *logistic) Dim() int       { return len(l.coef) }

// PredictProba returns [P(classes[0]), P(classes[1])] from the sigmoid of the
// linear decision function.
func (l *logistic) PredictProba(x vectorizer.Vector) ([]float64, error) {
	if err := checkDim(l, x); err != nil {
		return nil, err
	}

	z := x.Dot(l.coef) + l.intercept
	p := 1 / (1 + math.Exp(-z))
	return []float64{1 - p, p}, nil
}
