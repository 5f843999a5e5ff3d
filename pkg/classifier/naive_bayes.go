package classifier

import (
	"fmt"
	"math"

	"github.com/JaimeStill/opiniao/pkg/vectorizer"
)

type multinomialNB struct {
	classes        []int
	classLogPrior  []float64
	featureLogProb [][]float64
}

func newMultinomialNB(m *Model) (Classifier, error) {
	if len(m.ClassLogPrior) != len(m.Classes) {
		return nil, fmt.Errorf("%w: class_log_prior length %d", ErrInvalid, len(m.ClassLogPrior))
	}
	if !finite(m.ClassLogPrior) {
		return nil, fmt.Errorf("%w: non-finite class_log_prior", ErrInvalid)
	}
	if len(m.FeatureLogProb) != len(m.Classes) {
		return nil, fmt.Errorf("%w: feature_log_prob rows %d", ErrInvalid, len(m.FeatureLogProb))
	}

	dim := len(m.FeatureLogProb[0])
	if dim == 0 {
		return nil, fmt.Errorf("%w: empty feature_log_prob", ErrInvalid)
	}
	for i, row := range m.FeatureLogProb {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: feature_log_prob row %d has %d columns, want %d", ErrInvalid, i, len(row), dim)
		}
		if !finite(row) {
			return nil, fmt.Errorf("%w: non-finite feature_log_prob row %d", ErrInvalid, i)
		}
	}

	return &multinomialNB{
		classes:        m.Classes,
		classLogPrior:  m.ClassLogPrior,
		featureLogProb: m.FeatureLogProb,
	}, nil
}

func (nb *multinomialNB) Kind() string   { return KindMultinomialNB }
func (nb *multinomialNB) Classes() []int { return nb.classes }
func (nb *multinomialNB) Dim() int       { return len(nb.featureLogProb[0]) }

// PredictProba normalizes the joint log likelihood of each class with log-sum-exp.
func (nb *multinomialNB) PredictProba(x vectorizer.Vector) ([]float64, error) {
	if err := checkDim(nb, x); err != nil {
		return nil, err
	}

	jll := make([]float64, len(nb.classes))
	for c := range nb.classes {
		jll[c] = nb.classLogPrior[c] + x.Dot(nb.featureLogProb[c])
	}

	peak := math.Inf(-1)
	for _, v := range jll {
		peak = max(peak, v)
	}

	var sum float64
	for _, v := range jll {
		sum += math.Exp(v - peak)
	}
	logNorm := peak + math.Log(sum)

	proba := make([]float64, len(jll))
	for c, v := range jll {
		proba[c] = math.Exp(v - logNorm)
	}
	return proba, nil
}
