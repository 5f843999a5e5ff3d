package analysis

import (
	"fmt"

	"github.com/JaimeStill/opiniao/pkg/artifacts"
	"github.com/JaimeStill/opiniao/pkg/classifier"
)

// Prediction is the classifier output for one normalized text.
type Prediction struct {
	Label         int
	Confidence    float64
	Probabilities Probabilities
}

// Sentiment returns the sentiment label of the prediction.
func (p Prediction) Sentiment() string {
	if p.Label == 1 {
		return SentimentPositive
	}
	return SentimentNegative
}

// Predict vectorizes normalized text and classifies it with the bundle.
// The larger class value of the classifier is the positive class. Empty text
// is valid and produces the classifier's prior decision.
func Predict(b *artifacts.Bundle, normalized string) (Prediction, error) {
	x, err := b.Vectorizer.Transform(normalized)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: transform: %w", ErrInference, err)
	}

	class, proba, err := classifier.Predict(b.Classifier, x)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: predict: %w", ErrInference, err)
	}

	classes := b.Classifier.Classes()
	pos := 1
	if classes[0] > classes[1] {
		pos = 0
	}

	p := Prediction{
		Probabilities: Probabilities{
			Negative: proba[1-pos],
			Positive: proba[pos],
		},
	}
	if class == classes[pos] {
		p.Label = 1
		p.Confidence = p.Probabilities.Positive
	} else {
		p.Confidence = p.Probabilities.Negative
	}

	return p, nil
}
