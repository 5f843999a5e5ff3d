// Package vectorizer implements the transform half of a fitted bag-of-words or
// TF-IDF vectorizer. Vocabulary, IDF weights, and options are learned elsewhere
// and exported alongside the classifier; this package only maps text to the
// fixed-dimension sparse feature space those artifacts define.
package vectorizer

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

var (
	// ErrNotFitted indicates the vectorizer has no learned vocabulary.
	ErrNotFitted = errors.New("vectorizer is not fitted")
	// ErrInvalid indicates the vectorizer parameters are inconsistent.
	ErrInvalid = errors.New("invalid vectorizer")
)

// Vectorizer holds fitted parameters. Field names follow the exported artifact keys.
type Vectorizer struct {
	Vocabulary   map[string]int `json:"vocabulary" yaml:"vocabulary"`
	IDF          []float64      `json:"idf,omitempty" yaml:"idf,omitempty"`
	Norm         string         `json:"norm,omitempty" yaml:"norm,omitempty"`
	Binary       bool           `json:"binary,omitempty" yaml:"binary,omitempty"`
	SublinearTF  bool           `json:"sublinear_tf,omitempty" yaml:"sublinear_tf,omitempty"`
	Lowercase    *bool          `json:"lowercase,omitempty" yaml:"lowercase,omitempty"`
	NgramRange   [2]int         `json:"ngram_range,omitempty" yaml:"ngram_range,omitempty"`
	TokenPattern string         `json:"token_pattern,omitempty" yaml:"token_pattern,omitempty"`

	pattern *regexp.Regexp
	dim     int
}

// Vector is a sparse feature vector. Indices are strictly increasing.
type Vector struct {
	Dim     int
	Indices []int
	Values  []float64
}

// Dot returns the inner product of v with a dense weight slice of length Dim.
func (v Vector) Dot(weights []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		sum += v.Values[i] * weights[idx]
	}
	return sum
}

// NNZ returns the number of stored features.
func (v Vector) NNZ() int {
	return len(v.Indices)
}

// Prepare validates fitted state and compiles the token pattern.
// It must be called once before Transform; artifact loaders call it after decoding.
func (v *Vectorizer) Prepare() error {
	if len(v.Vocabulary) == 0 {
		return ErrNotFitted
	}

	dim := 0
	seen := make(map[int]string, len(v.Vocabulary))
	for term, idx := range v.Vocabulary {
		if idx < 0 {
			return fmt.Errorf("%w: negative index %d for %q", ErrInvalid, idx, term)
		}
		if other, ok := seen[idx]; ok {
			return fmt.Errorf("%w: index %d shared by %q and %q", ErrInvalid, idx, other, term)
		}
		seen[idx] = term
		dim = max(dim, idx+1)
	}
	if dim != len(v.Vocabulary) {
		return fmt.Errorf("%w: vocabulary indices are not dense, max index %d for %d terms", ErrInvalid, dim-1, len(v.Vocabulary))
	}

	if len(v.IDF) > 0 && len(v.IDF) != dim {
		return fmt.Errorf("%w: idf length %d, vocabulary dimension %d", ErrInvalid, len(v.IDF), dim)
	}
	for i, w := range v.IDF {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: non-finite idf at index %d", ErrInvalid, i)
		}
	}

	switch v.Norm {
	case "", "l2", "l1", "none":
	default:
		return fmt.Errorf("%w: unknown norm %q", ErrInvalid, v.Norm)
	}

	if v.NgramRange == [2]int{} {
		v.NgramRange = [2]int{1, 1}
	}
	if v.NgramRange[0] < 1 || v.NgramRange[1] < v.NgramRange[0] {
		return fmt.Errorf("%w: ngram_range %v", ErrInvalid, v.NgramRange)
	}

	if v.TokenPattern != "" {
		// Go's RE2 matches \w and \b on ASCII and has no (?u) flag
		p, err := regexp.Compile(strings.TrimPrefix(v.TokenPattern, "(?u)"))
		if err != nil {
			return fmt.Errorf("%w: token_pattern: %w", ErrInvalid, err)
		}
		v.pattern = p
	}

	v.dim = dim
	return nil
}

// Dim returns the feature dimension fixed at Prepare time.
func (v *Vectorizer) Dim() int {
	return v.dim
}

// Fitted reports whether the vectorizer carries a learned vocabulary.
func (v *Vectorizer) Fitted() bool {
	return len(v.Vocabulary) > 0
}

// Transform maps text into the learned feature space. Terms outside the vocabulary
// are ignored, so empty or fully unknown text yields an all-zero vector.
func (v *Vectorizer) Transform(text string) (Vector, error) {
	if v.dim == 0 {
		return Vector{}, ErrNotFitted
	}

	counts := make(map[int]float64)
	for _, term := range v.terms(text) {
		if idx, ok := v.Vocabulary[term]; ok {
			counts[idx]++
		}
	}

	vec := Vector{
		Dim:     v.dim,
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}

	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	slices.Sort(vec.Indices)

	for _, idx := range vec.Indices {
		tf := counts[idx]
		switch {
		case v.Binary:
			tf = 1
		case v.SublinearTF:
			tf = 1 + math.Log(tf)
		}
		if len(v.IDF) > 0 {
			tf *= v.IDF[idx]
		}
		vec.Values = append(vec.Values, tf)
	}

	normalize(vec.Values, v.Norm)
	return vec, nil
}

func (v *Vectorizer) terms(text string) []string {
	if v.Lowercase == nil || *v.Lowercase {
		text = strings.ToLower(text)
	}

	var tokens []string
	if v.pattern != nil {
		tokens = v.pattern.FindAllString(text, -1)
	} else {
		tokens = defaultTokens(text)
	}

	lo, hi := v.NgramRange[0], v.NgramRange[1]
	if lo == 1 && hi == 1 {
		return tokens
	}

	terms := make([]string, 0, len(tokens)*(hi-lo+1))
	for n := lo; n <= hi; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

// defaultTokens selects runs of two or more word characters, the default
// token pattern of the exporting toolkit.
func defaultTokens(text string) []string {
	isWordRune := func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
	}

	fields := strings.FieldsFunc(text, func(r rune) bool { return !isWordRune(r) })
	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func normalize(values []float64, norm string) {
	var total float64
	switch norm {
	case "", "l2":
		for _, x := range values {
			total += x * x
		}
		total = math.Sqrt(total)
	case "l1":
		for _, x := range values {
			total += math.Abs(x)
		}
	default:
		return
	}

	if total == 0 {
		return
	}
	for i := range values {
		values[i] /= total
	}
}
