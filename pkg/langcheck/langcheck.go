// Package langcheck flags review text that is unlikely to be Portuguese.
package langcheck

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Unknown is reported when no language can be determined.
const Unknown = "unknown"

var candidates = []lingua.Language{
	lingua.Portuguese,
	lingua.Spanish,
	lingua.English,
	lingua.French,
	lingua.Italian,
	lingua.German,
}

// Result describes the detected language of a text.
// Language is a lowercase ISO 639-1 code or Unknown.
type Result struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// Portuguese reports whether the detected language is Portuguese.
func (r Result) Portuguese() bool {
	return r.Language == "pt"
}

// Detector wraps a lingua detector restricted to languages commonly confused
// with Portuguese in review text. It is safe for concurrent use.
type Detector struct {
	detector  lingua.LanguageDetector
	minLength int
	threshold float64
}

// New builds a Detector from cfg. Building the lingua models is expensive and
// should happen once per process.
func New(cfg *Config) *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(candidates...).
		WithMinimumRelativeDistance(cfg.MinRelativeDistance).
		Build()

	return &Detector{
		detector:  detector,
		minLength: cfg.MinLength,
		threshold: cfg.Threshold,
	}
}

// Detect returns the most likely language of text. Text shorter than the
// configured minimum length in runes is reported as Unknown.
func (d *Detector) Detect(text string) Result {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < d.minLength {
		return Result{Language: Unknown}
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return Result{Language: Unknown}
	}

	return Result{
		Language:   strings.ToLower(lang.IsoCode639_1().String()),
		Confidence: d.detector.ComputeLanguageConfidence(text, lang),
	}
}

// Warn returns a user-facing warning when text is confidently detected as a
// language other than Portuguese, or the empty string otherwise.
func (d *Detector) Warn(r Result) string {
	if r.Language == Unknown || r.Portuguese() || r.Confidence < d.threshold {
		return ""
	}
	return "O texto não parece estar em português (idioma detectado: " + r.Language + "); o resultado pode não ser confiável."
}
