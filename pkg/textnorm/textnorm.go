// Package textnorm converts raw Portuguese review text into the normalized token
// string the fitted vectorizer was trained on: lowercased, diacritic-free, with
// stopwords, punctuation, and domain noise tokens removed.
package textnorm

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// Punctuation mirrors the ASCII punctuation set every token is checked against.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// NoiseTokens are domain tokens that carry no sentiment for app and service reviews.
var NoiseTokens = []string{"...", "..", "etc", "diz", "ficou", "app", "aplicativo"}

// Options configures the stopword set of a Normalizer.
// StopwordsFile replaces the embedded Portuguese list when set.
// ExtraStopwords are appended to whichever list is in use.
type Options struct {
	StopwordsFile  string
	ExtraStopwords []string
}

// Normalizer removes stopwords from folded, segmented text.
// It is immutable after construction and safe for concurrent use.
type Normalizer struct {
	stopwords map[string]struct{}
}

// New builds a Normalizer from the embedded Portuguese stopword list, or from
// opts.StopwordsFile when provided. Returns ErrResourceUnavailable when the
// stopword resource cannot be read or is empty.
func New(opts Options) (*Normalizer, error) {
	base, err := loadStopwords(opts.StopwordsFile)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(base)+len(Punctuation)+len(NoiseTokens)+len(opts.ExtraStopwords))
	for _, w := range base {
		set[w] = struct{}{}
	}
	for _, r := range Punctuation {
		set[string(r)] = struct{}{}
	}
	for _, w := range NoiseTokens {
		set[w] = struct{}{}
	}
	for _, w := range opts.ExtraStopwords {
		if w = strings.TrimSpace(w); w != "" {
			set[w] = struct{}{}
		}
	}

	return &Normalizer{stopwords: set}, nil
}

// IsStopword reports whether token is removed during normalization.
func (n *Normalizer) IsStopword(token string) bool {
	_, ok := n.stopwords[token]
	return ok
}

// Normalize lowercases and folds text, splits it into word tokens, and joins the
// tokens that survive stopword removal with single spaces. Text made only of
// stopwords and punctuation yields the empty string.
func (n *Normalizer) Normalize(text string) (string, error) {
	tokens, err := n.Tokens(text)
	if err != nil {
		return "", err
	}
	return strings.Join(tokens, " "), nil
}

// Tokens returns the surviving tokens in input order.
func (n *Normalizer) Tokens(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}

	folded, err := Fold(strings.ToLower(strings.ToValidUTF8(text, "")))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNormalize, err)
	}
	folded = strings.ToLower(folded)

	kept := make([]string, 0)
	for _, tok := range segment(folded) {
		if n.IsStopword(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return kept, nil
}

// segment splits text on Unicode word boundaries. Whitespace segments are
// dropped, punctuation stays as individual tokens, and words joined by a single
// hyphen with no surrounding space are kept as one token.
func segment(text string) []string {
	var (
		tokens   []string
		adjacent bool
		hyphen   bool
	)

	seg := words.FromString(text)
	for seg.Next() {
		v := seg.Value()

		if isSpace(v) {
			if hyphen {
				tokens = append(tokens, "-")
			}
			adjacent, hyphen = false, false
			continue
		}

		if v == "-" && adjacent && !hyphen {
			hyphen, adjacent = true, false
			continue
		}

		word := isWord(v)
		if hyphen {
			hyphen = false
			if word {
				tokens[len(tokens)-1] += "-" + v
				adjacent = true
				continue
			}
			tokens = append(tokens, "-")
		}

		tokens = append(tokens, v)
		adjacent = word
	}

	if hyphen {
		tokens = append(tokens, "-")
	}

	return tokens
}

func isSpace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func loadStopwords(path string) ([]string, error) {
	data := embeddedStopwords
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
		}
		data = string(b)
	}

	list := parseStopwords(data)
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: empty stopword list", ErrResourceUnavailable)
	}
	return list, nil
}

func parseStopwords(data string) []string {
	lines := strings.Split(data, "\n")
	list := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	return list
}
