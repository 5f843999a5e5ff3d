package textnorm

import (
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold strips diacritical marks and transliterates what remains to ASCII
// ("ação" -> "acao", "nº" -> "no", "ħ" -> "h"). Compatibility forms are
// decomposed first, so ordinal indicators and ligatures fold to their letters.
// Transliteration may produce uppercase; callers lowercase afterwards.
func Fold(s string) (string, error) {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return "", err
	}
	return unidecode.Unidecode(out), nil
}
