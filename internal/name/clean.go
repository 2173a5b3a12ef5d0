// Package name normalizes author strings into canonical surname tokens
// and classifies tokens unlikely to be real surnames.
package name

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes to NFD and drops combining marks, so that
// "Muñoz" folds to "Munoz" before the ASCII filter runs.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Clean folds s into a canonical token: diacritics stripped, only ASCII
// letters, digits, '_' and '-' kept, lowercased, runs of '-'/'_' collapsed
// to a single '-', leading and trailing separators trimmed.
// Clean is idempotent: Clean(Clean(s)) == Clean(s).
func Clean(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	for _, r := range folded {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == '-' || r == '_':
			pendingSep = true
		}
	}
	return b.String()
}
