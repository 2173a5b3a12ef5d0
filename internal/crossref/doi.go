// Package crossref finds DOIs in text and resolves them against the
// CrossRef works endpoint.
package crossref

import (
	"regexp"
	"strings"
)

// doiPattern matches DOIs: a 10.NNNN registrant code (4-9 digits)
// followed by a suffix of DOI-safe characters.
var doiPattern = regexp.MustCompile(`(?i)\b10\.\d{4,9}/[-._;()/:a-z0-9]+`)

// FindDOI returns the first DOI-shaped substring of text, with trailing
// punctuation trimmed, or "" when none is found.
func FindDOI(text string) string {
	for _, m := range doiPattern.FindAllString(text, -1) {
		m = strings.TrimRight(m, ".,;:)")
		if validDOI(m) {
			return m
		}
	}
	return ""
}

// IsDOI reports whether s looks like a bare DOI.
func IsDOI(s string) bool {
	return strings.HasPrefix(s, "10.") && validDOI(s)
}

// validDOI performs basic shape validation on a candidate DOI.
func validDOI(doi string) bool {
	if len(doi) < 10 {
		return false
	}
	slash := strings.Index(doi, "/")
	return slash != -1 && slash < len(doi)-1
}

// NormalizeDOI strips URL and label prefixes and lowercases, so DOIs from
// different evidence sources compare equal.
func NormalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "doi.org/")
	doi = strings.TrimPrefix(doi, "DOI:")
	doi = strings.TrimPrefix(doi, "doi:")
	return strings.ToLower(doi)
}
