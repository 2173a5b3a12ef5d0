// Package pdftext derives first-page text evidence from PDF documents.
package pdftext

import (
	"regexp"

	"github.com/ledongthuc/pdf"

	"github.com/bibmv/bibmv/internal/crossref"
	"github.com/bibmv/bibmv/internal/year"
)

// Evidence holds what the first page of a document reveals.
type Evidence struct {
	DOI        string
	Year       string
	AuthorHint string // leading author of an "et al." citation form
}

// Provider yields a document's first page as plain text.
type Provider interface {
	FirstPage(path string) string
}

// Reader is a Provider backed by in-process PDF parsing.
type Reader struct{}

// FirstPage returns the first page's plain text, or "" when the document
// cannot be opened or parsed. Extraction failure is not an error; it
// just produces no text evidence.
func (Reader) FirstPage(path string) string {
	f, r, err := pdf.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	if r.NumPage() < 1 {
		return ""
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

// etAlPattern matches a capitalized word of at least three letters
// (internal hyphens and apostrophes allowed) immediately followed by an
// "et al." or "and others" marker. The marker is case-insensitive, the
// author word is not.
var etAlPattern = regexp.MustCompile(`\b([A-Z][A-Za-z'-]{2,})\s+(?i:et\s+al\.?|and\s+others)`)

// Extract derives DOI, year, and author-hint evidence from first-page
// text. Empty text yields empty Evidence.
func Extract(text string) Evidence {
	ev := Evidence{
		DOI:  crossref.FindDOI(text),
		Year: year.Of(text),
	}
	if m := etAlPattern.FindStringSubmatch(text); m != nil {
		ev.AuthorHint = m[1]
	}
	return ev
}
