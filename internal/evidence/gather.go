package evidence

import (
	"context"
	"path/filepath"

	"github.com/bibmv/bibmv/internal/metadata"
	"github.com/bibmv/bibmv/internal/pdftext"
)

// TextProvider yields a document's first page as plain text.
type TextProvider interface {
	FirstPage(path string) string
}

// LookupService resolves a DOI to a raw author name and year.
type LookupService interface {
	Lookup(ctx context.Context, doi string) (author, year string)
}

// Gatherer assembles one document's candidates from the configured
// collaborators. A nil Lookup disables network evidence entirely.
type Gatherer struct {
	Metadata metadata.Provider
	Text     TextProvider
	Lookup   LookupService
}

// Gather produces the full candidate sets for the document at path.
// Sources that yield nothing still appear as candidates with empty raw
// strings; the resolver discards them.
func (g *Gatherer) Gather(ctx context.Context, path string) ([]SurnameCandidate, []YearCandidate) {
	var meta metadata.Fields
	if g.Metadata != nil {
		meta = g.Metadata.Query(ctx, path)
	}

	var text pdftext.Evidence
	if g.Text != nil {
		text = pdftext.Extract(g.Text.FirstPage(path))
	}

	doi := meta.DOI
	if doi == "" {
		doi = text.DOI
	}
	var lookupAuthor, lookupYear string
	if g.Lookup != nil && doi != "" {
		lookupAuthor, lookupYear = g.Lookup.Lookup(ctx, doi)
	}

	surnames := []SurnameCandidate{
		{Source: SourceLookup, Raw: lookupAuthor},
		{Source: SourceMetadataAuthor, Raw: meta.Author},
		{Source: SourceTextEtAl, Raw: text.AuthorHint},
		{Source: SourceMetadataCreator, Raw: meta.Creator},
	}
	years := []YearCandidate{
		{Source: SourceLookupYear, Raw: lookupYear},
		{Source: SourceMetadataDate, Raw: meta.Year},
		{Source: SourceTextYear, Raw: text.Year},
		{Source: SourceFilenameYear, Raw: filepath.Base(path)},
	}
	return surnames, years
}
