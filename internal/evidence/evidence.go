// Package evidence defines the per-document candidate model and the
// priority resolver that merges candidates into a rename proposal.
package evidence

// Source identifies where a candidate value came from.
type Source string

// Surname evidence sources.
const (
	SourceLookup          Source = "lookup"
	SourceMetadataAuthor  Source = "metadata-author"
	SourceTextEtAl        Source = "text-etal"
	SourceMetadataCreator Source = "metadata-creator"
)

// Year evidence sources.
const (
	SourceLookupYear   Source = "lookup-year"
	SourceMetadataDate Source = "metadata-date"
	SourceTextYear     Source = "text-year"
	SourceFilenameYear Source = "filename-year"
)

// SurnamePriority is the fixed resolution order for surname evidence,
// most trusted first.
var SurnamePriority = []Source{
	SourceLookup,
	SourceMetadataAuthor,
	SourceTextEtAl,
	SourceMetadataCreator,
}

// YearPriority is the fixed resolution order for year evidence, most
// trusted first. The filename is deliberately last: it is the one source
// derived from the thing being renamed.
var YearPriority = []Source{
	SourceLookupYear,
	SourceMetadataDate,
	SourceTextYear,
	SourceFilenameYear,
}

// SurnameCandidate is one source's opinion about the first author's
// surname. Normalized and Junk are filled in during resolution.
type SurnameCandidate struct {
	Source     Source
	Raw        string
	Normalized string
	Junk       bool
}

// YearCandidate is one source's opinion about the publication year.
// Year is the normalized 4-digit form, "" when the raw text yields none.
type YearCandidate struct {
	Source Source
	Raw    string
	Year   string
}

// Proposal is a resolved (surname, year) pair together with the sources
// that won resolution. A Proposal is never constructed with an empty
// surname or year.
type Proposal struct {
	Surname       string
	Year          string
	SurnameSource Source
	YearSource    Source
}

// Filename derives the canonical filename for the given extension
// (including its leading dot, possibly empty).
func (p Proposal) Filename(ext string) string {
	return p.Surname + "-" + p.Year + ext
}
