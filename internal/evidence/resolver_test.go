package evidence

import (
	"testing"

	"github.com/bibmv/bibmv/internal/name"
)

func TestResolvePriorityOrder(t *testing.T) {
	surnames := []SurnameCandidate{
		{Source: SourceMetadataCreator, Raw: "Zoe Creator"},
		{Source: SourceLookup, Raw: "Doe"},
		{Source: SourceMetadataAuthor, Raw: "Jane Smith"},
		{Source: SourceTextEtAl, Raw: "Kleinberg"},
	}
	years := []YearCandidate{
		{Source: SourceFilenameYear, Raw: "draft-2015.pdf"},
		{Source: SourceLookupYear, Raw: "2021"},
		{Source: SourceMetadataDate, Raw: "2019"},
		{Source: SourceTextYear, Raw: "2018"},
	}

	p, ok := Resolve(surnames, years, name.NewVocabulary())
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if p.Surname != "doe" || p.SurnameSource != SourceLookup {
		t.Errorf("surname = %q from %s, want doe from lookup", p.Surname, p.SurnameSource)
	}
	if p.Year != "2021" || p.YearSource != SourceLookupYear {
		t.Errorf("year = %q from %s, want 2021 from lookup-year", p.Year, p.YearSource)
	}
}

func TestResolveJunkNeverOverridesLowerPriority(t *testing.T) {
	surnames := []SurnameCandidate{
		{Source: SourceLookup, Raw: ""},
		{Source: SourceMetadataAuthor, Raw: "Adobe Acrobat 9.0"},
		{Source: SourceTextEtAl, Raw: "Kleinberg"},
		{Source: SourceMetadataCreator, Raw: "Microsoft Word"},
	}
	years := []YearCandidate{
		{Source: SourceMetadataDate, Raw: "2019:05:02"},
	}

	p, ok := Resolve(surnames, years, name.NewVocabulary())
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if p.Surname != "kleinberg" || p.SurnameSource != SourceTextEtAl {
		t.Errorf("surname = %q from %s, want kleinberg from text-etal", p.Surname, p.SurnameSource)
	}
}

func TestResolveLowerPriorityNeverOverridesValid(t *testing.T) {
	surnames := []SurnameCandidate{
		{Source: SourceLookup, Raw: "Doe"},
		{Source: SourceMetadataAuthor, Raw: "Jane Smith"},
	}
	years := []YearCandidate{
		{Source: SourceLookupYear, Raw: "2021"},
		{Source: SourceMetadataDate, Raw: "2019"},
	}

	p, _ := Resolve(surnames, years, name.NewVocabulary())
	if p.Surname != "doe" {
		t.Errorf("metadata must not override a valid lookup surname, got %q", p.Surname)
	}
	if p.Year != "2021" {
		t.Errorf("metadata must not override a valid lookup year, got %q", p.Year)
	}
}

func TestResolveNoSurnameSurvivor(t *testing.T) {
	surnames := []SurnameCandidate{
		{Source: SourceMetadataAuthor, Raw: ""},
		{Source: SourceMetadataCreator, Raw: "Arbortext Publishing Engine"},
	}
	years := []YearCandidate{
		{Source: SourceMetadataDate, Raw: "2019"},
	}

	if _, ok := Resolve(surnames, years, name.NewVocabulary()); ok {
		t.Error("all-junk surnames must fail resolution")
	}
}

func TestResolveNoYearSurvivor(t *testing.T) {
	surnames := []SurnameCandidate{
		{Source: SourceMetadataAuthor, Raw: "Jane Smith"},
	}
	years := []YearCandidate{
		{Source: SourceMetadataDate, Raw: "no date"},
		{Source: SourceFilenameYear, Raw: "scan001.pdf"},
	}

	if _, ok := Resolve(surnames, years, name.NewVocabulary()); ok {
		t.Error("missing year must fail resolution")
	}
}

func TestResolveFilenameYearFallback(t *testing.T) {
	surnames := []SurnameCandidate{
		{Source: SourceMetadataAuthor, Raw: "Jane Smith"},
	}
	years := []YearCandidate{
		{Source: SourceLookupYear, Raw: ""},
		{Source: SourceMetadataDate, Raw: ""},
		{Source: SourceTextYear, Raw: ""},
		{Source: SourceFilenameYear, Raw: "smith 2016 draft.pdf"},
	}

	p, ok := Resolve(surnames, years, name.NewVocabulary())
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if p.Year != "2016" || p.YearSource != SourceFilenameYear {
		t.Errorf("year = %q from %s, want 2016 from filename-year", p.Year, p.YearSource)
	}
}

func TestResolveEmptyCandidates(t *testing.T) {
	if _, ok := Resolve(nil, nil, name.NewVocabulary()); ok {
		t.Error("no candidates must fail resolution")
	}
}

func TestProposalFilename(t *testing.T) {
	p := Proposal{Surname: "smith", Year: "2019"}
	if got := p.Filename(".pdf"); got != "smith-2019.pdf" {
		t.Errorf("Filename = %q", got)
	}
	if got := p.Filename(""); got != "smith-2019" {
		t.Errorf("Filename without extension = %q", got)
	}
}
