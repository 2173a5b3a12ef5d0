package evidence

import (
	"github.com/bibmv/bibmv/internal/name"
	"github.com/bibmv/bibmv/internal/year"
)

// Classifier decides whether a normalized token is unlikely to be a real
// surname. *name.Vocabulary satisfies it; tests may inject constants.
type Classifier interface {
	IsJunk(token string) bool
}

// Resolve merges all candidates under the fixed priority orders into a
// single Proposal. Every raw surname is normalized and junk-checked,
// every raw year is run through the year grammar, then each list is
// walked in priority order and the first surviving candidate wins. The
// second return value is false when either list has no survivor; that is
// an expected outcome for documents with insufficient evidence, not an
// error.
func Resolve(surnames []SurnameCandidate, years []YearCandidate, junk Classifier) (Proposal, bool) {
	surnameBySource := make(map[Source]SurnameCandidate, len(surnames))
	for _, c := range surnames {
		c.Normalized = name.SurnameFrom(c.Raw)
		c.Junk = c.Normalized == "" || junk.IsJunk(c.Normalized)
		surnameBySource[c.Source] = c
	}

	yearBySource := make(map[Source]YearCandidate, len(years))
	for _, c := range years {
		c.Year = year.Of(c.Raw)
		yearBySource[c.Source] = c
	}

	var p Proposal
	for _, src := range SurnamePriority {
		if c, ok := surnameBySource[src]; ok && !c.Junk {
			p.Surname = c.Normalized
			p.SurnameSource = src
			break
		}
	}
	for _, src := range YearPriority {
		if c, ok := yearBySource[src]; ok && c.Year != "" {
			p.Year = c.Year
			p.YearSource = src
			break
		}
	}

	if p.Surname == "" || p.Year == "" {
		return Proposal{}, false
	}
	return p, true
}
