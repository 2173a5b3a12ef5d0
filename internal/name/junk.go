package name

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// builtinTerms mark tokens that came from software, typesetting tools,
// publishers, or institutions rather than people. Matching is by
// substring on the normalized (lowercase) token. This is configuration,
// not logic: LoadVocabulary merges user terms over this set.
var builtinTerms = []string{
	// PDF producers and typesetting tools
	"acrobat", "adobe", "distiller", "ghostscript", "pscript",
	"arbortext", "aptara", "antenna", "formatter", "engine",
	"latex", "pdftex", "pdflatex", "xelatex", "luatex", "bibtex",
	"miktex", "texlive", "dvips",
	"microsoft", "word", "powerpoint", "office", "writer",
	"libreoffice", "openoffice", "quartz",
	"abbyy", "finereader", "itext", "foxit", "nitro", "primopdf",
	// Publishers
	"elsevier", "springer", "wiley", "ieee", "mdpi", "plos",
	"routledge", "blackwell",
	// Organizational and placeholder terms
	"universit", "institut", "laborator", "publish", "publication",
	"press", "corporation", "gmbh", "copyright",
	"unknown", "anonymous", "untitled",
}

// versionPattern catches bare version strings (9.0, 2.1.3) after
// normalization has turned their dots into hyphens.
var versionPattern = regexp.MustCompile(`^\d+(-\d+)+$`)

// Vocabulary is the junk classifier's term and pattern table.
type Vocabulary struct {
	terms    []string
	patterns []*regexp.Regexp
}

// NewVocabulary returns the built-in vocabulary extended with extra terms.
// Terms are normalized with Clean so that matching stays consistent with
// the tokens being classified.
func NewVocabulary(extra ...string) *Vocabulary {
	v := &Vocabulary{
		patterns: []*regexp.Regexp{versionPattern},
	}
	seen := make(map[string]bool)
	for _, t := range append(append([]string{}, builtinTerms...), extra...) {
		t = Clean(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		v.terms = append(v.terms, t)
	}
	sort.Strings(v.terms)
	return v
}

// vocabFile is the YAML shape of a user vocabulary file.
type vocabFile struct {
	Terms []string `yaml:"terms"`
}

// LoadVocabulary returns the built-in vocabulary merged with terms from
// the YAML file at path. An empty path yields just the built-in set.
func LoadVocabulary(path string) (*Vocabulary, error) {
	if path == "" {
		return NewVocabulary(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary %s: %w", path, err)
	}
	var f vocabFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing vocabulary %s: %w", path, err)
	}
	return NewVocabulary(f.Terms...), nil
}

// Terms returns the effective term list, sorted, for display.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// IsJunk reports whether a normalized token is unlikely to be a real
// surname. A token is junk if it is empty or shorter than 2 characters,
// if digits exceed 60% of its length, if its first character is not an
// ASCII letter, or if it contains any vocabulary term or pattern.
func (v *Vocabulary) IsJunk(token string) bool {
	if len(token) < 2 {
		return true
	}
	digits := 0
	for _, r := range token {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if float64(digits) > 0.6*float64(len(token)) {
		return true
	}
	first := token[0]
	if !(first >= 'a' && first <= 'z') && !(first >= 'A' && first <= 'Z') {
		return true
	}
	lower := strings.ToLower(token)
	for _, term := range v.terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	for _, p := range v.patterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}
