// Package metadata extracts raw document metadata via the exiftool binary.
package metadata

import (
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bibmv/bibmv/internal/crossref"
	"github.com/bibmv/bibmv/internal/year"
)

// DefaultBin is the exiftool binary looked up on PATH.
const DefaultBin = "exiftool"

// Fields holds the raw metadata evidence for one document. A failed
// extraction is represented by the zero value, never by an error.
type Fields struct {
	Author  string
	Creator string
	Year    string // derived from CreateDate, falling back to ModifyDate
	DOI     string // first DOI-shaped value in the Identifier/DOI fields
}

// Provider yields raw metadata fields for a document.
type Provider interface {
	Query(ctx context.Context, path string) Fields
}

// ExifTool is a Provider that shells out to exiftool.
type ExifTool struct {
	Bin string // binary name or path; DefaultBin when empty
}

// queried limits exiftool's output to the fields the engine consumes.
var queried = []string{"-Author", "-Creator", "-CreateDate", "-ModifyDate", "-Identifier", "-DOI"}

// Query runs exiftool for a single document. Any failure (missing
// binary, non-zero exit, unparsable output) yields empty Fields; a
// broken metadata tool must never fail the document.
func (e *ExifTool) Query(ctx context.Context, path string) Fields {
	bin := e.Bin
	if bin == "" {
		bin = DefaultBin
	}
	args := append(append([]string{"-j"}, queried...), path)
	out, err := exec.CommandContext(ctx, bin, args...).Output()
	if err != nil {
		return Fields{}
	}
	return parse(out)
}

// record is one entry of exiftool's -j output.
type record struct {
	Author     scalar `json:"Author"`
	Creator    scalar `json:"Creator"`
	CreateDate scalar `json:"CreateDate"`
	ModifyDate scalar `json:"ModifyDate"`
	Identifier scalar `json:"Identifier"`
	DOI        scalar `json:"DOI"`
}

// parse decodes exiftool -j output into Fields. Malformed JSON yields
// empty Fields.
func parse(out []byte) Fields {
	var records []record
	if err := json.Unmarshal(out, &records); err != nil || len(records) == 0 {
		return Fields{}
	}
	r := records[0]

	f := Fields{
		Author:  strings.TrimSpace(string(r.Author)),
		Creator: strings.TrimSpace(string(r.Creator)),
	}
	f.Year = year.Of(string(r.CreateDate))
	if f.Year == "" {
		f.Year = year.Of(string(r.ModifyDate))
	}
	f.DOI = crossref.FindDOI(string(r.Identifier))
	if f.DOI == "" {
		f.DOI = crossref.FindDOI(string(r.DOI))
	}
	return f
}

// scalar tolerates exiftool emitting numbers (or null) where a string is
// expected, such as numeric Creator fields.
type scalar string

func (s *scalar) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*s = scalar(t)
	case float64:
		*s = scalar(strconv.FormatFloat(t, 'f', -1, 64))
	case bool:
		*s = scalar(strconv.FormatBool(t))
	default:
		*s = ""
	}
	return nil
}
