package name

import (
	"regexp"
	"strings"
)

// authorDelimiter matches the boundary after the first author in a
// multi-author string: comma, semicolon, ampersand, or the word "and".
var authorDelimiter = regexp.MustCompile(`(?i)[,;&]|\band\b`)

// SurnameFrom extracts a normalized surname token from a free-form author
// string. It keeps only the segment before the first author delimiter,
// takes that segment's last whitespace-separated word, and normalizes it.
//
// Known limitations (shared with splitting in bibliographic importers):
// multi-part surnames (van der Waals) reduce to their final word, and
// "Last, First" order is handled only because the comma cuts the string.
func SurnameFrom(author string) string {
	segment := author
	if loc := authorDelimiter.FindStringIndex(author); loc != nil {
		segment = author[:loc[0]]
	}
	fields := strings.Fields(segment)
	if len(fields) == 0 {
		return ""
	}
	return Clean(fields[len(fields)-1])
}
