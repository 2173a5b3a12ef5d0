// Package year extracts plausible publication years from free text.
package year

import "regexp"

// yearPattern matches publication years 1980-2099 as whole words.
var yearPattern = regexp.MustCompile(`\b(19[89]\d|20\d\d)\b`)

// copyrightPattern matches a copyright marker immediately followed by a
// 4-digit number. The number is deliberately not re-checked against the
// year grammar; a copyright notice is a low-confidence last resort.
var copyrightPattern = regexp.MustCompile(`(?i)(?:©|\(c\)|copyright)\s*(\d{4})\b`)

// Of returns the first plausible 4-digit publication year in text, or ""
// when none is found. Texts without a direct match get a second pass for
// a copyright notice.
func Of(text string) string {
	if m := yearPattern.FindString(text); m != "" {
		return m
	}
	if m := copyrightPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
