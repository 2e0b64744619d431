package register

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName composes the name to NFC and collapses runs of whitespace
// into single spaces with no leading or trailing space. Extracted text often
// carries decomposed letters ("і" + U+0308 for "ї") that the rule tables
// would otherwise miss.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// fixCategory repairs a Cyrillic "С" written in place of the Latin "C".
func fixCategory(s string) string {
	s = strings.TrimSpace(s)
	if s == "С" {
		return "C"
	}
	return s
}
