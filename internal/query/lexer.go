package query

import "strings"

// Tokenize lower-cases input and splits it on runs of whitespace.
//
// Line breaks are ordinary whitespace. Blank input yields an empty slice.
func Tokenize(input string) []string {
	return strings.Fields(strings.ToLower(input))
}
