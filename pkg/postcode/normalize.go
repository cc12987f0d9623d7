package postcode

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// inwardLen is the fixed length of the inward code.
const inwardLen = 3

// Normalize removes every space character and upper-cases letters using full
// Unicode case mapping. Other whitespace and punctuation are kept.
func Normalize(code string) string {
	// cases.Caser is stateful, so each call gets its own.
	return cases.Upper(language.Und).String(strings.ReplaceAll(code, " ", ""))
}

// Split divides a normalized code into its outward and inward parts. The
// inward part is the last three characters; inputs of three characters or
// fewer yield an empty outward part.
func Split(normalized string) (outward, inward string) {
	runes := []rune(normalized)
	if len(runes) <= inwardLen {
		return "", normalized
	}
	cut := len(runes) - inwardLen
	return string(runes[:cut]), string(runes[cut:])
}
