package sanitizer

import (
	"strings"

	"golang.org/x/text/width"
)

// Separators are the characters allowed between digit groups of a printed code.
const Separators = "- "

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// RemoveChars removes all occurrences of the specified characters from a string.
func RemoveChars(s string, chars string) string {
	for _, char := range chars {
		s = strings.ReplaceAll(s, string(char), "")
	}
	return s
}

// StripSeparators removes hyphens and spaces anywhere in the string.
func StripSeparators(s string) string {
	return RemoveChars(s, Separators)
}

// FoldWidth maps full-width and ideographic forms to their narrow ASCII
// equivalents, e.g. "９７８－０" becomes "978-0" and U+3000 becomes a space.
// Digits of other scripts, such as Arabic-Indic "٠١٢", are left unchanged.
func FoldWidth(s string) string {
	return width.Narrow.String(s)
}
