package checksum

import "github.com/dmitrymomot/checkdigit/pkg/sanitizer"

var normalize = sanitizer.Compose(
	sanitizer.FoldWidth,
	sanitizer.StripSeparators,
	sanitizer.Trim,
)

// Normalize prepares a code string for length and format checks.
// It folds full-width characters to ASCII, removes hyphens and spaces
// anywhere in the string and trims surrounding whitespace.
// Characters are never reordered and Normalize(Normalize(s)) == Normalize(s).
func Normalize(code string) string {
	return normalize(code)
}
