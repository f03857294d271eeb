package checksum

// Validate reports whether code is a valid ISBN of either format.
// The format is picked by normalized length: 10 for ISBN-10, 13 for ISBN-13.
// Any other length, including a 12-digit UPC-A, is reported as invalid.
func Validate(code string) bool {
	switch len(Normalize(code)) {
	case isbn10Length:
		return ValidateISBN10(code)
	case isbn13Length:
		return ValidateISBN13(code)
	default:
		return false
	}
}
