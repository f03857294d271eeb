package validator

import "github.com/dmitrymomot/checkdigit/pkg/checksum"

// Format names reported in ValidationError.Format and used as translation key suffixes.
const (
	FormatISBN10 = "isbn10"
	FormatISBN13 = "isbn13"
	FormatISBN   = "isbn"
	FormatUPC    = "upc"
)

// ValidISBN10 validates that a string is an ISBN-10 with a correct check character.
func ValidISBN10(field, value string) Rule {
	return productCodeRule(field, value, FormatISBN10, checksum.ValidateISBN10, "must be a valid ISBN-10")
}

// ValidISBN13 validates that a string is an ISBN-13 with a correct check digit.
func ValidISBN13(field, value string) Rule {
	return productCodeRule(field, value, FormatISBN13, checksum.ValidateISBN13, "must be a valid ISBN-13")
}

// ValidISBN accepts either ISBN format, picked by length.
func ValidISBN(field, value string) Rule {
	return productCodeRule(field, value, FormatISBN, checksum.Validate, "must be a valid ISBN-10 or ISBN-13")
}

// ValidUPC validates that a string is a 12-digit UPC-A code with a correct check digit.
func ValidUPC(field, value string) Rule {
	return productCodeRule(field, value, FormatUPC, checksum.ValidateUPC, "must be a valid UPC-A code")
}

func productCodeRule(field, value, format string, valid func(string) bool, message string) Rule {
	return Rule{
		Check: func() bool {
			return valid(value)
		},
		Error: newCodeError(field, format, value, message),
	}
}
