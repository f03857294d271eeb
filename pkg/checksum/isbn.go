package checksum

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	isbn10Length = 10
	isbn13Length = 13

	// isbn13Prefix is the "Bookland" EAN prefix every ISBN-10 maps onto.
	isbn13Prefix = "978"
)

var (
	isbn10Weights = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	isbn13Weights = []int{1, 3}
)

// ValidateISBN10 reports whether code is a valid ISBN-10.
// The last character may be "X" or "x", standing for the check value 10.
func ValidateISBN10(code string) bool {
	isbn := Normalize(code)
	if len(isbn) != isbn10Length || !isDigits(isbn[:9]) {
		return false
	}
	last := isbn[9]
	if !isDigits(isbn[9:]) && last != 'X' && last != 'x' {
		return false
	}
	return strings.EqualFold(isbn10CheckChar(isbn[:9]), isbn[9:])
}

// CalculateISBN10CheckDigit returns the check character for the first 9 digits
// of an ISBN-10: "0" through "9", or "X" for the value 10.
func CalculateISBN10CheckDigit(first9 string) (string, error) {
	if len(first9) != isbn10Length-1 || !isDigits(first9) {
		return "", fmt.Errorf("%w: first 9 digits of ISBN-10", ErrInvalidFormat)
	}
	return isbn10CheckChar(first9), nil
}

func isbn10CheckChar(first9 string) string {
	check := WeightedCheckDigit(first9, isbn10Weights, 11)
	if check == 10 {
		return "X"
	}
	return strconv.Itoa(check)
}

// ValidateISBN13 reports whether code is a valid ISBN-13.
func ValidateISBN13(code string) bool {
	isbn := Normalize(code)
	if len(isbn) != isbn13Length || !isDigits(isbn) {
		return false
	}
	// A full code including its check digit has a weighted sum divisible by 10.
	return WeightedCheckDigit(isbn, isbn13Weights, 10) == 0
}

// CalculateISBN13CheckDigit returns the check digit for the first 12 digits of an ISBN-13.
func CalculateISBN13CheckDigit(first12 string) (string, error) {
	if len(first12) != isbn13Length-1 || !isDigits(first12) {
		return "", fmt.Errorf("%w: first 12 digits of ISBN-13", ErrInvalidFormat)
	}
	return strconv.Itoa(WeightedCheckDigit(first12, isbn13Weights, 10)), nil
}

// ConvertISBN10To13 converts a valid ISBN-10 into its 978-prefixed ISBN-13 form.
// The result contains digits only.
func ConvertISBN10To13(code string) (string, error) {
	if !ValidateISBN10(code) {
		return "", fmt.Errorf("%w: %q is not a valid ISBN-10", ErrInvalidFormat, code)
	}

	first12 := isbn13Prefix + Normalize(code)[:9]
	check, err := CalculateISBN13CheckDigit(first12)
	if err != nil {
		return "", err
	}
	return first12 + check, nil
}

// ConvertISBN13To10 converts a valid 978-prefixed ISBN-13 into its ISBN-10 form.
// ISBN-13 codes with any other prefix (e.g. 979) have no ISBN-10 equivalent.
func ConvertISBN13To10(code string) (string, error) {
	if !ValidateISBN13(code) {
		return "", fmt.Errorf("%w: %q is not a valid ISBN-13", ErrInvalidFormat, code)
	}

	isbn := Normalize(code)
	if !strings.HasPrefix(isbn, isbn13Prefix) {
		return "", fmt.Errorf("%w: only %s-prefixed ISBN-13 has an ISBN-10 form", ErrInvalidFormat, isbn13Prefix)
	}

	first9 := isbn[len(isbn13Prefix) : isbn13Length-1]
	check, err := CalculateISBN10CheckDigit(first9)
	if err != nil {
		return "", err
	}
	return first9 + check, nil
}
