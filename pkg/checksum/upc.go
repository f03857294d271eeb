package checksum

import (
	"fmt"
	"strconv"
)

const upcLength = 12

var upcWeights = []int{3, 1}

// ValidateUPC reports whether code is a valid 12-digit UPC-A code.
// Digit groups may be separated by spaces or hyphens, e.g. "0 36000 29145 2".
func ValidateUPC(code string) bool {
	upc := Normalize(code)
	if len(upc) != upcLength || !isDigits(upc) {
		return false
	}
	return upcCheckDigit(upc[:upcLength-1]) == upc[upcLength-1:]
}

// CalculateUPCCheckDigit returns the check digit for the first 11 digits of a UPC-A code.
func CalculateUPCCheckDigit(first11 string) (string, error) {
	if len(first11) != upcLength-1 || !isDigits(first11) {
		return "", fmt.Errorf("%w: first 11 digits of UPC-A", ErrInvalidFormat)
	}
	return upcCheckDigit(first11), nil
}

func upcCheckDigit(first11 string) string {
	return strconv.Itoa(WeightedCheckDigit(first11, upcWeights, 10))
}
