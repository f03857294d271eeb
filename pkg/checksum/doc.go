// Package checksum validates and derives check digits for standardized product
// codes: ISBN-10, ISBN-13 and UPC-A.
//
// Every format is a specialization of one primitive, WeightedCheckDigit, which
// multiplies each digit by a weight drawn cyclically from a fixed sequence and
// reduces the sum by a modulus. The per-format rules only differ in the weight
// table, the modulus and how the resulting check value is rendered.
//
// # Usage
//
//	import "github.com/dmitrymomot/checkdigit/pkg/checksum"
//
//	checksum.ValidateISBN10("1-55404-295-X") // true
//	checksum.ValidateISBN13("978-1-56619-909-4") // true
//	checksum.ValidateUPC("0 36000 29145 2") // true
//	checksum.Validate("0136091814") // true, dispatched by length
//
//	isbn13, err := checksum.ConvertISBN10To13("0-201-88295-7")
//	// isbn13 == "9780201882957"
//
//	digit, err := checksum.CalculateUPCCheckDigit("08716214312")
//	// digit == "7"
//
// # Normalization
//
// Validators and converters accept codes with hyphens, spaces and surrounding
// whitespace. Full-width digits and separators are folded to ASCII first; digits
// of other scripts are not recognized. See Normalize. The Calculate* functions
// take bare digit strings and do not normalize their input.
//
// # Error Handling
//
// Validators never fail: malformed input simply reports false, so arbitrary
// untrusted strings can be probed safely. Calculators and converters require
// well-formed input and return an error wrapping ErrInvalidFormat otherwise:
//
//	if _, err := checksum.CalculateISBN13CheckDigit("978-1-86197-"); errors.Is(err, checksum.ErrInvalidFormat) {
//	    // not exactly 12 decimal digits
//	}
//
// Validate only recognizes ISBN-10 and ISBN-13. A 12-digit UPC-A code must be
// checked with ValidateUPC.
//
// # Thread Safety
//
// The package holds no mutable state. All functions are safe for concurrent use.
package checksum
