package checksum

// WeightedCheckDigit returns the check value that makes the weighted sum of
// digits plus the check value divisible by modulus.
//
// Weights are applied cyclically: for weights [1, 3] the digits are multiplied
// by 1, 3, 1, 3, ... from left to right. The result is always in [0, modulus),
// so with modulus 11 the value 10 is a valid check value (rendered as "X" in
// ISBN-10).
//
// digits must contain only ASCII decimal digits, weights must be non-empty and
// modulus must be positive. Callers validate their input before calling.
func WeightedCheckDigit(digits string, weights []int, modulus int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weights[i%len(weights)]
	}
	return (modulus - sum%modulus) % modulus
}

// isDigits reports whether s is non-empty and made of ASCII decimal digits only.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
