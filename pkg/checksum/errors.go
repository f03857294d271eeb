package checksum

import "errors"

// ErrInvalidFormat is returned when a calculator or converter receives input
// that is not the fixed-length numeric code it requires.
var ErrInvalidFormat = errors.New("improper format")
