package creditcard

import "errors"

var (
	// ErrUnknownBrand is returned when no brand pattern matches the number.
	ErrUnknownBrand = errors.New("creditcard: unknown card brand")

	// ErrInvalidLength is returned when the digit count is outside the brand's range.
	ErrInvalidLength = errors.New("creditcard: invalid card number length")

	// ErrInvalidChecksum is returned when the number fails the Luhn check.
	ErrInvalidChecksum = errors.New("creditcard: luhn checksum mismatch")
)
