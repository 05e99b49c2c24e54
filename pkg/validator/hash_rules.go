package validator

import (
	"slices"

	"github.com/dmitrymomot/validaten/pkg/hashes"
)

// ValidHash validates that value is hex of a known digest length.
func ValidHash(field, value string) Rule {
	return newRule(field,
		"must be a hex-encoded MD5 or SHA digest",
		"validation.hash",
		func() bool { return hashes.IsValid(value) },
		nil,
	)
}

// ValidHashAlgorithm validates that value is hex of the length produced by one
// of the accepted algorithms.
func ValidHashAlgorithm(field, value string, algorithms ...hashes.Brand) Rule {
	return newRule(field,
		"must be a hex-encoded "+joinNames(algorithms)+" digest",
		"validation.hash_algorithm",
		func() bool {
			brand, ok := hashes.Which(value)
			return ok && slices.Contains(algorithms, brand)
		},
		map[string]any{"algorithms": joinNames(algorithms)},
	)
}
