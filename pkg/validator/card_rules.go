package validator

import (
	"slices"

	"github.com/dmitrymomot/validaten/pkg/creditcard"
)

// ValidCreditCard validates that value is a card number of a known brand with
// a valid length and Luhn checksum. Spaces between digit groups are allowed.
func ValidCreditCard(field, value string) Rule {
	return newRule(field,
		"must be a valid card number",
		"validation.credit_card",
		func() bool { return creditcard.IsValid(value) },
		nil,
	)
}

// ValidCardBrand validates that value is a valid card number issued by one of
// the accepted brands.
func ValidCardBrand(field, value string, brands ...creditcard.Brand) Rule {
	return newRule(field,
		"must be a valid "+joinNames(brands)+" card number",
		"validation.credit_card_brand",
		func() bool {
			brand, ok := creditcard.Which(value)
			return ok && slices.Contains(brands, brand) && creditcard.IsValid(value)
		},
		map[string]any{"brands": joinNames(brands)},
	)
}
