package creditcard

import (
	"fmt"

	"github.com/dmitrymomot/validaten/pkg/sanitizer"
)

// Which returns the brand of the card number. Classification only looks at
// the prefix, so invalid numbers still report their brand.
func Which(value string) (Brand, bool) {
	return match(sanitizer.RemoveSpaces(value))
}

// Validate classifies the number and checks its length and Luhn checksum.
// Only the first matching brand is considered; a length or checksum failure
// never falls back to a later brand.
func Validate(value string) error {
	number := sanitizer.RemoveSpaces(value)

	brand, ok := match(number)
	if !ok {
		return ErrUnknownBrand
	}
	if !brand.lengthValid(len(number)) {
		lo, hi := brand.Length()
		return fmt.Errorf("%w: %s expects %d-%d digits, got %d", ErrInvalidLength, brand, lo, hi, len(number))
	}
	if !Luhn(number) {
		return fmt.Errorf("%w: %s", ErrInvalidChecksum, brand)
	}
	return nil
}

// IsValid reports whether the number belongs to any known brand and passes
// its length and checksum checks.
func IsValid(value string) bool {
	return Validate(value) == nil
}

// IsValidBrand reports whether the number is valid and classified as brand.
func IsValidBrand(value string, brand Brand) bool {
	got, ok := Which(value)
	return ok && got == brand && Validate(value) == nil
}

func IsValidVisaElectron(value string) bool { return IsValidBrand(value, VisaElectron) }

func IsValidMaestro(value string) bool { return IsValidBrand(value, Maestro) }

func IsValidForbrugsforeningen(value string) bool { return IsValidBrand(value, Forbrugsforeningen) }

func IsValidDankort(value string) bool { return IsValidBrand(value, Dankort) }

func IsValidVisa(value string) bool { return IsValidBrand(value, Visa) }

func IsValidMasterCard(value string) bool { return IsValidBrand(value, MasterCard) }

func IsValidAmex(value string) bool { return IsValidBrand(value, Amex) }

func IsValidDinersClub(value string) bool { return IsValidBrand(value, DinersClub) }

func IsValidDiscover(value string) bool { return IsValidBrand(value, Discover) }

func IsValidUnionPay(value string) bool { return IsValidBrand(value, UnionPay) }

func IsValidJCB(value string) bool { return IsValidBrand(value, JCB) }
