// Package creditcard classifies payment card numbers by brand and validates
// them against the brand's length range and the Luhn checksum.
//
// # Classification
//
// Brands are probed in a fixed order, debit brands first:
//
//	Visa Electron, Maestro, Forbrugsforeningen, Dankort,
//	Visa, MasterCard, Amex, Diners Club, Discover, UnionPay, JCB
//
// The first brand whose prefix pattern matches wins, even if a later brand
// would match as well. Visa Electron is probed before Visa, so a number
// starting with 4844 is a Visa Electron card while 4035 falls through to Visa.
// Which reports the brand regardless of whether the number is valid.
//
// # Validation
//
// Validate applies three checks in order and stops at the first pattern match:
//
//  1. the brand pattern (ErrUnknownBrand when nothing matches),
//  2. the brand's inclusive digit-count range (ErrInvalidLength),
//  3. the Luhn checksum (ErrInvalidChecksum).
//
// The boolean helpers (IsValid, IsValidVisa, ...) collapse all failures into
// false. Embedded spaces are removed before any check.
//
// # Usage
//
//	import "github.com/dmitrymomot/validaten/pkg/creditcard"
//
//	brand, ok := creditcard.Which("4035 3005 3980 4083")
//	// brand == creditcard.Visa, ok == true
//
//	if err := creditcard.Validate("5019118545073184"); errors.Is(err, creditcard.ErrInvalidChecksum) {
//	    // Dankort prefix and length, bad check digit
//	}
//
// All patterns are compiled once at package initialisation and only read
// afterwards, so every function is safe for concurrent use.
package creditcard
