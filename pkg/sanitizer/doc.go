// Package sanitizer provides small normalisation helpers for the raw strings
// handed to the classifiers.
//
// Card numbers and crypto addresses are commonly written with space
// separators ("4035 3005 3980 4083"). RemoveSpaces strips them before
// matching. NormalizeCreditCard goes further and drops every non-digit, which
// is what MaskCreditCard and FormatCreditCard use to render card numbers for
// logs and terminal output without leaking the full PAN.
//
// # Usage
//
//	import "github.com/dmitrymomot/validaten/pkg/sanitizer"
//
//	digits := sanitizer.RemoveSpaces("4035 3005 3980 4083") // "4035300539804083"
//	masked := sanitizer.MaskCreditCard(digits)             // "************4083"
//
// # Error handling
//
// None of the helpers returns an error. They always fall back to a safe result,
// usually the original input or an empty string.
//
// The package has no global mutable state and is safe for concurrent use.
package sanitizer
