// Package validator adapts the classifier packages to a declarative,
// translation-friendly rule API.
//
// Each exported constructor returns a Rule: a lazily evaluated Check function
// paired with the ValidationError to report when the check fails. Rules are
// evaluated with Apply, which collects every failure into a ValidationErrors
// slice that satisfies the error interface.
//
// # Rule families
//
//   - card_rules.go    – payment card numbers (brand, length, Luhn)
//   - crypto_rules.go  – cryptocurrency addresses and EIP-55 checksums
//   - hash_rules.go    – hex digests identified by length
//   - network_rules.go – IP addresses, CIDR blocks, loopback and MAC addresses
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidCardBrand("card", form.Card, creditcard.Visa, creditcard.MasterCard),
//	    validator.ValidCryptoBrand("payout", form.Wallet, cryptoaddr.Bitcoin),
//	    validator.ValidIPv4CIDR("allow", form.AllowList),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field) or translate via TranslationKey
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed with errors.Is, and can be
// recovered with errors.As or ExtractValidationErrors. Every ValidationError
// carries a "validation.*" TranslationKey plus the values needed to render a
// localised message.
//
// The package holds no state; rules may be built and applied concurrently.
package validator
