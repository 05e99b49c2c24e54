package validator

import (
	"slices"

	"github.com/dmitrymomot/validaten/pkg/cryptoaddr"
)

// ValidCryptoAddress validates that value has the shape of any supported
// cryptocurrency address.
func ValidCryptoAddress(field, value string) Rule {
	return newRule(field,
		"must be a valid cryptocurrency address",
		"validation.crypto_address",
		func() bool { return cryptoaddr.IsValid(value) },
		nil,
	)
}

// ValidCryptoBrand validates that value is an address of one of the accepted coins.
func ValidCryptoBrand(field, value string, brands ...cryptoaddr.Brand) Rule {
	return newRule(field,
		"must be a valid "+joinNames(brands)+" address",
		"validation.crypto_address_brand",
		func() bool {
			brand, ok := cryptoaddr.Which(value)
			return ok && slices.Contains(brands, brand)
		},
		map[string]any{"brands": joinNames(brands)},
	)
}

// ValidEthereumChecksum validates an Ethereum address including its EIP-55 casing.
func ValidEthereumChecksum(field, value string) Rule {
	return newRule(field,
		"must be a checksummed Ethereum address",
		"validation.ethereum_checksum",
		func() bool { return cryptoaddr.IsEthereumChecksum(value) },
		nil,
	)
}
