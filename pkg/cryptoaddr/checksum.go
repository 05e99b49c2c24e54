package cryptoaddr

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dmitrymomot/validaten/pkg/sanitizer"
)

// IsEthereumChecksum reports whether value is an Ethereum address whose
// letter casing agrees with EIP-55. Addresses written entirely in lower or
// upper case carry no checksum and are accepted.
func IsEthereumChecksum(value string) bool {
	address := sanitizer.RemoveSpaces(value)
	if !brandTable[Ethereum].pattern.MatchString(address) || !common.IsHexAddress(address) {
		return false
	}

	body := address[2:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}
	return common.HexToAddress(address).Hex() == "0x"+body
}
