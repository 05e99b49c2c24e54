package cryptoaddr

import "github.com/dmitrymomot/validaten/pkg/sanitizer"

// Which returns the first coin whose address pattern matches value.
func Which(value string) (Brand, bool) {
	return match(sanitizer.RemoveSpaces(value))
}

// IsValid reports whether value matches any known address pattern.
func IsValid(value string) bool {
	_, ok := Which(value)
	return ok
}

// IsBrand reports whether value is classified as brand.
func IsBrand(value string, brand Brand) bool {
	got, ok := Which(value)
	return ok && got == brand
}

func IsBitcoin(value string) bool { return IsBrand(value, Bitcoin) }

func IsBitcoinCash(value string) bool { return IsBrand(value, BitcoinCash) }

func IsEthereum(value string) bool { return IsBrand(value, Ethereum) }

func IsLitecoin(value string) bool { return IsBrand(value, Litecoin) }

func IsDogecoin(value string) bool { return IsBrand(value, Dogecoin) }

func IsDash(value string) bool { return IsBrand(value, Dash) }

func IsMonero(value string) bool { return IsBrand(value, Monero) }

func IsNeo(value string) bool { return IsBrand(value, Neo) }

func IsRipple(value string) bool { return IsBrand(value, Ripple) }
