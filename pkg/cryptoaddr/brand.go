package cryptoaddr

import "regexp"

// Brand identifies a cryptocurrency.
type Brand int

// Coins in probing order.
const (
	Bitcoin Brand = iota
	BitcoinCash
	Ethereum
	Litecoin
	Dogecoin
	Dash
	Monero
	Neo
	Ripple
)

type brandSpec struct {
	name    string
	pattern *regexp.Regexp
}

var brandTable = [...]brandSpec{
	Bitcoin:     {"Bitcoin", regexp.MustCompile(`(?i)^[13][a-km-zA-HJ-NP-Z1-9]{25,34}$`)},
	BitcoinCash: {"Bitcoin Cash", regexp.MustCompile(`(?i)^((bitcoincash|bchreg|bchtest):)?(q|p)[a-z0-9]{41}$`)},
	Ethereum:    {"Ethereum", regexp.MustCompile(`(?i)^0x[a-fA-F0-9]{40}$`)},
	Litecoin:    {"Litecoin", regexp.MustCompile(`(?i)^[LM3][a-km-zA-HJ-NP-Z1-9]{26,33}$`)},
	Dogecoin:    {"Dogecoin", regexp.MustCompile(`(?i)^D[5-9A-HJ-NP-U][1-9A-HJ-NP-Za-km-z]{32}$`)},
	Dash:        {"Dash", regexp.MustCompile(`(?i)^X[1-9A-HJ-NP-Za-km-z]{33}$`)},
	Monero:      {"Monero", regexp.MustCompile(`(?i)^4[0-9AB][1-9A-HJ-NP-Za-km-z]{93}$`)},
	Neo:         {"Neo", regexp.MustCompile(`(?i)^A[0-9a-zA-Z]{33}$`)},
	// Classic r-addresses are 25-35 base58 characters; X-addresses are 47.
	Ripple: {"Ripple", regexp.MustCompile(`^(r[1-9A-HJ-NP-Za-km-z]{24,34}|X[1-9A-HJ-NP-Za-km-z]{46})$`)},
}

// Brands returns every coin in probing order.
func Brands() []Brand {
	out := make([]Brand, len(brandTable))
	for i := range brandTable {
		out[i] = Brand(i)
	}
	return out
}

// String returns the display name, e.g. "Bitcoin Cash".
func (b Brand) String() string {
	if b < 0 || int(b) >= len(brandTable) {
		return "Unknown"
	}
	return brandTable[b].name
}

func match(address string) (Brand, bool) {
	for i := range brandTable {
		if brandTable[i].pattern.MatchString(address) {
			return Brand(i), true
		}
	}
	return -1, false
}
