package hashes

import "regexp"

// Brand identifies a digest algorithm.
type Brand int

const (
	MD5 Brand = iota
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
)

type brandSpec struct {
	name    string
	size    int
	pattern *regexp.Regexp
}

// Patterns are mutually exclusive, so the ascending order is cosmetic.
var brandTable = [...]brandSpec{
	MD5:    {"MD5", 16, regexp.MustCompile(`^(?i)[0-9a-f]{32}$`)},
	SHA1:   {"SHA1", 20, regexp.MustCompile(`^(?i)[0-9a-f]{40}$`)},
	SHA224: {"SHA224", 28, regexp.MustCompile(`^(?i)[0-9a-f]{56}$`)},
	SHA256: {"SHA256", 32, regexp.MustCompile(`^(?i)[0-9a-f]{64}$`)},
	SHA384: {"SHA384", 48, regexp.MustCompile(`^(?i)[0-9a-f]{96}$`)},
	SHA512: {"SHA512", 64, regexp.MustCompile(`^(?i)[0-9a-f]{128}$`)},
}

// Brands returns every algorithm in ascending digest size.
func Brands() []Brand {
	out := make([]Brand, len(brandTable))
	for i := range brandTable {
		out[i] = Brand(i)
	}
	return out
}

func (b Brand) String() string {
	if b < 0 || int(b) >= len(brandTable) {
		return "Unknown"
	}
	return brandTable[b].name
}

// Size returns the digest length in bytes, or 0 for an unknown brand.
func (b Brand) Size() int {
	if b < 0 || int(b) >= len(brandTable) {
		return 0
	}
	return brandTable[b].size
}

// Which returns the algorithm whose hex length matches value.
func Which(value string) (Brand, bool) {
	for i := range brandTable {
		if brandTable[i].pattern.MatchString(value) {
			return Brand(i), true
		}
	}
	return -1, false
}

// IsValid reports whether value looks like a digest of any known algorithm.
func IsValid(value string) bool {
	_, ok := Which(value)
	return ok
}

// IsBrand reports whether value looks like a digest produced by brand.
func IsBrand(value string, brand Brand) bool {
	got, ok := Which(value)
	return ok && got == brand
}

func IsMD5(value string) bool    { return IsBrand(value, MD5) }
func IsSHA1(value string) bool   { return IsBrand(value, SHA1) }
func IsSHA224(value string) bool { return IsBrand(value, SHA224) }
func IsSHA256(value string) bool { return IsBrand(value, SHA256) }
func IsSHA384(value string) bool { return IsBrand(value, SHA384) }
func IsSHA512(value string) bool { return IsBrand(value, SHA512) }
