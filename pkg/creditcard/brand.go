package creditcard

import "regexp"

// Brand identifies a payment card network.
type Brand int

// Brands in probing order. Debit brands come first so that their narrower
// prefixes take precedence over the broad credit prefixes.
const (
	VisaElectron Brand = iota
	Maestro
	Forbrugsforeningen
	Dankort
	Visa
	MasterCard
	Amex
	DinersClub
	Discover
	UnionPay
	JCB
)

type brandSpec struct {
	name    string
	pattern *regexp.Regexp
	minLen  int
	maxLen  int
}

// brandTable is indexed by Brand; its order is the probing order.
var brandTable = [...]brandSpec{
	VisaElectron:       {"Visa Electron", regexp.MustCompile(`^4(026|17500|405|508|844|91[37])`), 16, 16},
	Maestro:            {"Maestro", regexp.MustCompile(`^(5(018|0[23]|[68])|6(39|7))`), 12, 19},
	Forbrugsforeningen: {"Forbrugsforeningen", regexp.MustCompile(`^600`), 16, 16},
	Dankort:            {"Dankort", regexp.MustCompile(`^5019`), 16, 16},
	Visa:               {"Visa", regexp.MustCompile(`^4`), 13, 16},
	MasterCard:         {"MasterCard", regexp.MustCompile(`^(5[1-5]|2[2-7])`), 16, 16},
	Amex:               {"Amex", regexp.MustCompile(`^3[47]`), 15, 15},
	DinersClub:         {"Diners Club", regexp.MustCompile(`^3[0689]`), 13, 16},
	Discover:           {"Discover", regexp.MustCompile(`^6([045]|22)`), 16, 16},
	UnionPay:           {"UnionPay", regexp.MustCompile(`^(62|88)`), 16, 19},
	JCB:                {"JCB", regexp.MustCompile(`^35`), 16, 16},
}

// Brands returns every brand in probing order.
func Brands() []Brand {
	out := make([]Brand, len(brandTable))
	for i := range brandTable {
		out[i] = Brand(i)
	}
	return out
}

func (b Brand) valid() bool {
	return b >= 0 && int(b) < len(brandTable)
}

// String returns the display name, e.g. "Visa Electron".
func (b Brand) String() string {
	if !b.valid() {
		return "Unknown"
	}
	return brandTable[b].name
}

// Length returns the inclusive digit-count range accepted for the brand.
// Unknown brands report 0, 0.
func (b Brand) Length() (minLen, maxLen int) {
	if !b.valid() {
		return 0, 0
	}
	return brandTable[b].minLen, brandTable[b].maxLen
}

func (b Brand) lengthValid(n int) bool {
	lo, hi := b.Length()
	return n >= lo && n <= hi
}

// match returns the first brand whose pattern matches number.
func match(number string) (Brand, bool) {
	for i := range brandTable {
		if brandTable[i].pattern.MatchString(number) {
			return Brand(i), true
		}
	}
	return -1, false
}
