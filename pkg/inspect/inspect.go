// Package inspect runs every classifier over a single input and reports all
// categories that recognised it.
//
// Within a category the classifier's own first-match rule applies. Across
// categories every match is reported, because the same text can legitimately
// be, for example, a 32-digit card-like number and an MD5 digest.
package inspect

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/validaten/pkg/creditcard"
	"github.com/dmitrymomot/validaten/pkg/cryptoaddr"
	"github.com/dmitrymomot/validaten/pkg/hashes"
	"github.com/dmitrymomot/validaten/pkg/networks"
)

// Category names a classifier family.
type Category string

const (
	CategoryCard   Category = "card"
	CategoryCrypto Category = "crypto"
	CategoryHash   Category = "hash"
	CategoryIP     Category = "ip"
	CategoryCIDR   Category = "cidr"
	CategoryMAC    Category = "mac"
)

// Match is one category's verdict on the input.
type Match struct {
	Category Category `json:"category"`
	Brand    string   `json:"brand"`
	Valid    bool     `json:"valid"`
	// Detail says why a recognised card, CIDR block or Ethereum address is
	// invalid, or flags a loopback IP.
	Detail string `json:"detail,omitempty"`
}

// Report lists the matches for Input in the order card, crypto, hash, ip, cidr, mac.
type Report struct {
	Input   string  `json:"input"`
	Matches []Match `json:"matches"`
}

// Recognized reports whether any category matched.
func (r Report) Recognized() bool {
	return len(r.Matches) > 0
}

// Valid reports whether at least one match is also valid.
func (r Report) Valid() bool {
	for _, m := range r.Matches {
		if m.Valid {
			return true
		}
	}
	return false
}

// Inspect classifies value with every classifier.
func Inspect(value string) Report {
	report := Report{Input: value, Matches: []Match{}}

	if brand, ok := creditcard.Which(value); ok {
		m := Match{Category: CategoryCard, Brand: brand.String(), Valid: true}
		if err := creditcard.Validate(value); err != nil {
			m.Valid = false
			m.Detail = err.Error()
		}
		report.Matches = append(report.Matches, m)
	}

	if brand, ok := cryptoaddr.Which(value); ok {
		m := Match{Category: CategoryCrypto, Brand: brand.String(), Valid: true}
		if brand == cryptoaddr.Ethereum && !cryptoaddr.IsEthereumChecksum(value) {
			m.Valid = false
			m.Detail = "EIP-55 checksum mismatch"
		}
		report.Matches = append(report.Matches, m)
	}

	if brand, ok := hashes.Which(value); ok {
		report.Matches = append(report.Matches, Match{Category: CategoryHash, Brand: brand.String(), Valid: true})
	}

	if version, ok := networks.WhichIP(value); ok {
		m := Match{Category: CategoryIP, Brand: version.String(), Valid: true}
		if networks.IsIPLoopback(value) {
			m.Detail = "loopback"
		}
		report.Matches = append(report.Matches, m)
	}

	if m, ok := inspectCIDR(value); ok {
		report.Matches = append(report.Matches, m)
	}

	if networks.IsMACAddress(value) {
		report.Matches = append(report.Matches, Match{Category: CategoryMAC, Brand: "MAC", Valid: true})
	}

	return report
}

// inspectCIDR reports a CIDR match when value has an address of either
// family before its "/". An out-of-range prefix length is reported as an
// invalid match rather than no match.
func inspectCIDR(value string) (Match, bool) {
	for _, version := range []networks.Version{networks.IPv4, networks.IPv6} {
		err := networks.ParseCIDR(value, version)
		if err == nil {
			return Match{Category: CategoryCIDR, Brand: version.String(), Valid: true}, true
		}
		if errors.Is(err, networks.ErrPrefixLengthOutOfRange) || errors.Is(err, networks.ErrInvalidPrefixLength) {
			if prefix, _, _ := strings.Cut(value, "/"); isVersion(prefix, version) {
				return Match{Category: CategoryCIDR, Brand: version.String(), Detail: err.Error()}, true
			}
		}
	}
	return Match{}, false
}

func isVersion(addr string, version networks.Version) bool {
	if version == networks.IPv4 {
		return networks.IsIPv4(addr)
	}
	return networks.IsIPv6(addr)
}
