package networks

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCIDR checks that value is "<address>/<prefix length>" for the given
// IP version. The prefix length must be an unsigned decimal no larger than
// the address width. Host bits are not required to be zero.
func ParseCIDR(value string, version Version) error {
	prefix, suffix, found := strings.Cut(value, "/")
	if !found || suffix == "" {
		return ErrMissingPrefixLength
	}

	bits, err := strconv.ParseUint(suffix, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPrefixLength, suffix)
	}
	if bits > uint64(version.Bits()) {
		return fmt.Errorf("%w: /%d exceeds %d bits", ErrPrefixLengthOutOfRange, bits, version.Bits())
	}

	var valid bool
	switch version {
	case IPv4:
		valid = IsIPv4(prefix)
	case IPv6:
		valid = IsIPv6(prefix)
	}
	if !valid {
		return fmt.Errorf("%w: %q is not %s", ErrInvalidAddress, prefix, version)
	}
	return nil
}

// IsIPv4CIDR reports whether value is an IPv4 address with a /0-/32 prefix.
func IsIPv4CIDR(value string) bool {
	return ParseCIDR(value, IPv4) == nil
}

// IsIPv6CIDR reports whether value is an IPv6 address with a /0-/128 prefix.
func IsIPv6CIDR(value string) bool {
	return ParseCIDR(value, IPv6) == nil
}
