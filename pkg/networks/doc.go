// Package networks validates the textual form of IP addresses, CIDR blocks and
// MAC addresses.
//
// Address parsing is delegated to net/netip. IPv4-mapped IPv6 text such as
// "::ffff:127.0.0.1" is an IPv6 address. Zoned IPv6 addresses ("fe80::1%eth0")
// are rejected. CIDR strings are split on the first "/"; a missing or empty
// prefix length makes the block invalid.
//
// All functions take the input exactly as given and return false for anything
// they cannot parse. ParseCIDR exposes the reason through sentinel errors:
//
//	if err := networks.ParseCIDR("10.0.0.0/33", networks.IPv4); errors.Is(err, networks.ErrPrefixLengthOutOfRange) {
//	    // ...
//	}
package networks
