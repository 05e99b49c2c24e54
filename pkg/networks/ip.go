package networks

import "net/netip"

// Version is an IP protocol version.
type Version int

const (
	IPv4 Version = 4
	IPv6 Version = 6
)

func (v Version) String() string {
	switch v {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return "Unknown"
	}
}

// Bits returns the address width in bits.
func (v Version) Bits() int {
	switch v {
	case IPv4:
		return 32
	case IPv6:
		return 128
	default:
		return 0
	}
}

func parseAddr(value string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(value)
	if err != nil || addr.Zone() != "" {
		return netip.Addr{}, false
	}
	return addr, true
}

// IsIPv4 reports whether value is a dotted-quad IPv4 address.
func IsIPv4(value string) bool {
	addr, ok := parseAddr(value)
	return ok && addr.Is4()
}

// IsIPv6 reports whether value is an IPv6 address, including IPv4-mapped forms.
func IsIPv6(value string) bool {
	addr, ok := parseAddr(value)
	return ok && addr.Is6()
}

// IsIPAny reports whether value is an IPv4 or IPv6 address.
func IsIPAny(value string) bool {
	_, ok := WhichIP(value)
	return ok
}

// WhichIP returns the IP version of value, trying IPv4 first.
func WhichIP(value string) (Version, bool) {
	switch {
	case IsIPv4(value):
		return IPv4, true
	case IsIPv6(value):
		return IPv6, true
	default:
		return 0, false
	}
}

// IsIPLoopback reports whether value is a loopback address of its own family:
// 127.0.0.0/8 for IPv4 and ::1 for IPv6. The mapped form ::ffff:127.0.0.1 is
// an IPv6 address outside ::1 and therefore not loopback.
func IsIPLoopback(value string) bool {
	addr, ok := parseAddr(value)
	if !ok || addr.Is4In6() {
		return false
	}
	return addr.IsLoopback()
}
