package validator

import "github.com/dmitrymomot/validaten/pkg/networks"

// ValidIPv4 validates that value is a valid IPv4 address.
func ValidIPv4(field, value string) Rule {
	return newRule(field, "must be a valid IPv4 address", "validation.ipv4",
		func() bool { return networks.IsIPv4(value) }, nil)
}

// ValidIPv6 validates that value is a valid IPv6 address.
func ValidIPv6(field, value string) Rule {
	return newRule(field, "must be a valid IPv6 address", "validation.ipv6",
		func() bool { return networks.IsIPv6(value) }, nil)
}

// ValidIP validates that value is a valid IP address (IPv4 or IPv6).
func ValidIP(field, value string) Rule {
	return newRule(field, "must be a valid IP address", "validation.ip",
		func() bool { return networks.IsIPAny(value) }, nil)
}

// ValidIPv4CIDR validates that value is an IPv4 address with a /0-/32 prefix length.
func ValidIPv4CIDR(field, value string) Rule {
	return newRule(field, "must be a valid IPv4 CIDR block", "validation.ipv4_cidr",
		func() bool { return networks.IsIPv4CIDR(value) }, nil)
}

// ValidIPv6CIDR validates that value is an IPv6 address with a /0-/128 prefix length.
func ValidIPv6CIDR(field, value string) Rule {
	return newRule(field, "must be a valid IPv6 CIDR block", "validation.ipv6_cidr",
		func() bool { return networks.IsIPv6CIDR(value) }, nil)
}

// LoopbackIP validates that value is a loopback address of its own family.
func LoopbackIP(field, value string) Rule {
	return newRule(field, "must be a loopback IP address", "validation.loopback_ip",
		func() bool { return networks.IsIPLoopback(value) }, nil)
}

// ValidMAC validates that value is a MAC address.
// Supports formats: AA:BB:CC:DD:EE:FF, AA-BB-CC-DD-EE-FF, AA.BB.CC.DD.EE.FF.
func ValidMAC(field, value string) Rule {
	return newRule(field, "must be a valid MAC address", "validation.mac",
		func() bool { return networks.IsMACAddress(value) }, nil)
}
