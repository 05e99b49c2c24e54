package networks

import "regexp"

// Six hex octets; separators may be ":", "-" or "." and are not required to agree.
var macRegex = regexp.MustCompile(`^(?:[0-9a-fA-F]{2}[:.-]){5}[0-9a-fA-F]{2}$`)

// IsMACAddress reports whether value is a 48-bit MAC address written as six
// two-digit hex groups.
func IsMACAddress(value string) bool {
	return macRegex.MatchString(value)
}
