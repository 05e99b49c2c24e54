package networks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validaten/pkg/networks"
)

func TestIsIPv4CIDR(t *testing.T) {
	t.Parallel()

	for _, cidr := range []string{"10.0.0.0/8", "10.0.0.0/32", "10.0.0.0/0", "192.168.1.17/24"} {
		assert.True(t, networks.IsIPv4CIDR(cidr), cidr)
	}
	for _, cidr := range []string{"10.0.0.0/33", "270.0.0.1000/24", "10.0.0.0", "10.0.0.0/", "/24", "10.0.0.0/x", "10.0.0.0/-1", "10.0.0.0/+8", "10.0.0.0/8/8", "::1/64", ""} {
		assert.False(t, networks.IsIPv4CIDR(cidr), cidr)
	}
}

func TestIsIPv6CIDR(t *testing.T) {
	t.Parallel()

	for _, cidr := range []string{"2001:0DB8:1234::/48", "2001:0DB8:12a4::/128", "::/0", "::1/128"} {
		assert.True(t, networks.IsIPv6CIDR(cidr), cidr)
	}
	for _, cidr := range []string{"2005:0DB8:1234::/130", "2002:::1234::/48", "2001:db8::", "2001:db8::/", "10.0.0.0/8", ""} {
		assert.False(t, networks.IsIPv6CIDR(cidr), cidr)
	}
}

func TestParseCIDR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		version networks.Version
		err     error
	}{
		{"valid ipv4", "10.0.0.0/24", networks.IPv4, nil},
		{"valid ipv6", "2001:db8::/32", networks.IPv6, nil},
		{"no separator", "10.0.0.0", networks.IPv4, networks.ErrMissingPrefixLength},
		{"empty suffix", "10.0.0.0/", networks.IPv4, networks.ErrMissingPrefixLength},
		{"non numeric suffix", "10.0.0.0/abc", networks.IPv4, networks.ErrInvalidPrefixLength},
		{"ipv4 suffix too large", "10.0.0.0/33", networks.IPv4, networks.ErrPrefixLengthOutOfRange},
		{"ipv6 suffix too large", "2005:0DB8:1234::/130", networks.IPv6, networks.ErrPrefixLengthOutOfRange},
		{"bad ipv4 prefix", "270.0.0.1000/24", networks.IPv4, networks.ErrInvalidAddress},
		{"wrong family", "::1/32", networks.IPv4, networks.ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := networks.ParseCIDR(tt.value, tt.version)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
