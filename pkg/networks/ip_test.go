package networks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validaten/pkg/networks"
)

func TestIsIPv4(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		for _, ip := range []string{"10.10.10.1", "100.128.10.132", "100.17.5.119", "127.0.0.1", "0.0.0.0", "255.255.255.255"} {
			assert.True(t, networks.IsIPv4(ip), ip)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		for _, ip := range []string{"", "12.110.105.256", "10.2.13", "256.10.10.1000", "256.0.0.1", "::1", "::ffff:127.0.0.1", " 127.0.0.1", "127.0.0.1 ", "010.0.0.1"} {
			assert.False(t, networks.IsIPv4(ip), ip)
		}
	})
}

func TestIsIPv6(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		for _, ip := range []string{
			"2041:0000:140F::875B:131B",
			"::ffff:127.0.0.1",
			"::ffff:7f00:1",
			"::1",
			"2041:0:140F::875B:131B",
			"fcb7:360a:242a:2d0d:392e:bc22:a45:3573",
			"3b8f:473b:d1a7:ba09:d28c:3cd:7f46:c95e",
			"0000:0000:0000:0000:0000:FFFF:2BE0:9E74",
			"::ffff:43.224.158.116",
		} {
			assert.True(t, networks.IsIPv6(ip), ip)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		for _, ip := range []string{"", "2002:::1234::", "127.0.0.1", "fe80::1%eth0", "12345::", "[::1]"} {
			assert.False(t, networks.IsIPv6(ip), ip)
		}
	})
}

func TestIsIPLoopback(t *testing.T) {
	t.Parallel()

	assert.True(t, networks.IsIPLoopback("127.0.0.1"))
	assert.True(t, networks.IsIPLoopback("127.255.255.254"))
	assert.True(t, networks.IsIPLoopback("::1"))

	assert.False(t, networks.IsIPLoopback("10.0.0.1"))
	assert.False(t, networks.IsIPLoopback("10.122.1.130"))
	assert.False(t, networks.IsIPLoopback("::ffff:7f00:1"))
	assert.False(t, networks.IsIPLoopback("::ffff:127.0.0.1"))
	assert.False(t, networks.IsIPLoopback("::"))
	assert.False(t, networks.IsIPLoopback("localhost"))
	assert.False(t, networks.IsIPLoopback(""))
}

func TestWhichIP(t *testing.T) {
	t.Parallel()

	v, ok := networks.WhichIP("::1")
	assert.True(t, ok)
	assert.Equal(t, networks.IPv6, v)
	assert.Equal(t, "IPv6", v.String())

	v, ok = networks.WhichIP("127.0.0.1")
	assert.True(t, ok)
	assert.Equal(t, networks.IPv4, v)
	assert.Equal(t, "IPv4", v.String())

	_, ok = networks.WhichIP("2002:::1234::")
	assert.False(t, ok)
}

func TestIsIPAny(t *testing.T) {
	t.Parallel()

	assert.True(t, networks.IsIPAny("127.0.0.1"))
	assert.True(t, networks.IsIPAny("::1"))
	assert.True(t, networks.IsIPAny("::ffff:127.0.0.1"))
	assert.False(t, networks.IsIPAny("example.com"))
	assert.False(t, networks.IsIPAny(""))
}

func TestVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 32, networks.IPv4.Bits())
	assert.Equal(t, 128, networks.IPv6.Bits())
	assert.Equal(t, 0, networks.Version(5).Bits())
	assert.Equal(t, "Unknown", networks.Version(5).String())
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	inputs := []string{"127.0.0.1", "::1", "::ffff:127.0.0.1", "10.0.0.0/8", "10.0.0.0/33", "00:1A:2b:3C:4d:5E", "256.0.0.1", ""}
	for _, in := range inputs {
		v1, ok1 := networks.WhichIP(in)
		v2, ok2 := networks.WhichIP(in)
		assert.Equal(t, v1, v2)
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, networks.IsIPLoopback(in), networks.IsIPLoopback(in))
		assert.Equal(t, networks.IsIPv4CIDR(in), networks.IsIPv4CIDR(in))
		assert.Equal(t, networks.IsIPv6CIDR(in), networks.IsIPv6CIDR(in))
		assert.Equal(t, networks.IsMACAddress(in), networks.IsMACAddress(in))
	}
}
