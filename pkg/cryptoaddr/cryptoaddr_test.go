package cryptoaddr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validaten/pkg/cryptoaddr"
)

const (
	bitcoinAddr     = "1GiWxH6PzSSmbdcK72XfGpqhjSb6nae6h9"
	bitcoinCashAddr = "qppjlghjlwg6tgxv7ffhvs43rlul0kpp4c0shk4dr6"
	ethereumAddr    = "0xaae47eae4ddd4877e0ae0bc780cfaee3cc3b52cb"
	litecoinAddr    = "LQ4i7FLNhfCC9GXw682mS1NzvVKbtJAFZq"
	dogecoinAddr    = "D6K2nqqQKycTucCSFSHhpiig4yQ6NPQRf9"
	dashAddr        = "XqLYPDTADW6EYuQmTcEAx81o8EHTKwqTK8"
	moneroAddr      = "41gYNjXMeXaTmZFVv645A1HRVoA637cXFGbDdLV8Gn5hLvfxfRLKigUTvm2HVZhBzDVPeGpDy71qxASTpRFgepDwLexA8Ti"
	neoAddr         = "AeHauBkGkHPTxh4PEUhNr7WRgivmcdCRnR"
	rippleAddr      = "rUocf1ixKzTuEe34kmVhRvGqNCofY1NJzV"
)

func TestWhich(t *testing.T) {
	t.Parallel()

	tests := []struct {
		address string
		brand   cryptoaddr.Brand
		name    string
	}{
		{bitcoinAddr, cryptoaddr.Bitcoin, "Bitcoin"},
		{"3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", cryptoaddr.Bitcoin, "Bitcoin"},
		{bitcoinCashAddr, cryptoaddr.BitcoinCash, "Bitcoin Cash"},
		{"bitcoincash:" + bitcoinCashAddr, cryptoaddr.BitcoinCash, "Bitcoin Cash"},
		{ethereumAddr, cryptoaddr.Ethereum, "Ethereum"},
		{litecoinAddr, cryptoaddr.Litecoin, "Litecoin"},
		{dogecoinAddr, cryptoaddr.Dogecoin, "Dogecoin"},
		{dashAddr, cryptoaddr.Dash, "Dash"},
		{moneroAddr, cryptoaddr.Monero, "Monero"},
		{neoAddr, cryptoaddr.Neo, "Neo"},
		{rippleAddr, cryptoaddr.Ripple, "Ripple"},
		{"XVLhHMPHU98es4dbozjVtdWzVrDjtV18pX8yuPT7y4xaEHi", cryptoaddr.Ripple, "Ripple"},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			t.Parallel()
			brand, ok := cryptoaddr.Which(tt.address)
			require.True(t, ok)
			assert.Equal(t, tt.brand, brand)
			assert.Equal(t, tt.name, brand.String())
		})
	}

	t.Run("unrecognised", func(t *testing.T) {
		t.Parallel()
		for _, address := range []string{"LQ4i7FLNbtJAFZq", "", "hello world", "0x1234", "r", "rabc"} {
			_, ok := cryptoaddr.Which(address)
			assert.False(t, ok, "address should not classify: %q", address)
		}
	})

	t.Run("strips spaces", func(t *testing.T) {
		t.Parallel()
		brand, ok := cryptoaddr.Which(" 0xaae47eae4ddd4877e0ae0bc780cf aee3cc3b52cb ")
		require.True(t, ok)
		assert.Equal(t, cryptoaddr.Ethereum, brand)
	})
}

func TestRippleRequiresFullShape(t *testing.T) {
	t.Parallel()

	assert.True(t, cryptoaddr.IsRipple(rippleAddr))
	assert.True(t, cryptoaddr.IsRipple("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"))

	// A leading "r" alone is not enough.
	assert.False(t, cryptoaddr.IsRipple("random text"))
	assert.False(t, cryptoaddr.IsRipple("rUocf1ixKzTuEe34kmVhRvGqNCofY1NJzV0"))
	// "0", "O", "I" and "l" are not base58.
	assert.False(t, cryptoaddr.IsRipple("rUocf1ixKzTuEe34kmVhRvGqNCofY1NJz0"))
}

func TestFirstMatchWins(t *testing.T) {
	t.Parallel()

	// "3..." satisfies both the Bitcoin and Litecoin shapes.
	address := "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy"
	assert.True(t, cryptoaddr.IsBitcoin(address))
	assert.False(t, cryptoaddr.IsLitecoin(address))
}

func TestBrandValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fn      func(string) bool
		address string
	}{
		{"bitcoin", cryptoaddr.IsBitcoin, bitcoinAddr},
		{"bitcoin cash", cryptoaddr.IsBitcoinCash, bitcoinCashAddr},
		{"ethereum", cryptoaddr.IsEthereum, ethereumAddr},
		{"litecoin", cryptoaddr.IsLitecoin, litecoinAddr},
		{"dogecoin", cryptoaddr.IsDogecoin, dogecoinAddr},
		{"dash", cryptoaddr.IsDash, dashAddr},
		{"monero", cryptoaddr.IsMonero, moneroAddr},
		{"neo", cryptoaddr.IsNeo, neoAddr},
		{"ripple", cryptoaddr.IsRipple, rippleAddr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, tt.fn(tt.address))
			assert.False(t, tt.fn("LQ4i7FLNbtJAFZq"))
		})
	}

	t.Run("address of another coin", func(t *testing.T) {
		t.Parallel()
		assert.False(t, cryptoaddr.IsBitcoin(ethereumAddr))
		assert.False(t, cryptoaddr.IsEthereum(bitcoinAddr))
		assert.False(t, cryptoaddr.IsDash(dogecoinAddr))
	})
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, cryptoaddr.IsValid(dogecoinAddr))
	assert.True(t, cryptoaddr.IsValid(moneroAddr))
	assert.False(t, cryptoaddr.IsValid("LQ4i7FLNbtJAFZq"))
	assert.False(t, cryptoaddr.IsValid(""))
}

func TestIsEthereumChecksum(t *testing.T) {
	t.Parallel()

	t.Run("valid checksums", func(t *testing.T) {
		t.Parallel()
		for _, address := range []string{
			"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
			"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
			"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
		} {
			assert.True(t, cryptoaddr.IsEthereumChecksum(address), address)
		}
	})

	t.Run("single case carries no checksum", func(t *testing.T) {
		t.Parallel()
		assert.True(t, cryptoaddr.IsEthereumChecksum(ethereumAddr))
		assert.True(t, cryptoaddr.IsEthereumChecksum("0x52908400098527886E0F7030069857D2E4169EE7"))
	})

	t.Run("wrong casing", func(t *testing.T) {
		t.Parallel()
		assert.False(t, cryptoaddr.IsEthereumChecksum("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD"))
		assert.False(t, cryptoaddr.IsEthereumChecksum("0x5AaEB6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	})

	t.Run("not an ethereum address", func(t *testing.T) {
		t.Parallel()
		assert.False(t, cryptoaddr.IsEthereumChecksum(bitcoinAddr))
		assert.False(t, cryptoaddr.IsEthereumChecksum("0x1234"))
		assert.False(t, cryptoaddr.IsEthereumChecksum(""))
	})
}

func TestBrands(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []cryptoaddr.Brand{
		cryptoaddr.Bitcoin,
		cryptoaddr.BitcoinCash,
		cryptoaddr.Ethereum,
		cryptoaddr.Litecoin,
		cryptoaddr.Dogecoin,
		cryptoaddr.Dash,
		cryptoaddr.Monero,
		cryptoaddr.Neo,
		cryptoaddr.Ripple,
	}, cryptoaddr.Brands())
	assert.Equal(t, "Unknown", cryptoaddr.Brand(99).String())
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	inputs := []string{bitcoinAddr, ethereumAddr, moneroAddr, rippleAddr, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD", "garbage", ""}
	for _, in := range inputs {
		b1, ok1 := cryptoaddr.Which(in)
		b2, ok2 := cryptoaddr.Which(in)
		assert.Equal(t, b1, b2)
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, cryptoaddr.IsValid(in), cryptoaddr.IsValid(in))
		assert.Equal(t, cryptoaddr.IsEthereumChecksum(in), cryptoaddr.IsEthereumChecksum(in))
	}
}
