// Package cryptoaddr recognises cryptocurrency addresses by their lexical shape.
//
// Supported coins, in probing order: Bitcoin, Bitcoin Cash, Ethereum, Litecoin,
// Dogecoin, Dash, Monero, Neo and Ripple. Each coin is a single anchored
// regular expression; the first one that matches determines the result. Some
// shapes overlap (a "3..." address satisfies both the Bitcoin and Litecoin
// patterns), and the earlier coin wins.
//
// Matching is the whole validity test: no base58 or bech32 decoding and no
// checksum verification is performed by Which or IsValid. Ethereum addresses
// can additionally be checked against their EIP-55 mixed-case checksum with
// IsEthereumChecksum.
//
// Embedded spaces are removed before matching.
//
//	brand, ok := cryptoaddr.Which("0xaae47eae4ddd4877e0ae0bc780cfaee3cc3b52cb")
//	// brand == cryptoaddr.Ethereum, ok == true
package cryptoaddr
