package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validaten/pkg/creditcard"
	"github.com/dmitrymomot/validaten/pkg/cryptoaddr"
	"github.com/dmitrymomot/validaten/pkg/hashes"
	"github.com/dmitrymomot/validaten/pkg/inspect"
	"github.com/dmitrymomot/validaten/pkg/logger"
	"github.com/dmitrymomot/validaten/pkg/networks"
)

// classifyFunc returns the verdict of one classifier for value.
type classifyFunc func(value string) inspect.Match

// run classifies every argument, writes the results and fails with
// ErrInvalidInput if any argument was not valid.
func (a *app) run(classify classifyFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		results := make([]result, 0, len(args))
		invalid := 0

		for _, arg := range args {
			m := classify(arg)
			r := result{Input: a.display(arg, m.Category == inspect.CategoryCard), Match: m}
			a.log.DebugContext(ctx, "classified",
				logger.Input(r.Input),
				logger.Category(string(m.Category)),
				logger.Brand(m.Brand),
				logger.Valid(m.Valid),
			)
			if !m.Valid {
				invalid++
			}
			results = append(results, r)
		}

		if err := a.writeResults(cmd.OutOrStdout(), results); err != nil {
			return err
		}
		if invalid > 0 {
			return fmt.Errorf("%w: %d of %d", ErrInvalidInput, invalid, len(args))
		}
		return nil
	}
}

func newCardCmd(a *app) *cobra.Command {
	var brandName string
	cmd := &cobra.Command{
		Use:   "card NUMBER...",
		Short: "Detect the brand of card numbers and check length and Luhn checksum",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if brandName == "" {
				return a.run(classifyCard)(cmd, args)
			}
			brand, err := parseCardBrand(brandName)
			if err != nil {
				return err
			}
			return a.run(func(value string) inspect.Match {
				m := classifyCard(value)
				if m.Valid && !creditcard.IsValidBrand(value, brand) {
					m.Valid = false
					m.Detail = "not a " + brand.String() + " card"
				}
				return m
			})(cmd, args)
		},
	}
	cmd.Flags().StringVar(&brandName, "brand", "", "require this brand, e.g. visa or \"diners club\"")
	return cmd
}

func parseCardBrand(name string) (creditcard.Brand, error) {
	want := normalizeName(name)
	for _, b := range creditcard.Brands() {
		if normalizeName(b.String()) == want {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBrand, name)
}

func normalizeName(s string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s))
}

func classifyCard(value string) inspect.Match {
	m := inspect.Match{Category: inspect.CategoryCard}
	brand, ok := creditcard.Which(value)
	if !ok {
		m.Detail = creditcard.ErrUnknownBrand.Error()
		return m
	}
	m.Brand = brand.String()
	if err := creditcard.Validate(value); err != nil {
		m.Detail = err.Error()
		return m
	}
	m.Valid = true
	return m
}

func newCryptoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "crypto ADDRESS...",
		Short: "Detect the cryptocurrency of addresses",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.run(classifyCrypto),
	}
}

func classifyCrypto(value string) inspect.Match {
	m := inspect.Match{Category: inspect.CategoryCrypto}
	brand, ok := cryptoaddr.Which(value)
	if !ok {
		m.Detail = "unrecognised address"
		return m
	}
	m.Brand = brand.String()
	m.Valid = true
	if brand == cryptoaddr.Ethereum && !cryptoaddr.IsEthereumChecksum(value) {
		m.Valid = false
		m.Detail = "EIP-55 checksum mismatch"
	}
	return m
}

func newHashCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hash DIGEST...",
		Short: "Detect the hash algorithm of hex digests by length",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.run(classifyHash),
	}
}

func classifyHash(value string) inspect.Match {
	m := inspect.Match{Category: inspect.CategoryHash}
	brand, ok := hashes.Which(value)
	if !ok {
		m.Detail = "not a hex digest of a known length"
		return m
	}
	m.Brand = brand.String()
	m.Valid = true
	m.Detail = fmt.Sprintf("%d-byte digest", brand.Size())
	return m
}

func newIPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ip ADDRESS|CIDR...",
		Short: "Check IPv4/IPv6 addresses and CIDR blocks",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.run(classifyIP),
	}
}

func classifyIP(value string) inspect.Match {
	if strings.Contains(value, "/") {
		return classifyCIDR(value)
	}
	m := inspect.Match{Category: inspect.CategoryIP}
	version, ok := networks.WhichIP(value)
	if !ok {
		m.Detail = networks.ErrInvalidAddress.Error()
		return m
	}
	m.Brand = version.String()
	m.Valid = true
	if networks.IsIPLoopback(value) {
		m.Detail = "loopback"
	}
	return m
}

func classifyCIDR(value string) inspect.Match {
	m := inspect.Match{Category: inspect.CategoryCIDR}
	version := networks.IPv4
	if strings.Contains(value, ":") {
		version = networks.IPv6
	}
	if err := networks.ParseCIDR(value, version); err != nil {
		m.Detail = err.Error()
		return m
	}
	m.Brand = version.String()
	m.Valid = true
	return m
}

func newMACCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mac ADDRESS...",
		Short: "Check 48-bit MAC addresses",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run(func(value string) inspect.Match {
			m := inspect.Match{Category: inspect.CategoryMAC}
			if networks.IsMACAddress(value) {
				m.Brand = "MAC"
				m.Valid = true
			}
			return m
		}),
	}
}
