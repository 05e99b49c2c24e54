package main

import "github.com/spf13/cobra"

// sampleInputs holds one known-good value per brand plus a few near misses.
var sampleInputs = []string{
	// cards
	"4844161459546174",
	"5898009041197",
	"6007221111111110",
	"5019118545073189",
	"4035300539804083",
	"5463113589982388",
	"370789709084107",
	"3022143741431999",
	"6011575126600688",
	"62600094752489242",
	"3588337499926343",
	// Dankort number with a bad check digit
	"5019118545073184",
	// crypto
	"1GiWxH6PzSSmbdcK72XfGpqhjSb6nae6h9",
	"qppjlghjlwg6tgxv7ffhvs43rlul0kpp4c0shk4dr6",
	"0xaae47eae4ddd4877e0ae0bc780cfaee3cc3b52cb",
	"LQ4i7FLNhfCC9GXw682mS1NzvVKbtJAFZq",
	"D6K2nqqQKycTucCSFSHhpiig4yQ6NPQRf9",
	"XqLYPDTADW6EYuQmTcEAx81o8EHTKwqTK8",
	"41gYNjXMeXaTmZFVv645A1HRVoA637cXFGbDdLV8Gn5hLvfxfRLKigUTvm2HVZhBzDVPeGpDy71qxASTpRFgepDwLexA8Ti",
	"AeHauBkGkHPTxh4PEUhNr7WRgivmcdCRnR",
	"rUocf1ixKzTuEe34kmVhRvGqNCofY1NJzV",
	// hashes
	"5eb63bbbe01eeed093cb22bb8f5acdc3",
	"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
	// networks
	"192.168.1.1",
	"::1",
	"10.0.0.0/8",
	"10.0.0.0/33",
	"00:1A:2b:3C:4d:5E",
}

func newSamplesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "Inspect a built-in table of sample values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.writeReports(cmd.OutOrStdout(), a.inspectAll(cmd, sampleInputs))
		},
	}
}
