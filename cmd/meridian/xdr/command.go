// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import (
	"github.com/meridian-foundation/meridian/cmd/meridian/cli"
)

// Command returns the "xdr" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "xdr",
		Summary: "Decode and inspect binary XDR values",
		Description: `Tools for working with XDR-encoded ledger data from the command line.

Transactions, ledger entries, and contract values travel as XDR: a
big-endian binary encoding with 4-byte alignment. This command decodes
those bytes into JSON for inspection.

Input is base64 by default, matching how envelopes appear in API
responses and logs. Use --input=hex for hex dumps or --input=binary
for raw files. All subcommands accept an optional trailing file path
argument; without one, input is read from stdin.`,
		Subcommands: []*cli.Command{
			decodeCommand(),
			streamCommand(),
			typesCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Decode a transaction envelope from an API response",
				Command:     "meridian xdr decode --type TransactionEnvelope < envelope.b64",
			},
			{
				Description: "Decode a hex-dumped ledger key",
				Command:     "echo '00000000...' | meridian xdr decode --type LedgerKey --input hex",
			},
			{
				Description: "Walk a gzip-compressed history file",
				Command:     "meridian xdr stream --type AccountEntry --gzip ledger-0000003f.xdr.gz",
			},
			{
				Description: "List decodable type names",
				Command:     "meridian xdr types",
			},
		},
	}
}
