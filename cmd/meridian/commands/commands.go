// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete meridian CLI command tree.
package commands

import (
	"fmt"

	"github.com/meridian-foundation/meridian/cmd/meridian/cli"
	strkeycmd "github.com/meridian-foundation/meridian/cmd/meridian/strkey"
	xdrcmd "github.com/meridian-foundation/meridian/cmd/meridian/xdr"
	"github.com/meridian-foundation/meridian/lib/version"
)

// Root builds and returns the complete meridian CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "meridian",
		Description: `Meridian: tools for the ledger's binary data formats.

Decode XDR values and record streams to JSON, and convert ledger keys
between their checksummed text form and raw bytes.`,
		Subcommands: []*cli.Command{
			xdrcmd.Command(),
			strkeycmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("meridian %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
