// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/meridian-foundation/meridian/cmd/meridian/cli"
)

func decodeCommand() *cli.Command {
	var (
		typeName string
		input    string
		compact  bool
	)

	return &cli.Command{
		Name:    "decode",
		Summary: "Convert one XDR value to JSON",
		Description: `Read a single XDR value and write the equivalent JSON to stdout.

The --type flag selects which type to decode as; run "meridian xdr
types" for the list. The value must consume the input exactly —
trailing bytes are an error, so a truncated or overlong input never
decodes silently.

By default, output is pretty-printed with 2-space indentation. Use -c
for compact single-line output.`,
		Usage: "meridian xdr decode --type <name> [--input base64|hex|binary] [-c] [file]",
		Examples: []cli.Example{
			{
				Description: "Decode a base64 transaction envelope",
				Command:     "meridian xdr decode --type TransactionEnvelope < envelope.b64",
			},
			{
				Description: "Decode a raw binary file",
				Command:     "meridian xdr decode --type AccountEntry --input binary entry.xdr",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			flags.StringVarP(&typeName, "type", "t", "", "XDR type name to decode as (required)")
			flags.StringVar(&input, "input", "base64", "input format: base64, hex, or binary")
			flags.BoolVarP(&compact, "compact", "c", false, "compact output (no indentation)")
			return flags
		},
		Run: func(args []string) error {
			if typeName == "" {
				return fmt.Errorf("--type is required (run 'meridian xdr types' for the list)")
			}
			decode, err := lookupDecoder(typeName)
			if err != nil {
				return err
			}
			format, err := parseInputFormat(input)
			if err != nil {
				return err
			}
			data, remainingArgs, err := readInput(args, format)
			if err != nil {
				return err
			}
			if len(remainingArgs) > 0 {
				return fmt.Errorf("decode takes no positional arguments, got %q", remainingArgs[0])
			}

			value, err := decode(data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", typeName, err)
			}
			return cli.EncodeJSON(os.Stdout, value, compact)
		},
	}
}
