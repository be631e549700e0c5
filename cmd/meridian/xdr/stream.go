// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/meridian-foundation/meridian/cmd/meridian/cli"
	"github.com/meridian-foundation/meridian/lib/xdrstream"
)

func streamCommand() *cli.Command {
	var (
		typeName string
		gzipped  bool
		compact  bool
		raw      bool
	)

	return &cli.Command{
		Name:    "stream",
		Summary: "Decode a framed stream of XDR records",
		Description: `Read a record stream (4-byte big-endian headers with the record
marker bit, as written in ledger history files) and decode each record
to JSON, one value per line by default.

With --gzip, the stream is decompressed first; history files on disk
are conventionally gzip-compressed. With --raw, records are printed as
base64 without decoding, which works for any stream regardless of
whether its type is in the registry.`,
		Usage: "meridian xdr stream --type <name> [--gzip] [--raw] [file]",
		Examples: []cli.Example{
			{
				Description: "Decode a history file of account entries",
				Command:     "meridian xdr stream --type AccountEntry --gzip ledger.xdr.gz",
			},
			{
				Description: "Dump raw records as base64",
				Command:     "meridian xdr stream --raw < records.xdr",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("stream", pflag.ContinueOnError)
			flags.StringVarP(&typeName, "type", "t", "", "XDR type name to decode records as")
			flags.BoolVar(&gzipped, "gzip", false, "input is gzip-compressed")
			flags.BoolVarP(&compact, "compact", "c", true, "compact output (one record per line)")
			flags.BoolVar(&raw, "raw", false, "print records as base64 without decoding")
			return flags
		},
		Run: func(args []string) error {
			var decode decodeFunc
			if !raw {
				if typeName == "" {
					return fmt.Errorf("either --type or --raw is required")
				}
				var err error
				decode, err = lookupDecoder(typeName)
				if err != nil {
					return err
				}
			}

			source, name, err := openStreamInput(args)
			if err != nil {
				return err
			}
			defer source.Close()

			var reader *xdrstream.Reader
			if gzipped {
				reader, err = xdrstream.NewGzipReader(source)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				defer reader.Close()
			} else {
				reader = xdrstream.NewReader(source)
			}

			for index := 0; ; index++ {
				record, err := reader.ReadRecord()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return fmt.Errorf("%s: record %d: %w", name, index, err)
				}

				if raw {
					if err := cli.EncodeJSON(os.Stdout, record, true); err != nil {
						return err
					}
					continue
				}
				value, err := decode(record)
				if err != nil {
					return fmt.Errorf("%s: record %d: decode %s: %w", name, index, typeName, err)
				}
				if err := cli.EncodeJSON(os.Stdout, value, compact); err != nil {
					return err
				}
			}
		},
	}
}

// openStreamInput returns the stream source: the single positional
// file argument if present, stdin otherwise. The returned name is used
// in error messages.
func openStreamInput(args []string) (io.ReadCloser, string, error) {
	switch len(args) {
	case 0:
		return io.NopCloser(os.Stdin), "stdin", nil
	case 1:
		file, err := os.Open(args[0])
		if err != nil {
			return nil, "", err
		}
		return file, args[0], nil
	default:
		return nil, "", fmt.Errorf("stream takes at most one file argument, got %q", args[1])
	}
}
