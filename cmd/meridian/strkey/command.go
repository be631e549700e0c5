// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package strkey

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/meridian-foundation/meridian/cmd/meridian/cli"
	libstrkey "github.com/meridian-foundation/meridian/lib/strkey"
)

// kindByName maps the names accepted by --kind to version bytes. The
// names match what [libstrkey.VersionByte.String] produces, so decode
// output feeds back into encode.
var kindByName = map[string]libstrkey.VersionByte{
	"account":           libstrkey.VersionByteAccountID,
	"seed":              libstrkey.VersionByteSeed,
	"pre-auth-tx":       libstrkey.VersionBytePreAuthTx,
	"hash-x":            libstrkey.VersionByteHashX,
	"muxed-account":     libstrkey.VersionByteMuxedAccount,
	"signed-payload":    libstrkey.VersionByteSignedPayload,
	"contract":          libstrkey.VersionByteContract,
	"liquidity-pool":    libstrkey.VersionByteLiquidityPool,
	"claimable-balance": libstrkey.VersionByteClaimableBalance,
}

func kindNames() string {
	names := make([]string, 0, len(kindByName))
	for name := range kindByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Command returns the "strkey" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "strkey",
		Summary: "Convert ledger keys between text and raw bytes",
		Description: `Tools for the checksummed text form of ledger keys: base32 with a
leading version byte and a trailing CRC-16 checksum. Account IDs start
with G, secret seeds with S, multiplexed accounts with M, contracts
with C, and so on.

"decode" validates a key and prints its kind and payload; "encode"
produces the text form from a kind and a hex payload.`,
		Subcommands: []*cli.Command{
			decodeCommand(),
			encodeCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Inspect an account ID",
				Command:     "meridian strkey decode GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ",
			},
			{
				Description: "Build an account ID from raw key bytes",
				Command:     "meridian strkey encode --kind account 3f0c34bf...",
			},
		},
	}
}

// decodedKey is the JSON shape printed by "strkey decode". The
// muxed-account and signed-payload fields are populated only for those
// kinds.
type decodedKey struct {
	Kind    string `json:"kind"`
	Payload string `json:"payload"`

	Ed25519      string `json:"ed25519,omitempty"`
	ID           uint64 `json:"id,omitempty"`
	InnerPayload string `json:"inner_payload,omitempty"`
}

func decodeCommand() *cli.Command {
	var compact bool

	return &cli.Command{
		Name:    "decode",
		Summary: "Validate a key and print its kind and payload",
		Description: `Decode a ledger key from its text form, verifying the checksum,
canonical base32 spelling, and payload layout. The kind and hex
payload are printed as JSON.

Multiplexed accounts additionally report the ed25519 key and ID;
signed-payload signers report the inner payload with padding
stripped. An invalid key is reported on stderr and exits 1.`,
		Usage: "meridian strkey decode [-c] <key>",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			flags.BoolVarP(&compact, "compact", "c", false, "compact output (no indentation)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("decode takes exactly one key argument")
			}
			version, payload, err := libstrkey.DecodeAny(args[0])
			if err != nil {
				return err
			}

			result := decodedKey{
				Kind:    version.String(),
				Payload: hex.EncodeToString(payload),
			}
			switch version {
			case libstrkey.VersionByteMuxedAccount:
				result.Ed25519 = hex.EncodeToString(payload[:32])
				result.ID = binary.BigEndian.Uint64(payload[32:])
			case libstrkey.VersionByteSignedPayload:
				sp, err := libstrkey.DecodeSignedPayload(args[0])
				if err != nil {
					return err
				}
				result.Ed25519 = hex.EncodeToString(sp.Ed25519[:])
				result.InnerPayload = hex.EncodeToString(sp.Payload)
			}
			return cli.EncodeJSON(os.Stdout, result, compact)
		},
	}
}

func encodeCommand() *cli.Command {
	var kind string

	return &cli.Command{
		Name:    "encode",
		Summary: "Produce the text form of a key from hex payload bytes",
		Description: `Encode raw payload bytes (hex, as an argument or on stdin) into the
checksummed text form for the given kind.

The payload must have the exact layout the kind requires: 32 bytes
for account, seed, pre-auth-tx, hash-x, contract, and liquidity-pool
keys; 40 bytes (key then big-endian ID) for muxed accounts; 33 bytes
(zero sub-type then hash) for claimable balances; key, length, and
padded inner payload for signed-payload signers.`,
		Usage: "meridian strkey encode --kind <name> [hex]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flags.StringVarP(&kind, "kind", "k", "", "key kind: "+kindNames())
			return flags
		},
		Run: func(args []string) error {
			version, ok := kindByName[kind]
			if !ok {
				if kind == "" {
					return fmt.Errorf("--kind is required (one of: %s)", kindNames())
				}
				return fmt.Errorf("unknown kind %q (one of: %s)", kind, kindNames())
			}

			hexPayload, err := readHexArgument(args)
			if err != nil {
				return err
			}
			payload, err := hex.DecodeString(hexPayload)
			if err != nil {
				return fmt.Errorf("decode hex payload: %w", err)
			}

			encoded, err := libstrkey.Encode(version, payload)
			if err != nil {
				return err
			}
			fmt.Println(encoded)
			return nil
		},
	}
}

// readHexArgument returns the hex payload from the single positional
// argument, or from stdin when no argument is given. Whitespace is
// stripped so piped hex dumps with line breaks work.
func readHexArgument(args []string) (string, error) {
	switch len(args) {
	case 0:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.Join(strings.Fields(string(data)), ""), nil
	case 1:
		return strings.Join(strings.Fields(args[0]), ""), nil
	default:
		return "", fmt.Errorf("encode takes at most one hex argument, got %q", args[1])
	}
}
