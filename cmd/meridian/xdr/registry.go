// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import (
	"fmt"
	"sort"

	libxdr "github.com/meridian-foundation/meridian/lib/xdr"
)

// decodeFunc decodes one complete value from data. The whole input
// must be consumed: trailing bytes are an error.
type decodeFunc func(data []byte) (any, error)

// decoders maps user-facing type names to decode functions. Union
// types decode through their package-level Decode functions; struct
// types decode through DecodeFrom on a zero value.
var decoders = map[string]decodeFunc{
	"AccountEntry":        structDecoder[libxdr.AccountEntry](),
	"AccountID":           structDecoder[libxdr.AccountID](),
	"Asset":               unionDecoder(libxdr.DecodeAsset),
	"ClaimableBalanceID":  structDecoder[libxdr.ClaimableBalanceID](),
	"DecoratedSignature":  structDecoder[libxdr.DecoratedSignature](),
	"LedgerKey":           unionDecoder(libxdr.DecodeLedgerKey),
	"Memo":                unionDecoder(libxdr.DecodeMemo),
	"MuxedAccount":        unionDecoder(libxdr.DecodeMuxedAccount),
	"Operation":           structDecoder[libxdr.Operation](),
	"Price":               structDecoder[libxdr.Price](),
	"SCVal":               unionDecoder(libxdr.DecodeSCVal),
	"Signer":              structDecoder[libxdr.Signer](),
	"SignerKey":           unionDecoder(libxdr.DecodeSignerKey),
	"TimeBounds":          structDecoder[libxdr.TimeBounds](),
	"Transaction":         structDecoder[libxdr.Transaction](),
	"TransactionEnvelope": unionDecoder(libxdr.DecodeTransactionEnvelope),
}

// typeNames returns the registry's type names in sorted order.
func typeNames() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupDecoder resolves a type name against the registry.
func lookupDecoder(name string) (decodeFunc, error) {
	decode, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q (run 'meridian xdr types' for the list)", name)
	}
	return decode, nil
}

// decodablePtr constrains PT to a pointer to T that can decode itself.
type decodablePtr[T any] interface {
	*T
	libxdr.Decodable
}

// structDecoder returns a decodeFunc for a concrete struct type.
func structDecoder[T any, PT decodablePtr[T]]() decodeFunc {
	return func(data []byte) (any, error) {
		value := PT(new(T))
		if err := libxdr.Unmarshal(data, value); err != nil {
			return nil, err
		}
		return value, nil
	}
}

// unionDecoder returns a decodeFunc wrapping a package-level union
// decode function.
func unionDecoder[T any](decode func(*libxdr.Decoder) (T, error)) decodeFunc {
	return func(data []byte) (any, error) {
		decoder := libxdr.NewDecoder(data)
		value, err := decode(decoder)
		if err != nil {
			return nil, err
		}
		if remaining := decoder.Remaining(); remaining > 0 {
			return nil, fmt.Errorf("%d trailing bytes after value", remaining)
		}
		return value, nil
	}
}
