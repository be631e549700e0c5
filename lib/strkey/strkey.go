// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package strkey

import (
	"encoding/base32"
	"encoding/binary"
	"fmt"

	"github.com/meridian-foundation/meridian/lib/crc16"
)

// VersionByte tags the entity kind of an encoded key. The values are
// chosen so that the first base32 character of the output is the
// kind's conventional letter.
type VersionByte byte

const (
	// VersionByteAccountID is an ed25519 public key ('G').
	VersionByteAccountID VersionByte = 6 << 3

	// VersionByteSeed is an ed25519 secret seed ('S').
	VersionByteSeed VersionByte = 18 << 3

	// VersionBytePreAuthTx is a pre-authorized transaction hash ('T').
	VersionBytePreAuthTx VersionByte = 19 << 3

	// VersionByteHashX is a sha256 hash preimage commitment ('X').
	VersionByteHashX VersionByte = 23 << 3

	// VersionByteMuxedAccount is an ed25519 key plus a 64-bit
	// sub-account ID ('M').
	VersionByteMuxedAccount VersionByte = 12 << 3

	// VersionByteSignedPayload is an ed25519 key plus a payload the
	// key must sign ('P').
	VersionByteSignedPayload VersionByte = 15 << 3

	// VersionByteContract is a contract ID ('C').
	VersionByteContract VersionByte = 2 << 3

	// VersionByteLiquidityPool is a liquidity pool ID ('L').
	VersionByteLiquidityPool VersionByte = 11 << 3

	// VersionByteClaimableBalance is a claimable balance ID ('B').
	VersionByteClaimableBalance VersionByte = 1 << 3
)

// String returns the kind's conventional name.
func (v VersionByte) String() string {
	switch v {
	case VersionByteAccountID:
		return "account"
	case VersionByteSeed:
		return "seed"
	case VersionBytePreAuthTx:
		return "pre-auth-tx"
	case VersionByteHashX:
		return "hash-x"
	case VersionByteMuxedAccount:
		return "muxed-account"
	case VersionByteSignedPayload:
		return "signed-payload"
	case VersionByteContract:
		return "contract"
	case VersionByteLiquidityPool:
		return "liquidity-pool"
	case VersionByteClaimableBalance:
		return "claimable-balance"
	}
	return fmt.Sprintf("unknown(%#02x)", byte(v))
}

// rawKeyLength is the payload size of the six fixed 32-byte kinds.
const rawKeyLength = 32

// SignedPayloadMaxLength is the maximum byte length of the inner
// payload of a signed-payload key, before padding.
const SignedPayloadMaxLength = 64

// encoding is the unpadded RFC 4648 standard-alphabet base32 codec.
var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Encode produces the StrKey text form of payload under the given
// version byte. The payload must already have the kind's exact layout;
// its length (and for composite kinds, its structure) is validated
// before encoding.
func Encode(version VersionByte, payload []byte) (string, error) {
	if err := validatePayload(version, payload); err != nil {
		return "", err
	}
	data := make([]byte, 0, 1+len(payload)+2)
	data = append(data, byte(version))
	data = append(data, payload...)
	data = binary.LittleEndian.AppendUint16(data, crc16.Checksum(data))
	return encoding.EncodeToString(data), nil
}

// Decode parses a StrKey string and returns its payload, requiring the
// version byte to match the expected kind.
func Decode(expected VersionByte, input string) ([]byte, error) {
	version, payload, err := DecodeAny(input)
	if err != nil {
		return nil, err
	}
	if version != expected {
		return nil, &UnknownVersionByteError{VersionByte: byte(version)}
	}
	return payload, nil
}

// DecodeAny parses a StrKey string of any known kind and returns the
// version byte and payload.
func DecodeAny(input string) (VersionByte, []byte, error) {
	data, err := decodeBase32(input)
	if err != nil {
		return 0, nil, err
	}
	// Version byte, at least an empty payload, two checksum bytes.
	if len(data) < 3 {
		return 0, nil, &MalformedEncodingError{Reason: "too short to hold version byte and checksum"}
	}
	body := data[:len(data)-2]
	found := binary.LittleEndian.Uint16(data[len(data)-2:])
	if computed := crc16.Checksum(body); computed != found {
		return 0, nil, &ChecksumMismatchError{Computed: computed, Found: found}
	}

	version := VersionByte(body[0])
	payload := body[1:]
	if err := validatePayload(version, payload); err != nil {
		return 0, nil, err
	}
	return version, payload, nil
}

// decodeBase32 decodes an unpadded base32 string, accepting only the
/// canonical form: uppercase standard alphabet, no padding, zero unused
// trailing bits.
func decodeBase32(input string) ([]byte, error) {
	for i := 0; i < len(input); i++ {
		c := input[i]
		if (c < 'A' || c > 'Z') && (c < '2' || c > '7') {
			return nil, &MalformedEncodingError{
				Reason: fmt.Sprintf("invalid base32 character %q at position %d", c, i),
			}
		}
	}
	data, err := encoding.DecodeString(input)
	if err != nil {
		return nil, &MalformedEncodingError{Reason: err.Error()}
	}
	// Nonzero trailing bits survive DecodeString. Canonical input
	// re-encodes to itself; anything else is rejected, so every byte
	// sequence has exactly one accepted text form.
	if encoding.EncodeToString(data) != input {
		return nil, &MalformedEncodingError{Reason: "non-canonical encoding"}
	}
	return data, nil
}

// validatePayload enforces the kind-specific payload layout. Shared by
// Encode and DecodeAny so both directions reject the same inputs.
func validatePayload(version VersionByte, payload []byte) error {
	switch version {
	case VersionByteAccountID, VersionByteSeed, VersionBytePreAuthTx,
		VersionByteHashX, VersionByteContract, VersionByteLiquidityPool:
		if len(payload) != rawKeyLength {
			return &LengthMismatchError{
				VersionByte: version,
				Length:      len(payload),
				Reason:      "must be exactly 32 bytes",
			}
		}
	case VersionByteMuxedAccount:
		if len(payload) != rawKeyLength+8 {
			return &LengthMismatchError{
				VersionByte: version,
				Length:      len(payload),
				Reason:      "must be exactly 40 bytes (32-byte key + 8-byte ID)",
			}
		}
	case VersionByteClaimableBalance:
		if len(payload) != rawKeyLength+1 {
			return &LengthMismatchError{
				VersionByte: version,
				Length:      len(payload),
				Reason:      "must be exactly 33 bytes (sub-type + 32-byte hash)",
			}
		}
		if payload[0] != 0 {
			return &LengthMismatchError{
				VersionByte: version,
				Length:      len(payload),
				Reason:      fmt.Sprintf("unknown sub-type %#02x", payload[0]),
			}
		}
	case VersionByteSignedPayload:
		return validateSignedPayload(payload)
	default:
		return &UnknownVersionByteError{VersionByte: byte(version)}
	}
	return nil
}

/// validateSignedPayload checks the signed-payload layout: 32-byte key,
// 4-byte big-endian inner length, inner payload zero-padded to the
// next multiple of 4. The embedded length is validated against the
// bytes actually present before it is used.
func validateSignedPayload(payload []byte) error {
	if len(payload) < rawKeyLength+4 {
		return &LengthMismatchError{
			VersionByte: VersionByteSignedPayload,
			Length:      len(payload),
			Reason:      "too short for key and payload length field",
		}
	}
	inner := binary.BigEndian.Uint32(payload[rawKeyLength : rawKeyLength+4])
	if inner == 0 || inner > SignedPayloadMaxLength {
		return &LengthMismatchError{
			VersionByte: VersionByteSignedPayload,
			Length:      len(payload),
			Reason:      fmt.Sprintf("inner payload length %d outside 1..%d", inner, SignedPayloadMaxLength),
		}
	}
	padded := int(inner) + (4-int(inner)%4)%4
	if len(payload) != rawKeyLength+4+padded {
		return &LengthMismatchError{
			VersionByte: VersionByteSignedPayload,
			Length:      len(payload),
			Reason:      fmt.Sprintf("inner payload length %d requires %d payload bytes", inner, rawKeyLength+4+padded),
		}
	}
	for _, b := range payload[rawKeyLength+4+int(inner):] {
		if b != 0 {
			return &LengthMismatchError{
				VersionByte: VersionByteSignedPayload,
				Length:      len(payload),
				Reason:      "nonzero padding after inner payload",
			}
		}
	}
	return nil
}

// MuxedAccount is the decoded form of an 'M' key: a base account key
// plus a 64-bit sub-account ID.
type MuxedAccount struct {
	Ed25519 [32]byte
	ID      uint64
}

// EncodeMuxedAccount produces the 'M' text form of a muxed account.
func EncodeMuxedAccount(account MuxedAccount) (string, error) {
	payload := make([]byte, 0, rawKeyLength+8)
	payload = append(payload, account.Ed25519[:]...)
	payload = binary.BigEndian.AppendUint64(payload, account.ID)
	return Encode(VersionByteMuxedAccount, payload)
}

// DecodeMuxedAccount parses an 'M' key into its parts.
func DecodeMuxedAccount(input string) (MuxedAccount, error) {
	payload, err := Decode(VersionByteMuxedAccount, input)
	if err != nil {
		return MuxedAccount{}, err
	}
	var account MuxedAccount
	copy(account.Ed25519[:], payload[:rawKeyLength])
	account.ID = binary.BigEndian.Uint64(payload[rawKeyLength:])
	return account, nil
}

// SignedPayload is the decoded form of a 'P' key: a signer key plus
// the exact payload it must sign.
type SignedPayload struct {
	Ed25519 [32]byte
	Payload []byte
}

// EncodeSignedPayload produces the 'P' text form of a signed-payload
// signer. The inner payload must be 1 to 64 bytes; it is zero-padded
// to a 4-byte boundary inside the encoding.
func EncodeSignedPayload(sp SignedPayload) (string, error) {
	inner := len(sp.Payload)
	if inner == 0 || inner > SignedPayloadMaxLength {
		return "", &LengthMismatchError{
			VersionByte: VersionByteSignedPayload,
			Length:      inner,
			Reason:      fmt.Sprintf("inner payload length outside 1..%d", SignedPayloadMaxLength),
		}
	}
	padded := inner + (4-inner%4)%4
	payload := make([]byte, 0, rawKeyLength+4+padded)
	payload = append(payload, sp.Ed25519[:]...)
	payload = binary.BigEndian.AppendUint32(payload, uint32(inner))
	payload = append(payload, sp.Payload...)
	payload = append(payload, make([]byte, padded-inner)...)
	return Encode(VersionByteSignedPayload, payload)
}

// DecodeSignedPayload parses a 'P' key into its parts. The returned
// Payload has the length the embedded field declares, with the
// alignment padding stripped.
func DecodeSignedPayload(input string) (SignedPayload, error) {
	payload, err := Decode(VersionByteSignedPayload, input)
	if err != nil {
		return SignedPayload{}, err
	}
	var sp SignedPayload
	copy(sp.Ed25519[:], payload[:rawKeyLength])
	inner := binary.BigEndian.Uint32(payload[rawKeyLength : rawKeyLength+4])
	sp.Payload = payload[rawKeyLength+4 : rawKeyLength+4+int(inner)]
	return sp, nil
}
