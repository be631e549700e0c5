// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package strkey_test

import (
	"bytes"
	"encoding/base32"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/meridian-foundation/meridian/lib/crc16"
	"github.com/meridian-foundation/meridian/lib/strkey"
	"github.com/meridian-foundation/meridian/lib/testutil"
)

// base32Raw mirrors the codec the package uses, for constructing
// deliberately damaged inputs.
var base32Raw = base32.StdEncoding.WithPadding(base32.NoPadding)

var kindByName = map[string]strkey.VersionByte{
	"account":           strkey.VersionByteAccountID,
	"seed":              strkey.VersionByteSeed,
	"pre-auth-tx":       strkey.VersionBytePreAuthTx,
	"hash-x":            strkey.VersionByteHashX,
	"muxed-account":     strkey.VersionByteMuxedAccount,
	"signed-payload":    strkey.VersionByteSignedPayload,
	"contract":          strkey.VersionByteContract,
	"liquidity-pool":    strkey.VersionByteLiquidityPool,
	"claimable-balance": strkey.VersionByteClaimableBalance,
}

type vector struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Payload string `yaml:"payload"`
	StrKey  string `yaml:"strkey"`
}

func loadVectors(t *testing.T) []vector {
	t.Helper()
	var vectors []vector
	testutil.LoadVectors(t, "testdata/strkey_vectors.yaml", &vectors)
	if len(vectors) == 0 {
		t.Fatal("no vectors loaded")
	}
	return vectors
}

func TestVectors(t *testing.T) {
	for _, v := range loadVectors(t) {
		t.Run(v.Name, func(t *testing.T) {
			version, ok := kindByName[v.Kind]
			if !ok {
				t.Fatalf("unknown kind %q in vector file", v.Kind)
			}
			payload := testutil.MustDecodeHex(t, v.Payload)

			encoded, err := strkey.Encode(version, payload)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if encoded != v.StrKey {
				t.Errorf("Encode = %s, want %s", encoded, v.StrKey)
			}

			gotVersion, gotPayload, err := strkey.DecodeAny(v.StrKey)
			if err != nil {
				t.Fatalf("DecodeAny: %v", err)
			}
			if gotVersion != version {
				t.Errorf("DecodeAny version = %s, want %s", gotVersion, version)
			}
			if !bytes.Equal(gotPayload, payload) {
				t.Errorf("DecodeAny payload = %x, want %x", gotPayload, payload)
			}
		})
	}
}

// The all-zero ed25519 account key is the canonical smoke-test vector:
// its text form is pinned here as a literal so a regression in any
// layer (base32, checksum, version byte) shows up as a direct string
// mismatch.
func TestAllZeroAccountPinned(t *testing.T) {
	const want = "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF"
	zero := make([]byte, 32)

	encoded, err := strkey.Encode(strkey.VersionByteAccountID, zero)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if encoded != want {
		t.Fatalf("Encode(account, zeros) = %s, want %s", encoded, want)
	}

	payload, err := strkey.Decode(strkey.VersionByteAccountID, want)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(payload, zero) {
		t.Errorf("Decode = %x, want 32 zero bytes", payload)
	}
}

// Flipping any single bit of the version byte or payload must fail the
// checksum. The corruption is applied at the byte level under a stale
// checksum, then re-encoded, so every flip yields valid base32.
func TestSingleBitCorruptionDetected(t *testing.T) {
	for _, v := range loadVectors(t) {
		payload := testutil.MustDecodeHex(t, v.Payload)
		version := kindByName[v.Kind]

		body := append([]byte{byte(version)}, payload...)
		checksum := crc16.Checksum(body)

		for i := range body {
			for bit := 0; bit < 8; bit++ {
				corrupted := make([]byte, len(body))
				copy(corrupted, body)
				corrupted[i] ^= 1 << bit
				full := binary.LittleEndian.AppendUint16(corrupted, checksum)

				_, _, err := strkey.DecodeAny(base32Raw.EncodeToString(full))
				if err == nil {
					t.Fatalf("%s: flip of bit %d in byte %d not detected", v.Name, bit, i)
				}
			}
		}
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	valid, err := strkey.Encode(strkey.VersionByteAccountID, make([]byte, 32))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "lowercase", input: strings.ToLower(valid)},
		{name: "padding-char", input: valid[:len(valid)-1] + "="},
		{name: "invalid-char", input: valid[:len(valid)-1] + "!"},
		{name: "digit-zero", input: "0" + valid[1:]},
		{name: "digit-one", input: valid[:10] + "1" + valid[11:]},
		{name: "impossible-length", input: valid + "A"},
		{name: "whitespace", input: " " + valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := strkey.DecodeAny(tt.input)
			var malformed *strkey.MalformedEncodingError
			if !errors.As(err, &malformed) {
				t.Fatalf("DecodeAny(%q): got %v, want MalformedEncodingError", tt.input, err)
			}
		})
	}
}

// A muxed key's text length leaves one unused bit in the final base32
// character. Setting it decodes to the same bytes but is not the
// canonical spelling, so it must be rejected rather than aliased.
func TestDecodeRejectsNonCanonicalTrailingBits(t *testing.T) {
	account := strkey.MuxedAccount{ID: 7}
	valid, err := strkey.EncodeMuxedAccount(account)
	if err != nil {
		t.Fatalf("EncodeMuxedAccount: %v", err)
	}
	last := valid[len(valid)-1]
	noncanonical := valid[:len(valid)-1] + string(last+1)

	_, _, err = strkey.DecodeAny(noncanonical)
	var malformed *strkey.MalformedEncodingError
	if !errors.As(err, &malformed) {
		t.Fatalf("DecodeAny(non-canonical): got %v, want MalformedEncodingError", err)
	}
}

func TestDecodeUnknownVersionByte(t *testing.T) {
	body := append([]byte{0xFF}, make([]byte, 32)...)
	full := binary.LittleEndian.AppendUint16(body, crc16.Checksum(body))

	_, _, err := strkey.DecodeAny(base32Raw.EncodeToString(full))
	var unknown *strkey.UnknownVersionByteError
	if !errors.As(err, &unknown) {
		t.Fatalf("DecodeAny: got %v, want UnknownVersionByteError", err)
	}
	if unknown.VersionByte != 0xFF {
		t.Errorf("VersionByte = %#02x, want 0xff", unknown.VersionByte)
	}
}

func TestDecodeWrongExpectedKind(t *testing.T) {
	encoded, err := strkey.Encode(strkey.VersionByteAccountID, make([]byte, 32))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, err = strkey.Decode(strkey.VersionByteSeed, encoded)
	var unknown *strkey.UnknownVersionByteError
	if !errors.As(err, &unknown) {
		t.Fatalf("Decode(seed, account key): got %v, want UnknownVersionByteError", err)
	}
}

func TestDecodeChecksumMismatch(t *testing.T) {
	body := append([]byte{byte(strkey.VersionByteAccountID)}, make([]byte, 32)...)
	full := binary.LittleEndian.AppendUint16(body, crc16.Checksum(body)^0x0001)

	_, _, err := strkey.DecodeAny(base32Raw.EncodeToString(full))
	var mismatch *strkey.ChecksumMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("DecodeAny: got %v, want ChecksumMismatchError", err)
	}
}

func TestPayloadLengthValidation(t *testing.T) {
	tests := []struct {
		name    string
		version strkey.VersionByte
		length  int
	}{
		{name: "account-short", version: strkey.VersionByteAccountID, length: 31},
		{name: "account-long", version: strkey.VersionByteAccountID, length: 33},
		{name: "seed-empty", version: strkey.VersionByteSeed, length: 0},
		{name: "muxed-no-id", version: strkey.VersionByteMuxedAccount, length: 32},
		{name: "claimable-no-subtype", version: strkey.VersionByteClaimableBalance, length: 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := make([]byte, tt.length)

			// Encode must refuse.
			_, err := strkey.Encode(tt.version, payload)
			var mismatch *strkey.LengthMismatchError
			if !errors.As(err, &mismatch) {
				t.Fatalf("Encode: got %v, want LengthMismatchError", err)
			}

			// A hand-built input with a valid checksum but the wrong
			// payload length must fail the same way on decode.
			body := append([]byte{byte(tt.version)}, payload...)
			full := binary.LittleEndian.AppendUint16(body, crc16.Checksum(body))
			_, _, err = strkey.DecodeAny(base32Raw.EncodeToString(full))
			if !errors.As(err, &mismatch) {
				t.Fatalf("DecodeAny: got %v, want LengthMismatchError", err)
			}
		})
	}
}

func TestEncodeClaimableBalanceUnknownSubType(t *testing.T) {
	payload := append([]byte{1}, make([]byte, 32)...)
	_, err := strkey.Encode(strkey.VersionByteClaimableBalance, payload)
	var mismatch *strkey.LengthMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Encode: got %v, want LengthMismatchError", err)
	}
}

func TestMuxedAccountRoundTrip(t *testing.T) {
	account := strkey.MuxedAccount{ID: 9223372036854775808}
	for i := range account.Ed25519 {
		account.Ed25519[i] = byte(i)
	}
	encoded, err := strkey.EncodeMuxedAccount(account)
	if err != nil {
		t.Fatalf("EncodeMuxedAccount: %v", err)
	}
	if encoded[0] != 'M' {
		t.Errorf("leading character = %c, want M", encoded[0])
	}
	got, err := strkey.DecodeMuxedAccount(encoded)
	if err != nil {
		t.Fatalf("DecodeMuxedAccount: %v", err)
	}
	if got != account {
		t.Errorf("round trip = %+v, want %+v", got, account)
	}
}

func TestSignedPayloadRoundTrip(t *testing.T) {
	for _, size := range []int{1, 3, 4, 29, 32, 63, 64} {
		sp := strkey.SignedPayload{Payload: make([]byte, size)}
		for i := range sp.Payload {
			sp.Payload[i] = byte(i + 1)
		}
		for i := range sp.Ed25519 {
			sp.Ed25519[i] = byte(255 - i)
		}
		encoded, err := strkey.EncodeSignedPayload(sp)
		if err != nil {
			t.Fatalf("EncodeSignedPayload(%d bytes): %v", size, err)
		}
		if encoded[0] != 'P' {
			t.Errorf("leading character = %c, want P", encoded[0])
		}
		got, err := strkey.DecodeSignedPayload(encoded)
		if err != nil {
			t.Fatalf("DecodeSignedPayload(%d bytes): %v", size, err)
		}
		if got.Ed25519 != sp.Ed25519 || !bytes.Equal(got.Payload, sp.Payload) {
			t.Errorf("round trip(%d bytes) = %+v, want %+v", size, got, sp)
		}
	}
}

func TestSignedPayloadBounds(t *testing.T) {
	var mismatch *strkey.LengthMismatchError

	_, err := strkey.EncodeSignedPayload(strkey.SignedPayload{})
	if !errors.As(err, &mismatch) {
		t.Fatalf("empty payload: got %v, want LengthMismatchError", err)
	}
	_, err = strkey.EncodeSignedPayload(strkey.SignedPayload{Payload: make([]byte, 65)})
	if !errors.As(err, &mismatch) {
		t.Fatalf("65-byte payload: got %v, want LengthMismatchError", err)
	}
}

// The embedded length field is attacker-controlled; it must be checked
// against the bytes actually present before any slicing happens.
func TestSignedPayloadEmbeddedLengthValidated(t *testing.T) {
	build := func(inner uint32, tail []byte) string {
		payload := make([]byte, 32)
		payload = binary.BigEndian.AppendUint32(payload, inner)
		payload = append(payload, tail...)
		body := append([]byte{byte(strkey.VersionByteSignedPayload)}, payload...)
		full := binary.LittleEndian.AppendUint16(body, crc16.Checksum(body))
		return base32Raw.EncodeToString(full)
	}

	var mismatch *strkey.LengthMismatchError
	tests := []struct {
		name  string
		inner uint32
		tail  []byte
	}{
		{name: "length-claims-more-than-present", inner: 12, tail: make([]byte, 8)},
		{name: "length-claims-less-than-present", inner: 4, tail: make([]byte, 8)},
		{name: "length-zero", inner: 0, tail: nil},
		{name: "length-huge", inner: 0xFFFFFFFF, tail: make([]byte, 64)},
		{name: "nonzero-padding", inner: 3, tail: []byte{1, 2, 3, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := strkey.DecodeSignedPayload(build(tt.inner, tt.tail))
			if !errors.As(err, &mismatch) {
				t.Fatalf("got %v, want LengthMismatchError", err)
			}
		})
	}
}
