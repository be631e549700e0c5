// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package strkey implements the StrKey text encoding: the checksummed,
// base32 ASCII form used to transcribe raw key and identifier bytes
// safely by hand. An encoded key is
//
//	base32(versionByte ++ payload ++ crc16(versionByte ++ payload))
//
// using the unpadded RFC 4648 standard alphabet, with the CRC16-XMODEM
// checksum appended little-endian. The version byte determines the
// leading character of the output and the expected payload layout:
//
//	G  account ID          32-byte ed25519 public key
//	S  secret seed         32-byte ed25519 seed
//	T  pre-auth tx         32-byte transaction hash
//	X  sha256 hash         32-byte hash preimage commitment
//	M  muxed account       32-byte key + 8-byte big-endian account ID
//	P  signed payload      32-byte key + length-prefixed payload ≤ 64
//	C  contract            32-byte contract ID
//	L  liquidity pool      32-byte pool ID
//	B  claimable balance   1-byte sub-type + 32-byte hash
//
// Decoding is strict: only canonical encodings are accepted. Lowercase
// input, padding characters, non-alphabet characters, and encodings
// whose unused trailing bits are nonzero all fail with
// [MalformedEncodingError] rather than being normalized. A corrupted
// checksum fails with [ChecksumMismatchError], an unrecognized version
// byte with [UnknownVersionByteError], and a payload whose length does
// not fit its kind with [LengthMismatchError]. Decode errors never
// return a partial payload.
package strkey
