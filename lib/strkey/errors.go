// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package strkey

import "fmt"

// UnknownVersionByteError reports a decoded version byte that does not
// correspond to any known entity kind, or an attempt to encode with
// one.
type UnknownVersionByteError struct {
	// VersionByte is the unrecognized value.
	VersionByte byte
}

func (err *UnknownVersionByteError) Error() string {
	return fmt.Sprintf("strkey: unknown version byte %#02x", err.VersionByte)
}

// ChecksumMismatchError reports a decoded key whose trailing CRC16
// does not match the checksum recomputed over its version byte and
// payload.
type ChecksumMismatchError struct {
	// Computed is the checksum recomputed from the decoded bytes.
	Computed uint16

	// Found is the checksum carried by the input.
	Found uint16
}

func (err *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("strkey: checksum mismatch: computed %#04x, found %#04x", err.Computed, err.Found)
}

// LengthMismatchError reports a payload whose length disagrees with
// what its version byte requires.
type LengthMismatchError struct {
	// VersionByte identifies the entity kind whose rule was violated.
	VersionByte VersionByte

	// Length is the offending payload length in bytes.
	Length int

	// Reason states the kind's requirement.
	Reason string
}

func (err *LengthMismatchError) Error() string {
	return fmt.Sprintf("strkey: payload length %d invalid for %s: %s",
		err.Length, err.VersionByte, err.Reason)
}

// MalformedEncodingError reports input that is not a canonical
// unpadded base32 string: lowercase or non-alphabet characters,
// padding, or nonzero unused trailing bits.
type MalformedEncodingError struct {
	// Reason describes what was malformed.
	Reason string
}

func (err *MalformedEncodingError) Error() string {
	return "strkey: malformed encoding: " + err.Reason
}
