// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import "fmt"

// UnderflowError reports a read past the end of the input. The decoder
// needed more bytes than the stream had left.
type UnderflowError struct {
	// Requested is the number of bytes the decoder asked for.
	Requested int

	// Remaining is the number of bytes that were actually left.
	Remaining int
}

func (err *UnderflowError) Error() string {
	return fmt.Sprintf("xdr: input underflow: need %d bytes, %d remaining", err.Requested, err.Remaining)
}

// LengthExceededError reports a variable-length item whose declared or
// actual length is over the maximum its type allows. On decode it is
// raised from the length prefix alone, before any payload byte is
// consumed; on encode it is raised before any byte is written.
type LengthExceededError struct {
	// Length is the offending length.
	Length uint32

	// Max is the maximum the field's declaration allows.
	Max uint32
}

func (err *LengthExceededError) Error() string {
	return fmt.Sprintf("xdr: length %d exceeds maximum %d", err.Length, err.Max)
}

// UnknownDiscriminantError reports a union discriminant or enum value
// outside the type's closed set. Raised on decode for hostile or
// newer-protocol input, and on encode when a caller constructs an enum
// value that is not one of the declared constants.
type UnknownDiscriminantError struct {
	// Type is the XDR type name whose set was violated.
	Type string

	// Discriminant is the rejected value.
	Discriminant int32
}

func (err *UnknownDiscriminantError) Error() string {
	return fmt.Sprintf("xdr: unknown discriminant %d for %s", err.Discriminant, err.Type)
}

// MalformedEncodingError reports structurally invalid input that is not
// covered by a more specific error: non-UTF-8 string content, trailing
// bytes after a complete top-level value, or undecodable base64.
type MalformedEncodingError struct {
	// Reason describes what was malformed.
	Reason string
}

func (err *MalformedEncodingError) Error() string {
	return "xdr: malformed encoding: " + err.Reason
}
