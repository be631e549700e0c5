// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Decoder is a cursor-based byte source consuming XDR input strictly
// in order. Reads past the end of the input fail with
// [UnderflowError]; variable-length reads validate the length prefix
// against the field's declared maximum before consuming any payload
// byte.
//
// Not safe for concurrent use; create one per decode operation.
type Decoder struct {
	data   []byte
	offset int
}

// NewDecoder returns a Decoder reading from data. The Decoder does not
// copy data; the caller must not mutate it during decoding.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Remaining returns the number of unconsumed bytes.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.offset
}

// read consumes exactly n bytes, failing with UnderflowError when
// fewer remain. The returned slice aliases the input.
func (d *Decoder) read(n int) ([]byte, error) {
	if remaining := d.Remaining(); n > remaining {
		return nil, &UnderflowError{Requested: n, Remaining: remaining}
	}
	b := d.data[d.offset : d.offset+n]
	d.offset += n
	return b, nil
}

// ReadUint32 reads a 4-byte big-endian unsigned integer.
func (d *Decoder) ReadUint32() (uint32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadInt32 reads a 4-byte big-endian two's-complement integer.
func (d *Decoder) ReadInt32() (int32, error) {
	v, err := d.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads an 8-byte big-endian unsigned integer. The result
// is never negative; the full 64-bit range maps onto uint64.
func (d *Decoder) ReadUint64() (uint64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadInt64 reads an 8-byte big-endian two's-complement integer. The
// result may be negative when the high limb has its top bit set.
func (d *Decoder) ReadInt64() (int64, error) {
	v, err := d.ReadUint64()
	return int64(v), err
}

// ReadBool reads a uint32-framed boolean. Any nonzero value decodes as
// true.
func (d *Decoder) ReadBool() (bool, error) {
	v, err := d.ReadUint32()
	return v != 0, err
}

// ReadFixedOpaque reads n raw bytes plus padding to the next 4-byte
// boundary. Padding bytes are discarded without validating their
// value. The result is a copy and does not alias the input.
func (d *Decoder) ReadFixedOpaque(n int) ([]byte, error) {
	b, err := d.read(n + pad(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadOpaque reads a uint32 length prefix and that many bytes plus
// padding. Fails with [LengthExceededError] when the prefix exceeds
// max, before any payload byte is consumed.
func (d *Decoder) ReadOpaque(max uint32) ([]byte, error) {
	length, err := d.ReadLength(max)
	if err != nil {
		return nil, err
	}
	return d.ReadFixedOpaque(int(length))
}

// ReadString reads a string with opaque framing and validates that the
// content is well-formed UTF-8, failing with [MalformedEncodingError]
// otherwise.
func (d *Decoder) ReadString(max uint32) (string, error) {
	b, err := d.ReadOpaque(max)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &MalformedEncodingError{Reason: "string content is not valid UTF-8"}
	}
	return string(b), nil
}

// ReadLength reads the uint32 element-count prefix of a variable
// sequence, failing with [LengthExceededError] when it exceeds max.
func (d *Decoder) ReadLength(max uint32) (uint32, error) {
	length, err := d.ReadUint32()
	if err != nil {
		return 0, err
	}
	if length > max {
		return 0, &LengthExceededError{Length: length, Max: max}
	}
	return length, nil
}

// ReadPresence reads the uint32 presence flag of an optional value.
// Mirrors bool semantics: any nonzero flag means present.
func (d *Decoder) ReadPresence() (bool, error) {
	return d.ReadBool()
}

// finish verifies the input was fully consumed. Called by [Unmarshal]
// after the top-level value decodes.
func (d *Decoder) finish() error {
	if remaining := d.Remaining(); remaining != 0 {
		return &MalformedEncodingError{
			Reason: fmt.Sprintf("%d trailing bytes after value", remaining),
		}
	}
	return nil
}

// pad returns the number of zero bytes that follow an item of the
// given length to reach the next 4-byte boundary.
func pad(n int) int {
	return (4 - n%4) % 4
}
