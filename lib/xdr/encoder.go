// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import "encoding/binary"

// Encoder is an append-only byte sink producing XDR output. All
// fixed-width integers are written big-endian, and every item is
// padded to a 4-byte boundary, so the buffer length is a multiple of
// 4 after every write.
//
// The zero value is ready to use. Not safe for concurrent use; create
// one per encode operation.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the encoded output. The slice aliases the Encoder's
// internal buffer; further writes may invalidate it.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// WriteUint32 writes a 4-byte big-endian unsigned integer.
func (e *Encoder) WriteUint32(v uint32) {
	e.buf = binary.BigEndian.AppendUint32(e.buf, v)
}

// WriteInt32 writes a 4-byte big-endian two's-complement integer.
func (e *Encoder) WriteInt32(v int32) {
	e.WriteUint32(uint32(v))
}

// WriteUint64 writes an 8-byte big-endian unsigned integer (two
// 32-bit limbs, high first).
func (e *Encoder) WriteUint64(v uint64) {
	e.buf = binary.BigEndian.AppendUint64(e.buf, v)
}

// WriteInt64 writes an 8-byte big-endian two's-complement integer.
func (e *Encoder) WriteInt64(v int64) {
	e.WriteUint64(uint64(v))
}

// WriteBool writes a boolean as a uint32, emitting only 0 or 1.
func (e *Encoder) WriteBool(v bool) {
	if v {
		e.WriteUint32(1)
	} else {
		e.WriteUint32(0)
	}
}

// WriteFixedOpaque writes len(b) raw bytes followed by zero padding to
// the next 4-byte boundary. The length is fixed by the field's type
// declaration and is not written to the stream.
func (e *Encoder) WriteFixedOpaque(b []byte) {
	e.buf = append(e.buf, b...)
	e.pad(len(b))
}

// WriteOpaque writes a uint32 length prefix, the bytes of b, and zero
// padding to the next 4-byte boundary. Fails with [LengthExceededError]
// before writing anything when len(b) exceeds max.
func (e *Encoder) WriteOpaque(b []byte, max uint32) error {
	if uint64(len(b)) > uint64(max) {
		return &LengthExceededError{Length: uint32(len(b)), Max: max}
	}
	e.WriteUint32(uint32(len(b)))
	e.WriteFixedOpaque(b)
	return nil
}

// WriteString writes a string with the same framing as WriteOpaque:
// uint32 byte length, content, zero padding. Fails with
// [LengthExceededError] when the byte length exceeds max.
func (e *Encoder) WriteString(s string, max uint32) error {
	if uint64(len(s)) > uint64(max) {
		return &LengthExceededError{Length: uint32(len(s)), Max: max}
	}
	e.WriteUint32(uint32(len(s)))
	e.buf = append(e.buf, s...)
	e.pad(len(s))
	return nil
}

// WriteLength writes the uint32 element-count prefix of a variable
// sequence. Fails with [LengthExceededError] when n exceeds max.
func (e *Encoder) WriteLength(n int, max uint32) error {
	if uint64(n) > uint64(max) {
		return &LengthExceededError{Length: uint32(n), Max: max}
	}
	e.WriteUint32(uint32(n))
	return nil
}

// WritePresence writes the uint32 presence flag of an optional value:
// 1 when present, 0 when absent.
func (e *Encoder) WritePresence(present bool) {
	e.WriteBool(present)
}

// pad appends zero bytes to bring an item of the given length to the
// next 4-byte boundary.
func (e *Encoder) pad(length int) {
	for i := length % 4; i != 0 && i < 4; i++ {
		e.buf = append(e.buf, 0)
	}
}
