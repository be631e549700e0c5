// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import (
	"bytes"
	"errors"
	"testing"
)

func TestReadUint32(t *testing.T) {
	d := NewDecoder([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	got, err := d.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32: %v", err)
	}
	if got != 0xDEADBEEF {
		t.Errorf("ReadUint32 = %#x, want 0xDEADBEEF", got)
	}
	if d.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", d.Remaining())
	}
}

func TestReadUnderflow(t *testing.T) {
	d := NewDecoder([]byte{1, 2})
	_, err := d.ReadUint32()
	var underflow *UnderflowError
	if !errors.As(err, &underflow) {
		t.Fatalf("ReadUint32 on 2 bytes: got %v, want UnderflowError", err)
	}
	if underflow.Requested != 4 || underflow.Remaining != 2 {
		t.Errorf("UnderflowError = %+v, want Requested 4 Remaining 2", underflow)
	}
}

func TestReadInt64Negative(t *testing.T) {
	d := NewDecoder(bytes.Repeat([]byte{0xFF}, 8))
	got, err := d.ReadInt64()
	if err != nil {
		t.Fatalf("ReadInt64: %v", err)
	}
	if got != -1 {
		t.Errorf("ReadInt64 = %d, want -1", got)
	}
}

func TestReadUint64NeverNegative(t *testing.T) {
	d := NewDecoder(bytes.Repeat([]byte{0xFF}, 8))
	got, err := d.ReadUint64()
	if err != nil {
		t.Fatalf("ReadUint64: %v", err)
	}
	if got != ^uint64(0) {
		t.Errorf("ReadUint64 = %d, want %d", got, ^uint64(0))
	}
}

func TestReadBoolAnyNonzeroIsTrue(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "zero", data: []byte{0, 0, 0, 0}, want: false},
		{name: "one", data: []byte{0, 0, 0, 1}, want: true},
		{name: "nonzero", data: []byte{0, 0, 0, 99}, want: true},
		{name: "high-bit", data: []byte{0x80, 0, 0, 0}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(tt.data)
			got, err := d.ReadBool()
			if err != nil {
				t.Fatalf("ReadBool: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadBool(%x) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestReadFixedOpaqueDiscardsPadding(t *testing.T) {
	// Padding bytes are consumed but not validated.
	d := NewDecoder([]byte{1, 2, 3, 0xFF})
	got, err := d.ReadFixedOpaque(3)
	if err != nil {
		t.Fatalf("ReadFixedOpaque: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("ReadFixedOpaque = %x, want 010203", got)
	}
	if d.Remaining() != 0 {
		t.Errorf("padding not consumed: %d bytes remain", d.Remaining())
	}
}

func TestReadOpaqueLengthCheckedBeforePayload(t *testing.T) {
	// Length prefix of 65 with max 64: must fail from the prefix
	// alone. Only the 4 prefix bytes may be consumed.
	input := append([]byte{0, 0, 0, 65}, make([]byte, 68)...)
	d := NewDecoder(input)
	_, err := d.ReadOpaque(64)
	var lengthErr *LengthExceededError
	if !errors.As(err, &lengthErr) {
		t.Fatalf("ReadOpaque: got %v, want LengthExceededError", err)
	}
	if lengthErr.Length != 65 || lengthErr.Max != 64 {
		t.Errorf("LengthExceededError = %+v, want Length 65 Max 64", lengthErr)
	}
	if got := len(input) - d.Remaining(); got != 4 {
		t.Errorf("decoder consumed %d bytes, want 4 (prefix only)", got)
	}
}

func TestReadOpaqueDeclaredCountPastEnd(t *testing.T) {
	// A declared length larger than the remaining stream must fail
	// with underflow, not return a short value.
	d := NewDecoder([]byte{0, 0, 0, 8, 1, 2, 3})
	_, err := d.ReadOpaque(64)
	var underflow *UnderflowError
	if !errors.As(err, &underflow) {
		t.Fatalf("ReadOpaque: got %v, want UnderflowError", err)
	}
}

func TestReadStringRejectsInvalidUTF8(t *testing.T) {
	d := NewDecoder([]byte{0, 0, 0, 2, 0xFF, 0xFE, 0, 0})
	_, err := d.ReadString(28)
	var malformed *MalformedEncodingError
	if !errors.As(err, &malformed) {
		t.Fatalf("ReadString: got %v, want MalformedEncodingError", err)
	}
}

func TestUnmarshalRejectsTrailingBytes(t *testing.T) {
	e := NewEncoder()
	e.WriteUint64(42)
	e.WriteUint64(7)
	data := e.Bytes()

	var p UInt128Parts // consumes exactly 16 bytes
	if err := Unmarshal(data, &p); err != nil {
		t.Fatalf("Unmarshal exact: %v", err)
	}
	err := Unmarshal(append(data, 0), &p)
	var malformed *MalformedEncodingError
	if !errors.As(err, &malformed) {
		t.Fatalf("Unmarshal with trailing byte: got %v, want MalformedEncodingError", err)
	}
}

func TestUnmarshalBase64Invalid(t *testing.T) {
	var p UInt128Parts
	err := UnmarshalBase64("not!!valid!!base64", &p)
	var malformed *MalformedEncodingError
	if !errors.As(err, &malformed) {
		t.Fatalf("UnmarshalBase64: got %v, want MalformedEncodingError", err)
	}
}
