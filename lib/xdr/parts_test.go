// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import (
	"bytes"
	"testing"
)

func TestInt128PartsWireLayout(t *testing.T) {
	p := Int128Parts{Hi: -1, Lo: 0xFFFFFFFFFFFFFFFF} // value -1
	data, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(data, bytes.Repeat([]byte{0xFF}, 16)) {
		t.Errorf("Int128Parts(-1) = %x, want all FF", data)
	}
	var got Int128Parts
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != p {
		t.Errorf("round trip = %+v, want %+v", got, p)
	}
}

func TestInt128PartsBig(t *testing.T) {
	tests := []struct {
		name string
		p    Int128Parts
		want string
	}{
		{name: "zero", p: Int128Parts{}, want: "0"},
		{name: "one", p: Int128Parts{Lo: 1}, want: "1"},
		{name: "minus-one", p: Int128Parts{Hi: -1, Lo: 0xFFFFFFFFFFFFFFFF}, want: "-1"},
		{name: "2^64", p: Int128Parts{Hi: 1, Lo: 0}, want: "18446744073709551616"},
		{
			name: "min",
			p:    Int128Parts{Hi: -0x8000000000000000, Lo: 0},
			want: "-170141183460469231731687303715884105728",
		},
		{
			name: "max",
			p:    Int128Parts{Hi: 0x7FFFFFFFFFFFFFFF, Lo: 0xFFFFFFFFFFFFFFFF},
			want: "170141183460469231731687303715884105727",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestUInt128PartsBigNeverNegative(t *testing.T) {
	p := UInt128Parts{Hi: 0xFFFFFFFFFFFFFFFF, Lo: 0xFFFFFFFFFFFFFFFF}
	if got, want := p.String(), "340282366920938463463374607431768211455"; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
	if p.Big().Sign() < 0 {
		t.Error("unsigned value reported negative")
	}
}

func TestInt256PartsRoundTrip(t *testing.T) {
	p := Int256Parts{
		HiHi: -2,
		HiLo: 0x0123456789ABCDEF,
		LoHi: 0xFEDCBA9876543210,
		LoLo: 42,
	}
	data, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) != 32 {
		t.Fatalf("encoded length = %d, want 32", len(data))
	}
	var got Int256Parts
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != p {
		t.Errorf("round trip = %+v, want %+v", got, p)
	}
}

func TestUInt256PartsBig(t *testing.T) {
	p := UInt256Parts{HiHi: 1} // 2^192
	want := "6277101735386680763835789423207666416102355444464034512896"
	if got := p.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}
