// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import (
	"errors"
	"testing"
)

func TestSCValScalarRoundTrip(t *testing.T) {
	values := []SCVal{
		SCBool{B: true},
		SCBool{B: false},
		SCVoid{},
		SCU32{V: 0xFFFFFFFF},
		SCI32{V: -2147483648},
		SCU64{V: 0xFFFFFFFFFFFFFFFF},
		SCI64{V: -1},
		SCTimePoint{V: 1767225600},
		SCDuration{V: 3600},
		SCU128{V: UInt128Parts{Hi: 1, Lo: 2}},
		SCI128{V: Int128Parts{Hi: -1, Lo: 0xFFFFFFFFFFFFFFFF}},
		SCU256{V: UInt256Parts{HiHi: 1, LoLo: 4}},
		SCI256{V: Int256Parts{HiHi: -1, HiLo: 0xFFFFFFFFFFFFFFFF, LoHi: 0xFFFFFFFFFFFFFFFF, LoLo: 0xFFFFFFFFFFFFFFFF}},
		SCBytes{V: []byte{1, 2, 3}},
		SCString{V: "hello"},
		SCSymbol{V: "transfer"},
	}
	for _, v := range values {
		roundTripUnion(t, v, DecodeSCVal)
	}
}

func TestSCValNestedRoundTrip(t *testing.T) {
	inner := SCVec{SCU32{V: 1}, SCString{V: "two"}, SCVoid{}}
	vec := SCVec{
		SCValVec{Vec: &inner},
		SCI128{V: Int128Parts{Hi: 1, Lo: 2}},
	}
	entries := SCMap{
		{Key: SCSymbol{V: "amount"}, Val: SCI64{V: 100}},
		{Key: SCSymbol{V: "items"}, Val: SCValVec{Vec: &vec}},
		{Key: SCSymbol{V: "owner"}, Val: SCValAddress{
			Address: SCAddressAccount{AccountID: testIssuer},
		}},
	}
	roundTripUnion(t, SCVal(SCValMap{Map: &entries}), DecodeSCVal)
}

func TestSCValAbsentVecAndMap(t *testing.T) {
	// The vec and map arms are optional: a nil body encodes as
	// discriminant + absent flag.
	roundTripUnion(t, SCVal(SCValVec{}), DecodeSCVal)
	roundTripUnion(t, SCVal(SCValMap{}), DecodeSCVal)
}

func TestSCAddressRoundTrip(t *testing.T) {
	addresses := []SCAddress{
		SCAddressAccount{AccountID: testIssuer},
		SCAddressContract{ContractID: Hash(testKey)},
	}
	for _, address := range addresses {
		roundTripUnion(t, address, DecodeSCAddress)
	}
}

func TestSCValUnknownDiscriminant(t *testing.T) {
	// 2 is the host error variant, outside this package's closed set.
	for _, disc := range []byte{2, 19, 200} {
		_, err := DecodeSCVal(NewDecoder([]byte{0, 0, 0, disc}))
		var unknown *UnknownDiscriminantError
		if !errors.As(err, &unknown) {
			t.Fatalf("DecodeSCVal(%d): got %v, want UnknownDiscriminantError", disc, err)
		}
	}
}

func TestSCSymbolOverMax(t *testing.T) {
	_, err := Marshal(SCSymbol{V: "a_symbol_name_well_over_thirty_two_bytes_long"})
	var lengthErr *LengthExceededError
	if !errors.As(err, &lengthErr) {
		t.Fatalf("Marshal oversized symbol: got %v, want LengthExceededError", err)
	}
}

func TestSCValVecDeclaredCountPastEnd(t *testing.T) {
	// vec arm claiming 1000 elements with an empty stream behind it:
	// must fail with underflow, not fabricate elements.
	data := []byte{
		0, 0, 0, 16, // SCV_VEC
		0, 0, 0, 1, // present
		0, 0, 3, 0xE8, // count 1000
	}
	_, err := DecodeSCVal(NewDecoder(data))
	var underflow *UnderflowError
	if !errors.As(err, &underflow) {
		t.Fatalf("DecodeSCVal: got %v, want UnderflowError", err)
	}
}
