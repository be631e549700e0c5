// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import "math"

// SCValType discriminates SCVal, the smart-contract value union. Wire
// values match the network protocol; the error variant (wire value 2)
// is host-internal and not part of this package's closed set.
type SCValType int32

const (
	SCValTypeBool      SCValType = 0
	SCValTypeVoid      SCValType = 1
	SCValTypeU32       SCValType = 3
	SCValTypeI32       SCValType = 4
	SCValTypeU64       SCValType = 5
	SCValTypeI64       SCValType = 6
	SCValTypeTimePoint SCValType = 7
	SCValTypeDuration  SCValType = 8
	SCValTypeU128      SCValType = 9
	SCValTypeI128      SCValType = 10
	SCValTypeU256      SCValType = 11
	SCValTypeI256      SCValType = 12
	SCValTypeBytes     SCValType = 13
	SCValTypeString    SCValType = 14
	SCValTypeSymbol    SCValType = 15
	SCValTypeVec       SCValType = 16
	SCValTypeMap       SCValType = 17
	SCValTypeAddress   SCValType = 18
)

// SymbolMaxLength is the maximum byte length of a contract symbol.
const SymbolMaxLength = 32

// unboundedMax is the effective maximum for opaque<> / string<> fields
// declared without a bound: the uint32 length prefix is the only limit.
const unboundedMax = math.MaxUint32

// SCVal is a smart-contract value: scalars, byte blobs, and
// recursively nested vectors and maps.
type SCVal interface {
	Encodable
	// SCValType returns the discriminant selecting this arm.
	SCValType() SCValType
	isSCVal()
}

// SCBool is a boolean contract value.
type SCBool struct{ B bool }

func (SCBool) SCValType() SCValType { return SCValTypeBool }
func (SCBool) isSCVal()             {}

// EncodeTo writes the discriminant and the boolean.
func (v SCBool) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeBool))
	e.WriteBool(v.B)
	return nil
}

// SCVoid is the void arm: the discriminant is all there is.
type SCVoid struct{}

func (SCVoid) SCValType() SCValType { return SCValTypeVoid }
func (SCVoid) isSCVal()             {}

// EncodeTo writes the discriminant only.
func (SCVoid) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeVoid))
	return nil
}

// SCU32 is an unsigned 32-bit contract value.
type SCU32 struct{ V uint32 }

func (SCU32) SCValType() SCValType { return SCValTypeU32 }
func (SCU32) isSCVal()             {}

// EncodeTo writes the discriminant and the value.
func (v SCU32) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeU32))
	e.WriteUint32(v.V)
	return nil
}

// SCI32 is a signed 32-bit contract value.
type SCI32 struct{ V int32 }

func (SCI32) SCValType() SCValType { return SCValTypeI32 }
func (SCI32) isSCVal()             {}

// EncodeTo writes the discriminant and the value.
func (v SCI32) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeI32))
	e.WriteInt32(v.V)
	return nil
}

// SCU64 is an unsigned 64-bit contract value.
type SCU64 struct{ V uint64 }

func (SCU64) SCValType() SCValType { return SCValTypeU64 }
func (SCU64) isSCVal()             {}

// EncodeTo writes the discriminant and the value.
func (v SCU64) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeU64))
	e.WriteUint64(v.V)
	return nil
}

// SCI64 is a signed 64-bit contract value.
type SCI64 struct{ V int64 }

func (SCI64) SCValType() SCValType { return SCValTypeI64 }
func (SCI64) isSCVal()             {}

// EncodeTo writes the discriminant and the value.
func (v SCI64) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeI64))
	e.WriteInt64(v.V)
	return nil
}

// SCTimePoint is a uint64 count of seconds since the Unix epoch.
type SCTimePoint struct{ V uint64 }

func (SCTimePoint) SCValType() SCValType { return SCValTypeTimePoint }
func (SCTimePoint) isSCVal()             {}

// EncodeTo writes the discriminant and the value.
func (v SCTimePoint) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeTimePoint))
	e.WriteUint64(v.V)
	return nil
}

// SCDuration is a uint64 count of seconds.
type SCDuration struct{ V uint64 }

func (SCDuration) SCValType() SCValType { return SCValTypeDuration }
func (SCDuration) isSCVal()             {}

// EncodeTo writes the discriminant and the value.
func (v SCDuration) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeDuration))
	e.WriteUint64(v.V)
	return nil
}

// SCU128 is an unsigned 128-bit contract value.
type SCU128 struct{ V UInt128Parts }

func (SCU128) SCValType() SCValType { return SCValTypeU128 }
func (SCU128) isSCVal()             {}

// EncodeTo writes the discriminant and the limbs.
func (v SCU128) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeU128))
	return v.V.EncodeTo(e)
}

// SCI128 is a signed 128-bit contract value.
type SCI128 struct{ V Int128Parts }

func (SCI128) SCValType() SCValType { return SCValTypeI128 }
func (SCI128) isSCVal()             {}

// EncodeTo writes the discriminant and the limbs.
func (v SCI128) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeI128))
	return v.V.EncodeTo(e)
}

// SCU256 is an unsigned 256-bit contract value.
type SCU256 struct{ V UInt256Parts }

func (SCU256) SCValType() SCValType { return SCValTypeU256 }
func (SCU256) isSCVal()             {}

// EncodeTo writes the discriminant and the limbs.
func (v SCU256) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeU256))
	return v.V.EncodeTo(e)
}

// SCI256 is a signed 256-bit contract value.
type SCI256 struct{ V Int256Parts }

func (SCI256) SCValType() SCValType { return SCValTypeI256 }
func (SCI256) isSCVal()             {}

// EncodeTo writes the discriminant and the limbs.
func (v SCI256) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeI256))
	return v.V.EncodeTo(e)
}

// SCBytes is an unbounded byte blob.
type SCBytes struct{ V []byte }

func (SCBytes) SCValType() SCValType { return SCValTypeBytes }
func (SCBytes) isSCVal()             {}

// EncodeTo writes the discriminant and the variable-length bytes.
func (v SCBytes) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeBytes))
	return e.WriteOpaque(v.V, unboundedMax)
}

// SCString is an unbounded string.
type SCString struct{ V string }

func (SCString) SCValType() SCValType { return SCValTypeString }
func (SCString) isSCVal()             {}

// EncodeTo writes the discriminant and the variable-length string.
func (v SCString) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeString))
	return e.WriteString(v.V, unboundedMax)
}

// SCSymbol is a short identifier of at most 32 bytes.
type SCSymbol struct{ V string }

func (SCSymbol) SCValType() SCValType { return SCValTypeSymbol }
func (SCSymbol) isSCVal()             {}

// EncodeTo writes the discriminant and the bounded string.
func (v SCSymbol) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeSymbol))
	return e.WriteString(v.V, SymbolMaxLength)
}

// SCVec is an ordered list of contract values.
type SCVec []SCVal

// SCValVec is the vec arm. The vector itself is optional on the wire
// (a nil Vec is a present discriminant with an absent body).
type SCValVec struct {
	Vec *SCVec
}

func (SCValVec) SCValType() SCValType { return SCValTypeVec }
func (SCValVec) isSCVal()             {}

// EncodeTo writes the discriminant, the presence flag, and the
// elements.
func (v SCValVec) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeVec))
	e.WritePresence(v.Vec != nil)
	if v.Vec == nil {
		return nil
	}
	if err := e.WriteLength(len(*v.Vec), unboundedMax); err != nil {
		return err
	}
	for _, item := range *v.Vec {
		if err := item.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

// SCMapEntry is one key/value pair of an SCMap.
type SCMapEntry struct {
	Key SCVal
	Val SCVal
}

// EncodeTo writes key then value.
func (m SCMapEntry) EncodeTo(e *Encoder) error {
	if err := m.Key.EncodeTo(e); err != nil {
		return err
	}
	return m.Val.EncodeTo(e)
}

// DecodeFrom reads key then value.
func (m *SCMapEntry) DecodeFrom(d *Decoder) error {
	var err error
	if m.Key, err = DecodeSCVal(d); err != nil {
		return err
	}
	m.Val, err = DecodeSCVal(d)
	return err
}

// SCMap is an ordered list of key/value pairs. Ordering and key
// uniqueness are host-level rules, not enforced by the codec.
type SCMap []SCMapEntry

// SCValMap is the map arm. Like vec, the map body is optional.
type SCValMap struct {
	Map *SCMap
}

func (SCValMap) SCValType() SCValType { return SCValTypeMap }
func (SCValMap) isSCVal()             {}

// EncodeTo writes the discriminant, the presence flag, and the
// entries.
func (v SCValMap) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeMap))
	e.WritePresence(v.Map != nil)
	if v.Map == nil {
		return nil
	}
	if err := e.WriteLength(len(*v.Map), unboundedMax); err != nil {
		return err
	}
	for _, entry := range *v.Map {
		if err := entry.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

// SCAddressType discriminates SCAddress.
type SCAddressType int32

const (
	SCAddressTypeAccount  SCAddressType = 0
	SCAddressTypeContract SCAddressType = 1
)

// SCAddress is a contract-visible address: a classic account or a
// contract instance.
type SCAddress interface {
	Encodable
	// SCAddressType returns the discriminant selecting this arm.
	SCAddressType() SCAddressType
	isSCAddress()
}

// SCAddressAccount addresses a classic account.
type SCAddressAccount struct {
	AccountID AccountID
}

func (SCAddressAccount) SCAddressType() SCAddressType { return SCAddressTypeAccount }
func (SCAddressAccount) isSCAddress()                 {}

// EncodeTo writes the discriminant and the account ID.
func (a SCAddressAccount) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCAddressTypeAccount))
	return a.AccountID.EncodeTo(e)
}

// SCAddressContract addresses a contract instance by its 32-byte ID.
type SCAddressContract struct {
	ContractID Hash
}

func (SCAddressContract) SCAddressType() SCAddressType { return SCAddressTypeContract }
func (SCAddressContract) isSCAddress()                 {}

// EncodeTo writes the discriminant and the contract ID.
func (a SCAddressContract) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCAddressTypeContract))
	return a.ContractID.EncodeTo(e)
}

// DecodeSCAddress reads an SCAddress union.
func DecodeSCAddress(d *Decoder) (SCAddress, error) {
	disc, err := d.ReadInt32()
	if err != nil {
		return nil, err
	}
	switch SCAddressType(disc) {
	case SCAddressTypeAccount:
		var a SCAddressAccount
		if err := a.AccountID.DecodeFrom(d); err != nil {
			return nil, err
		}
		return a, nil
	case SCAddressTypeContract:
		var a SCAddressContract
		if err := a.ContractID.DecodeFrom(d); err != nil {
			return nil, err
		}
		return a, nil
	}
	return nil, &UnknownDiscriminantError{Type: "SCAddress", Discriminant: disc}
}

// SCValAddress is the address arm of SCVal.
type SCValAddress struct {
	Address SCAddress
}

func (SCValAddress) SCValType() SCValType { return SCValTypeAddress }
func (SCValAddress) isSCVal()             {}

// EncodeTo writes the discriminant and the address union.
func (v SCValAddress) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SCValTypeAddress))
	return v.Address.EncodeTo(e)
}

// DecodeSCVal reads an SCVal union, recursing through vec and map
// arms. Recursion depth is bounded by the input length: every nested
// value consumes at least four bytes of discriminant.
func DecodeSCVal(d *Decoder) (SCVal, error) {
	disc, err := d.ReadInt32()
	if err != nil {
		return nil, err
	}
	switch SCValType(disc) {
	case SCValTypeBool:
		var v SCBool
		if v.B, err = d.ReadBool(); err != nil {
			return nil, err
		}
		return v, nil
	case SCValTypeVoid:
		return SCVoid{}, nil
	case SCValTypeU32:
		var v SCU32
		if v.V, err = d.ReadUint32(); err != nil {
			return nil, err
		}
		return v, nil
	case SCValTypeI32:
		var v SCI32
		if v.V, err = d.ReadInt32(); err != nil {
			return nil, err
		}
		return v, nil
	case SCValTypeU64:
		var v SCU64
		if v.V, err = d.ReadUint64(); err != nil {
			return nil, err
		}
		return v, nil
	case SCValTypeI64:
		var v SCI64
		if v.V, err = d.ReadInt64(); err != nil {
			return nil, err
		}
		return v, nil
	case SCValTypeTimePoint:
		var v SCTimePoint
		if v.V, err = d.ReadUint64(); err != nil {
			return nil, err
		}
		return v, nil
	case SCValTypeDuration:
		var v SCDuration
		if v.V, err = d.ReadUint64(); err != nil {
			return nil, err
		}
		return v, nil
	case SCValTypeU128:
		var v SCU128
		if err := v.V.DecodeFrom(d); err != nil {
			return nil, err
		}
		return v, nil
	case SCValTypeI128:
		var v SCI128
		if err := v.V.DecodeFrom(d); err != nil {
			return nil, err
		}
		return v, nil
	case SCValTypeU256:
		var v SCU256
		if err := v.V.DecodeFrom(d); err != nil {
			return nil, err
		}
		return v, nil
	case SCValTypeI256:
		var v SCI256
		if err := v.V.DecodeFrom(d); err != nil {
			return nil, err
		}
		return v, nil
	case SCValTypeBytes:
		var v SCBytes
		if v.V, err = d.ReadOpaque(unboundedMax); err != nil {
			return nil, err
		}
		return v, nil
	case SCValTypeString:
		var v SCString
		if v.V, err = d.ReadString(unboundedMax); err != nil {
			return nil, err
		}
		return v, nil
	case SCValTypeSymbol:
		var v SCSymbol
		if v.V, err = d.ReadString(SymbolMaxLength); err != nil {
			return nil, err
		}
		return v, nil
	case SCValTypeVec:
		return decodeSCValVec(d)
	case SCValTypeMap:
		return decodeSCValMap(d)
	case SCValTypeAddress:
		var v SCValAddress
		if v.Address, err = DecodeSCAddress(d); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, &UnknownDiscriminantError{Type: "SCVal", Discriminant: disc}
}

func decodeSCValVec(d *Decoder) (SCVal, error) {
	present, err := d.ReadPresence()
	if err != nil {
		return nil, err
	}
	var v SCValVec
	if !present {
		return v, nil
	}
	count, err := d.ReadLength(unboundedMax)
	if err != nil {
		return nil, err
	}
	vec := make(SCVec, 0, min(int(count), d.Remaining()/4))
	for i := uint32(0); i < count; i++ {
		item, err := DecodeSCVal(d)
		if err != nil {
			return nil, err
		}
		vec = append(vec, item)
	}
	v.Vec = &vec
	return v, nil
}

func decodeSCValMap(d *Decoder) (SCVal, error) {
	present, err := d.ReadPresence()
	if err != nil {
		return nil, err
	}
	var v SCValMap
	if !present {
		return v, nil
	}
	count, err := d.ReadLength(unboundedMax)
	if err != nil {
		return nil, err
	}
	entries := make(SCMap, 0, min(int(count), d.Remaining()/8))
	for i := uint32(0); i < count; i++ {
		var entry SCMapEntry
		if err := entry.DecodeFrom(d); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	v.Map = &entries
	return v, nil
}
