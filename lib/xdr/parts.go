// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import "math/big"

// 128- and 256-bit wire integers are fixed-width, never
// variable-precision, so they are represented as fixed limb structs
// rather than big.Int. On the wire each limb is big-endian, limbs
// high to low. The Big conversions exist for display and arithmetic
// at the edges, not for encoding.

// Int128Parts is a signed 128-bit integer: Hi carries the sign.
type Int128Parts struct {
	Hi int64
	Lo uint64
}

// EncodeTo writes the two limbs, high first.
func (p Int128Parts) EncodeTo(e *Encoder) error {
	e.WriteInt64(p.Hi)
	e.WriteUint64(p.Lo)
	return nil
}

// DecodeFrom reads the two limbs, high first.
func (p *Int128Parts) DecodeFrom(d *Decoder) error {
	var err error
	if p.Hi, err = d.ReadInt64(); err != nil {
		return err
	}
	p.Lo, err = d.ReadUint64()
	return err
}

// Big returns the value as a big.Int.
func (p Int128Parts) Big() *big.Int {
	v := new(big.Int).SetInt64(p.Hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(p.Lo))
}

// String returns the decimal representation.
func (p Int128Parts) String() string { return p.Big().String() }

// UInt128Parts is an unsigned 128-bit integer.
type UInt128Parts struct {
	Hi uint64
	Lo uint64
}

// EncodeTo writes the two limbs, high first.
func (p UInt128Parts) EncodeTo(e *Encoder) error {
	e.WriteUint64(p.Hi)
	e.WriteUint64(p.Lo)
	return nil
}

// DecodeFrom reads the two limbs, high first.
func (p *UInt128Parts) DecodeFrom(d *Decoder) error {
	var err error
	if p.Hi, err = d.ReadUint64(); err != nil {
		return err
	}
	p.Lo, err = d.ReadUint64()
	return err
}

// Big returns the value as a big.Int. Never negative.
func (p UInt128Parts) Big() *big.Int {
	v := new(big.Int).SetUint64(p.Hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(p.Lo))
}

// String returns the decimal representation.
func (p UInt128Parts) String() string { return p.Big().String() }

// Int256Parts is a signed 256-bit integer: HiHi carries the sign.
type Int256Parts struct {
	HiHi int64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

// EncodeTo writes the four limbs, high to low.
func (p Int256Parts) EncodeTo(e *Encoder) error {
	e.WriteInt64(p.HiHi)
	e.WriteUint64(p.HiLo)
	e.WriteUint64(p.LoHi)
	e.WriteUint64(p.LoLo)
	return nil
}

// DecodeFrom reads the four limbs, high to low.
func (p *Int256Parts) DecodeFrom(d *Decoder) error {
	var err error
	if p.HiHi, err = d.ReadInt64(); err != nil {
		return err
	}
	if p.HiLo, err = d.ReadUint64(); err != nil {
		return err
	}
	if p.LoHi, err = d.ReadUint64(); err != nil {
		return err
	}
	p.LoLo, err = d.ReadUint64()
	return err
}

// Big returns the value as a big.Int.
func (p Int256Parts) Big() *big.Int {
	v := new(big.Int).SetInt64(p.HiHi)
	for _, limb := range []uint64{p.HiLo, p.LoHi, p.LoLo} {
		v.Lsh(v, 64)
		v.Add(v, new(big.Int).SetUint64(limb))
	}
	return v
}

// String returns the decimal representation.
func (p Int256Parts) String() string { return p.Big().String() }

// UInt256Parts is an unsigned 256-bit integer.
type UInt256Parts struct {
	HiHi uint64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

// EncodeTo writes the four limbs, high to low.
func (p UInt256Parts) EncodeTo(e *Encoder) error {
	e.WriteUint64(p.HiHi)
	e.WriteUint64(p.HiLo)
	e.WriteUint64(p.LoHi)
	e.WriteUint64(p.LoLo)
	return nil
}

// DecodeFrom reads the four limbs, high to low.
func (p *UInt256Parts) DecodeFrom(d *Decoder) error {
	var err error
	if p.HiHi, err = d.ReadUint64(); err != nil {
		return err
	}
	if p.HiLo, err = d.ReadUint64(); err != nil {
		return err
	}
	if p.LoHi, err = d.ReadUint64(); err != nil {
		return err
	}
	p.LoLo, err = d.ReadUint64()
	return err
}

// Big returns the value as a big.Int. Never negative.
func (p UInt256Parts) Big() *big.Int {
	v := new(big.Int).SetUint64(p.HiHi)
	for _, limb := range []uint64{p.HiLo, p.LoHi, p.LoLo} {
		v.Lsh(v, 64)
		v.Add(v, new(big.Int).SetUint64(limb))
	}
	return v
}

// String returns the decimal representation.
func (p UInt256Parts) String() string { return p.Big().String() }
