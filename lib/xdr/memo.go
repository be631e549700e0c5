// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

// MemoType discriminates Memo.
type MemoType int32

const (
	MemoTypeNone   MemoType = 0
	MemoTypeText   MemoType = 1
	MemoTypeID     MemoType = 2
	MemoTypeHash   MemoType = 3
	MemoTypeReturn MemoType = 4
)

func (t MemoType) String() string {
	switch t {
	case MemoTypeNone:
		return "MEMO_NONE"
	case MemoTypeText:
		return "MEMO_TEXT"
	case MemoTypeID:
		return "MEMO_ID"
	case MemoTypeHash:
		return "MEMO_HASH"
	case MemoTypeReturn:
		return "MEMO_RETURN"
	}
	return "MEMO_UNKNOWN"
}

// MemoTextMaxLength is the maximum byte length of a text memo.
const MemoTextMaxLength = 28

// Memo is the free-form annotation attached to a transaction.
type Memo interface {
	Encodable
	// MemoType returns the discriminant selecting this arm.
	MemoType() MemoType
	isMemo()
}

// MemoNone is the void arm: no annotation.
type MemoNone struct{}

func (MemoNone) MemoType() MemoType { return MemoTypeNone }
func (MemoNone) isMemo()            {}

// EncodeTo writes the discriminant only.
func (MemoNone) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(MemoTypeNone))
	return nil
}

// MemoText carries up to 28 bytes of UTF-8 text.
type MemoText struct {
	Text string
}

func (MemoText) MemoType() MemoType { return MemoTypeText }
func (MemoText) isMemo()            {}

// EncodeTo writes the discriminant and the length-prefixed text.
func (m MemoText) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(MemoTypeText))
	return e.WriteString(m.Text, MemoTextMaxLength)
}

// MemoID carries a 64-bit identifier.
type MemoID struct {
	ID uint64
}

func (MemoID) MemoType() MemoType { return MemoTypeID }
func (MemoID) isMemo()            {}

// EncodeTo writes the discriminant and the ID.
func (m MemoID) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(MemoTypeID))
	e.WriteUint64(m.ID)
	return nil
}

// MemoHash carries an arbitrary 32-byte hash.
type MemoHash struct {
	Hash Hash
}

func (MemoHash) MemoType() MemoType { return MemoTypeHash }
func (MemoHash) isMemo()            {}

// EncodeTo writes the discriminant and the hash.
func (m MemoHash) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(MemoTypeHash))
	return m.Hash.EncodeTo(e)
}

// MemoReturn carries the hash of the transaction being refunded.
type MemoReturn struct {
	Hash Hash
}

func (MemoReturn) MemoType() MemoType { return MemoTypeReturn }
func (MemoReturn) isMemo()            {}

// EncodeTo writes the discriminant and the hash.
func (m MemoReturn) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(MemoTypeReturn))
	return m.Hash.EncodeTo(e)
}

// DecodeMemo reads a Memo union.
func DecodeMemo(d *Decoder) (Memo, error) {
	disc, err := d.ReadInt32()
	if err != nil {
		return nil, err
	}
	switch MemoType(disc) {
	case MemoTypeNone:
		return MemoNone{}, nil
	case MemoTypeText:
		var m MemoText
		if m.Text, err = d.ReadString(MemoTextMaxLength); err != nil {
			return nil, err
		}
		return m, nil
	case MemoTypeID:
		var m MemoID
		if m.ID, err = d.ReadUint64(); err != nil {
			return nil, err
		}
		return m, nil
	case MemoTypeHash:
		var m MemoHash
		if err := m.Hash.DecodeFrom(d); err != nil {
			return nil, err
		}
		return m, nil
	case MemoTypeReturn:
		var m MemoReturn
		if err := m.Hash.DecodeFrom(d); err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, &UnknownDiscriminantError{Type: "Memo", Discriminant: disc}
}
