// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

// Uint256 is a fixed 256-bit opaque value, most commonly an ed25519
// public key. Encoded as 32 raw bytes with no padding (32 is already
// 4-byte aligned).
type Uint256 [32]byte

// EncodeTo writes the 32 raw bytes.
func (u Uint256) EncodeTo(e *Encoder) error {
	e.WriteFixedOpaque(u[:])
	return nil
}

// DecodeFrom reads the 32 raw bytes.
func (u *Uint256) DecodeFrom(d *Decoder) error {
	b, err := d.ReadFixedOpaque(32)
	if err != nil {
		return err
	}
	copy(u[:], b)
	return nil
}

// Hash is a 32-byte hash value (SHA-256 output size).
type Hash [32]byte

// EncodeTo writes the 32 raw bytes.
func (h Hash) EncodeTo(e *Encoder) error {
	e.WriteFixedOpaque(h[:])
	return nil
}

// DecodeFrom reads the 32 raw bytes.
func (h *Hash) DecodeFrom(d *Decoder) error {
	b, err := d.ReadFixedOpaque(32)
	if err != nil {
		return err
	}
	copy(h[:], b)
	return nil
}

// PublicKeyType discriminates PublicKey. Ed25519 is the only kind the
// network has ever defined.
type PublicKeyType int32

const (
	PublicKeyTypeEd25519 PublicKeyType = 0
)

func (t PublicKeyType) String() string {
	switch t {
	case PublicKeyTypeEd25519:
		return "PUBLIC_KEY_TYPE_ED25519"
	}
	return "PUBLIC_KEY_TYPE_UNKNOWN"
}

// AccountID identifies an account: on the wire it is a single-arm
// PublicKey union (discriminant PUBLIC_KEY_TYPE_ED25519 followed by
// the key bytes). With one arm the union collapses to a struct here;
// decode still rejects any other discriminant.
type AccountID struct {
	Ed25519 Uint256
}

// EncodeTo writes the discriminant and the key.
func (a AccountID) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(PublicKeyTypeEd25519))
	return a.Ed25519.EncodeTo(e)
}

// DecodeFrom reads the discriminant, rejecting anything but ed25519,
// then the key.
func (a *AccountID) DecodeFrom(d *Decoder) error {
	disc, err := d.ReadInt32()
	if err != nil {
		return err
	}
	if PublicKeyType(disc) != PublicKeyTypeEd25519 {
		return &UnknownDiscriminantError{Type: "PublicKey", Discriminant: disc}
	}
	return a.Ed25519.DecodeFrom(d)
}

// CryptoKeyType discriminates MuxedAccount.
type CryptoKeyType int32

const (
	CryptoKeyTypeEd25519      CryptoKeyType = 0
	CryptoKeyTypeMuxedEd25519 CryptoKeyType = 0x100
)

func (t CryptoKeyType) String() string {
	switch t {
	case CryptoKeyTypeEd25519:
		return "KEY_TYPE_ED25519"
	case CryptoKeyTypeMuxedEd25519:
		return "KEY_TYPE_MUXED_ED25519"
	}
	return "KEY_TYPE_UNKNOWN"
}

// MuxedAccount is a transaction-level account reference: either a bare
// ed25519 account or a multiplexed account carrying a 64-bit
// sub-account ID. Exactly one arm exists per value.
type MuxedAccount interface {
	Encodable
	// KeyType returns the discriminant selecting this arm.
	KeyType() CryptoKeyType
	isMuxedAccount()
}

// MuxedAccountEd25519 is the KEY_TYPE_ED25519 arm: a bare account key.
type MuxedAccountEd25519 struct {
	Ed25519 Uint256
}

func (MuxedAccountEd25519) KeyType() CryptoKeyType { return CryptoKeyTypeEd25519 }
func (MuxedAccountEd25519) isMuxedAccount()        {}

// EncodeTo writes the discriminant and the key.
func (m MuxedAccountEd25519) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(CryptoKeyTypeEd25519))
	return m.Ed25519.EncodeTo(e)
}

// MuxedAccountMuxedEd25519 is the KEY_TYPE_MUXED_ED25519 arm. Field
// order on the wire is ID first, then the key.
type MuxedAccountMuxedEd25519 struct {
	ID      uint64
	Ed25519 Uint256
}

func (MuxedAccountMuxedEd25519) KeyType() CryptoKeyType { return CryptoKeyTypeMuxedEd25519 }
func (MuxedAccountMuxedEd25519) isMuxedAccount()        {}

// EncodeTo writes the discriminant, the sub-account ID, and the key.
func (m MuxedAccountMuxedEd25519) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(CryptoKeyTypeMuxedEd25519))
	e.WriteUint64(m.ID)
	return m.Ed25519.EncodeTo(e)
}

// DecodeMuxedAccount reads a MuxedAccount union, failing with
// UnknownDiscriminantError outside the closed set {ed25519, muxed}.
func DecodeMuxedAccount(d *Decoder) (MuxedAccount, error) {
	disc, err := d.ReadInt32()
	if err != nil {
		return nil, err
	}
	switch CryptoKeyType(disc) {
	case CryptoKeyTypeEd25519:
		var m MuxedAccountEd25519
		if err := m.Ed25519.DecodeFrom(d); err != nil {
			return nil, err
		}
		return m, nil
	case CryptoKeyTypeMuxedEd25519:
		var m MuxedAccountMuxedEd25519
		if m.ID, err = d.ReadUint64(); err != nil {
			return nil, err
		}
		if err := m.Ed25519.DecodeFrom(d); err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, &UnknownDiscriminantError{Type: "MuxedAccount", Discriminant: disc}
}

// SignerKeyType discriminates SignerKey.
type SignerKeyType int32

const (
	SignerKeyTypeEd25519              SignerKeyType = 0
	SignerKeyTypePreAuthTx            SignerKeyType = 1
	SignerKeyTypeHashX                SignerKeyType = 2
	SignerKeyTypeEd25519SignedPayload SignerKeyType = 3
)

func (t SignerKeyType) String() string {
	switch t {
	case SignerKeyTypeEd25519:
		return "SIGNER_KEY_TYPE_ED25519"
	case SignerKeyTypePreAuthTx:
		return "SIGNER_KEY_TYPE_PRE_AUTH_TX"
	case SignerKeyTypeHashX:
		return "SIGNER_KEY_TYPE_HASH_X"
	case SignerKeyTypeEd25519SignedPayload:
		return "SIGNER_KEY_TYPE_ED25519_SIGNED_PAYLOAD"
	}
	return "SIGNER_KEY_TYPE_UNKNOWN"
}

// SignedPayloadMaxLength is the maximum byte length of the payload in
// an ed25519 signed-payload signer.
const SignedPayloadMaxLength = 64

// SignerKey is the union of ways an account signer can be identified.
type SignerKey interface {
	Encodable
	// SignerKeyType returns the discriminant selecting this arm.
	SignerKeyType() SignerKeyType
	isSignerKey()
}

// SignerKeyEd25519 is a plain ed25519 public key signer.
type SignerKeyEd25519 struct {
	Ed25519 Uint256
}

func (SignerKeyEd25519) SignerKeyType() SignerKeyType { return SignerKeyTypeEd25519 }
func (SignerKeyEd25519) isSignerKey()                 {}

// EncodeTo writes the discriminant and the key.
func (k SignerKeyEd25519) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SignerKeyTypeEd25519))
	return k.Ed25519.EncodeTo(e)
}

// SignerKeyPreAuthTx authorizes by the hash of a specific transaction.
type SignerKeyPreAuthTx struct {
	TxHash Uint256
}

func (SignerKeyPreAuthTx) SignerKeyType() SignerKeyType { return SignerKeyTypePreAuthTx }
func (SignerKeyPreAuthTx) isSignerKey()                 {}

// EncodeTo writes the discriminant and the transaction hash.
func (k SignerKeyPreAuthTx) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SignerKeyTypePreAuthTx))
	return k.TxHash.EncodeTo(e)
}

// SignerKeyHashX authorizes by the preimage of a SHA-256 hash.
type SignerKeyHashX struct {
	HashX Uint256
}

func (SignerKeyHashX) SignerKeyType() SignerKeyType { return SignerKeyTypeHashX }
func (SignerKeyHashX) isSignerKey()                 {}

// EncodeTo writes the discriminant and the hash.
func (k SignerKeyHashX) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SignerKeyTypeHashX))
	return k.HashX.EncodeTo(e)
}

// SignerKeyEd25519SignedPayload is a signer that must produce a
// signature over a fixed payload of at most 64 bytes.
type SignerKeyEd25519SignedPayload struct {
	Ed25519 Uint256
	Payload []byte
}

func (SignerKeyEd25519SignedPayload) SignerKeyType() SignerKeyType {
	return SignerKeyTypeEd25519SignedPayload
}
func (SignerKeyEd25519SignedPayload) isSignerKey() {}

// EncodeTo writes the discriminant, the key, and the variable-length
// payload.
func (k SignerKeyEd25519SignedPayload) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(SignerKeyTypeEd25519SignedPayload))
	if err := k.Ed25519.EncodeTo(e); err != nil {
		return err
	}
	return e.WriteOpaque(k.Payload, SignedPayloadMaxLength)
}

// DecodeSignerKey reads a SignerKey union.
func DecodeSignerKey(d *Decoder) (SignerKey, error) {
	disc, err := d.ReadInt32()
	if err != nil {
		return nil, err
	}
	switch SignerKeyType(disc) {
	case SignerKeyTypeEd25519:
		var k SignerKeyEd25519
		if err := k.Ed25519.DecodeFrom(d); err != nil {
			return nil, err
		}
		return k, nil
	case SignerKeyTypePreAuthTx:
		var k SignerKeyPreAuthTx
		if err := k.TxHash.DecodeFrom(d); err != nil {
			return nil, err
		}
		return k, nil
	case SignerKeyTypeHashX:
		var k SignerKeyHashX
		if err := k.HashX.DecodeFrom(d); err != nil {
			return nil, err
		}
		return k, nil
	case SignerKeyTypeEd25519SignedPayload:
		var k SignerKeyEd25519SignedPayload
		if err := k.Ed25519.DecodeFrom(d); err != nil {
			return nil, err
		}
		if k.Payload, err = d.ReadOpaque(SignedPayloadMaxLength); err != nil {
			return nil, err
		}
		return k, nil
	}
	return nil, &UnknownDiscriminantError{Type: "SignerKey", Discriminant: disc}
}

// Signer attaches a voting weight to a signer key.
type Signer struct {
	Key    SignerKey
	Weight uint32
}

// EncodeTo writes the key union then the weight.
func (s Signer) EncodeTo(e *Encoder) error {
	if err := s.Key.EncodeTo(e); err != nil {
		return err
	}
	e.WriteUint32(s.Weight)
	return nil
}

// DecodeFrom reads the key union then the weight.
func (s *Signer) DecodeFrom(d *Decoder) error {
	key, err := DecodeSignerKey(d)
	if err != nil {
		return err
	}
	s.Key = key
	s.Weight, err = d.ReadUint32()
	return err
}

// Limits on AccountEntry fields, fixed by the network protocol.
const (
	// MaxSigners is the maximum number of additional signers on an
	// account.
	MaxSigners = 20

	// HomeDomainMaxLength is the maximum byte length of an account's
	// home domain string.
	HomeDomainMaxLength = 32
)

// Thresholds packs the account's master weight and three operation
// threshold levels into four bytes.
type Thresholds [4]byte

// AccountEntry is the ledger's record of an account: identity,
// balance, sequencing state, signing configuration.
type AccountEntry struct {
	AccountID     AccountID
	Balance       int64
	SeqNum        int64
	NumSubEntries uint32
	InflationDest *AccountID
	Flags         uint32
	HomeDomain    string
	Thresholds    Thresholds
	Signers       []Signer
	Ext           ExtensionPoint
}

// EncodeTo writes all fields in declaration order.
func (a AccountEntry) EncodeTo(e *Encoder) error {
	if err := a.AccountID.EncodeTo(e); err != nil {
		return err
	}
	e.WriteInt64(a.Balance)
	e.WriteInt64(a.SeqNum)
	e.WriteUint32(a.NumSubEntries)
	e.WritePresence(a.InflationDest != nil)
	if a.InflationDest != nil {
		if err := a.InflationDest.EncodeTo(e); err != nil {
			return err
		}
	}
	e.WriteUint32(a.Flags)
	if err := e.WriteString(a.HomeDomain, HomeDomainMaxLength); err != nil {
		return err
	}
	e.WriteFixedOpaque(a.Thresholds[:])
	if err := e.WriteLength(len(a.Signers), MaxSigners); err != nil {
		return err
	}
	for _, signer := range a.Signers {
		if err := signer.EncodeTo(e); err != nil {
			return err
		}
	}
	return a.Ext.EncodeTo(e)
}

// DecodeFrom reads all fields in declaration order.
func (a *AccountEntry) DecodeFrom(d *Decoder) error {
	if err := a.AccountID.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	if a.Balance, err = d.ReadInt64(); err != nil {
		return err
	}
	if a.SeqNum, err = d.ReadInt64(); err != nil {
		return err
	}
	if a.NumSubEntries, err = d.ReadUint32(); err != nil {
		return err
	}
	present, err := d.ReadPresence()
	if err != nil {
		return err
	}
	a.InflationDest = nil
	if present {
		a.InflationDest = new(AccountID)
		if err := a.InflationDest.DecodeFrom(d); err != nil {
			return err
		}
	}
	if a.Flags, err = d.ReadUint32(); err != nil {
		return err
	}
	if a.HomeDomain, err = d.ReadString(HomeDomainMaxLength); err != nil {
		return err
	}
	thresholds, err := d.ReadFixedOpaque(len(a.Thresholds))
	if err != nil {
		return err
	}
	copy(a.Thresholds[:], thresholds)
	count, err := d.ReadLength(MaxSigners)
	if err != nil {
		return err
	}
	a.Signers = nil
	for i := uint32(0); i < count; i++ {
		var signer Signer
		if err := signer.DecodeFrom(d); err != nil {
			return err
		}
		a.Signers = append(a.Signers, signer)
	}
	return a.Ext.DecodeFrom(d)
}
