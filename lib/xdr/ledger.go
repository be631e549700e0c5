// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

// LedgerEntryType discriminates LedgerKey. Wire values match the
// network protocol; this package implements the key arms for the
// entry kinds it models.
type LedgerEntryType int32

const (
	LedgerEntryTypeAccount          LedgerEntryType = 0
	LedgerEntryTypeTrustline        LedgerEntryType = 1
	LedgerEntryTypeData             LedgerEntryType = 3
	LedgerEntryTypeClaimableBalance LedgerEntryType = 4
)

func (t LedgerEntryType) String() string {
	switch t {
	case LedgerEntryTypeAccount:
		return "ACCOUNT"
	case LedgerEntryTypeTrustline:
		return "TRUSTLINE"
	case LedgerEntryTypeData:
		return "DATA"
	case LedgerEntryTypeClaimableBalance:
		return "CLAIMABLE_BALANCE"
	}
	return "LEDGER_ENTRY_TYPE_UNKNOWN"
}

// ClaimableBalanceIDType discriminates ClaimableBalanceID. Only v0
// exists.
type ClaimableBalanceIDType int32

const (
	ClaimableBalanceIDTypeV0 ClaimableBalanceIDType = 0
)

// ClaimableBalanceID identifies a claimable balance entry. A
// single-arm union on the wire: discriminant v0 followed by a hash.
type ClaimableBalanceID struct {
	V0 Hash
}

// EncodeTo writes the v0 discriminant and the hash.
func (id ClaimableBalanceID) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(ClaimableBalanceIDTypeV0))
	return id.V0.EncodeTo(e)
}

// DecodeFrom reads the discriminant, rejecting anything but v0, then
// the hash.
func (id *ClaimableBalanceID) DecodeFrom(d *Decoder) error {
	disc, err := d.ReadInt32()
	if err != nil {
		return err
	}
	if ClaimableBalanceIDType(disc) != ClaimableBalanceIDTypeV0 {
		return &UnknownDiscriminantError{Type: "ClaimableBalanceID", Discriminant: disc}
	}
	return id.V0.DecodeFrom(d)
}

// LedgerKey is the lookup key of a ledger entry: one arm per entry
// kind, each carrying exactly the fields that identify an entry.
type LedgerKey interface {
	Encodable
	// LedgerEntryType returns the discriminant selecting this arm.
	LedgerEntryType() LedgerEntryType
	isLedgerKey()
}

// LedgerKeyAccount keys an account entry.
type LedgerKeyAccount struct {
	AccountID AccountID
}

func (LedgerKeyAccount) LedgerEntryType() LedgerEntryType { return LedgerEntryTypeAccount }
func (LedgerKeyAccount) isLedgerKey()                     {}

// EncodeTo writes the discriminant and the account ID.
func (k LedgerKeyAccount) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(LedgerEntryTypeAccount))
	return k.AccountID.EncodeTo(e)
}

// LedgerKeyTrustline keys a trustline entry by holder and asset.
type LedgerKeyTrustline struct {
	AccountID AccountID
	Asset     Asset
}

func (LedgerKeyTrustline) LedgerEntryType() LedgerEntryType { return LedgerEntryTypeTrustline }
func (LedgerKeyTrustline) isLedgerKey()                     {}

// EncodeTo writes the discriminant, holder, and asset.
func (k LedgerKeyTrustline) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(LedgerEntryTypeTrustline))
	if err := k.AccountID.EncodeTo(e); err != nil {
		return err
	}
	return k.Asset.EncodeTo(e)
}

// LedgerKeyData keys a data entry by owner and name.
type LedgerKeyData struct {
	AccountID AccountID
	DataName  string
}

func (LedgerKeyData) LedgerEntryType() LedgerEntryType { return LedgerEntryTypeData }
func (LedgerKeyData) isLedgerKey()                     {}

// EncodeTo writes the discriminant, owner, and name.
func (k LedgerKeyData) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(LedgerEntryTypeData))
	if err := k.AccountID.EncodeTo(e); err != nil {
		return err
	}
	return e.WriteString(k.DataName, DataNameMaxLength)
}

// LedgerKeyClaimableBalance keys a claimable balance entry.
type LedgerKeyClaimableBalance struct {
	BalanceID ClaimableBalanceID
}

func (LedgerKeyClaimableBalance) LedgerEntryType() LedgerEntryType {
	return LedgerEntryTypeClaimableBalance
}
func (LedgerKeyClaimableBalance) isLedgerKey() {}

// EncodeTo writes the discriminant and the balance ID.
func (k LedgerKeyClaimableBalance) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(LedgerEntryTypeClaimableBalance))
	return k.BalanceID.EncodeTo(e)
}

// DecodeLedgerKey reads a LedgerKey union.
func DecodeLedgerKey(d *Decoder) (LedgerKey, error) {
	disc, err := d.ReadInt32()
	if err != nil {
		return nil, err
	}
	switch LedgerEntryType(disc) {
	case LedgerEntryTypeAccount:
		var k LedgerKeyAccount
		if err := k.AccountID.DecodeFrom(d); err != nil {
			return nil, err
		}
		return k, nil
	case LedgerEntryTypeTrustline:
		var k LedgerKeyTrustline
		if err := k.AccountID.DecodeFrom(d); err != nil {
			return nil, err
		}
		if k.Asset, err = DecodeAsset(d); err != nil {
			return nil, err
		}
		return k, nil
	case LedgerEntryTypeData:
		var k LedgerKeyData
		if err := k.AccountID.DecodeFrom(d); err != nil {
			return nil, err
		}
		if k.DataName, err = d.ReadString(DataNameMaxLength); err != nil {
			return nil, err
		}
		return k, nil
	case LedgerEntryTypeClaimableBalance:
		var k LedgerKeyClaimableBalance
		if err := k.BalanceID.DecodeFrom(d); err != nil {
			return nil, err
		}
		return k, nil
	}
	return nil, &UnknownDiscriminantError{Type: "LedgerKey", Discriminant: disc}
}
