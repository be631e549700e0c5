// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

// AssetType discriminates Asset.
type AssetType int32

const (
	AssetTypeNative     AssetType = 0
	AssetTypeAlphaNum4  AssetType = 1
	AssetTypeAlphaNum12 AssetType = 2
)

func (t AssetType) String() string {
	switch t {
	case AssetTypeNative:
		return "ASSET_TYPE_NATIVE"
	case AssetTypeAlphaNum4:
		return "ASSET_TYPE_CREDIT_ALPHANUM4"
	case AssetTypeAlphaNum12:
		return "ASSET_TYPE_CREDIT_ALPHANUM12"
	}
	return "ASSET_TYPE_UNKNOWN"
}

// AssetCode4 is a 1-4 character asset code, zero-padded on the wire
// to 4 bytes.
type AssetCode4 [4]byte

// AssetCode12 is a 5-12 character asset code, zero-padded on the wire
// to 12 bytes.
type AssetCode12 [12]byte

// Asset identifies something that can be held and traded: the native
// asset (void arm) or a credit issued by an account.
type Asset interface {
	Encodable
	// AssetType returns the discriminant selecting this arm.
	AssetType() AssetType
	isAsset()
}

// AssetNative is the network's native asset. Void arm: the
// discriminant is all there is.
type AssetNative struct{}

func (AssetNative) AssetType() AssetType { return AssetTypeNative }
func (AssetNative) isAsset()             {}

// EncodeTo writes the discriminant only.
func (AssetNative) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(AssetTypeNative))
	return nil
}

// AssetAlphaNum4 is an issued asset with a code of up to 4 characters.
type AssetAlphaNum4 struct {
	Code   AssetCode4
	Issuer AccountID
}

func (AssetAlphaNum4) AssetType() AssetType { return AssetTypeAlphaNum4 }
func (AssetAlphaNum4) isAsset()             {}

// EncodeTo writes the discriminant, the fixed code, and the issuer.
func (a AssetAlphaNum4) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(AssetTypeAlphaNum4))
	e.WriteFixedOpaque(a.Code[:])
	return a.Issuer.EncodeTo(e)
}

// AssetAlphaNum12 is an issued asset with a code of 5 to 12 characters.
type AssetAlphaNum12 struct {
	Code   AssetCode12
	Issuer AccountID
}

func (AssetAlphaNum12) AssetType() AssetType { return AssetTypeAlphaNum12 }
func (AssetAlphaNum12) isAsset()             {}

// EncodeTo writes the discriminant, the fixed code, and the issuer.
func (a AssetAlphaNum12) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(AssetTypeAlphaNum12))
	e.WriteFixedOpaque(a.Code[:])
	return a.Issuer.EncodeTo(e)
}

// DecodeAsset reads an Asset union.
func DecodeAsset(d *Decoder) (Asset, error) {
	disc, err := d.ReadInt32()
	if err != nil {
		return nil, err
	}
	switch AssetType(disc) {
	case AssetTypeNative:
		return AssetNative{}, nil
	case AssetTypeAlphaNum4:
		var a AssetAlphaNum4
		code, err := d.ReadFixedOpaque(len(a.Code))
		if err != nil {
			return nil, err
		}
		copy(a.Code[:], code)
		if err := a.Issuer.DecodeFrom(d); err != nil {
			return nil, err
		}
		return a, nil
	case AssetTypeAlphaNum12:
		var a AssetAlphaNum12
		code, err := d.ReadFixedOpaque(len(a.Code))
		if err != nil {
			return nil, err
		}
		copy(a.Code[:], code)
		if err := a.Issuer.DecodeFrom(d); err != nil {
			return nil, err
		}
		return a, nil
	}
	return nil, &UnknownDiscriminantError{Type: "Asset", Discriminant: disc}
}

// Price is a rational price: N units of one asset per D units of
// another.
type Price struct {
	N int32
	D int32
}

// EncodeTo writes numerator then denominator.
func (p Price) EncodeTo(e *Encoder) error {
	e.WriteInt32(p.N)
	e.WriteInt32(p.D)
	return nil
}

// DecodeFrom reads numerator then denominator.
func (p *Price) DecodeFrom(d *Decoder) error {
	var err error
	if p.N, err = d.ReadInt32(); err != nil {
		return err
	}
	p.D, err = d.ReadInt32()
	return err
}
