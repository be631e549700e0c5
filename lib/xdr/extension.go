// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

// ExtensionPoint is the network's reserved extension union. Its only
// defined arm is v=0, which is void: the discriminant is written and
// nothing follows. Future protocol versions add arms; until then any
// other discriminant is rejected.
type ExtensionPoint struct{}

// EncodeTo writes the v=0 discriminant.
func (ExtensionPoint) EncodeTo(e *Encoder) error {
	e.WriteInt32(0)
	return nil
}

// DecodeFrom reads the discriminant and rejects anything but 0.
func (*ExtensionPoint) DecodeFrom(d *Decoder) error {
	disc, err := d.ReadInt32()
	if err != nil {
		return err
	}
	if disc != 0 {
		return &UnknownDiscriminantError{Type: "ExtensionPoint", Discriminant: disc}
	}
	return nil
}
