// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import "encoding/base64"

// Encodable is implemented by every value that can write itself to an
// Encoder. EncodeTo appends the value's complete XDR representation,
// fields in declaration order.
type Encodable interface {
	EncodeTo(e *Encoder) error
}

// Decodable is implemented by struct values that can populate
// themselves from a Decoder. Union types are not Decodable — their
// concrete arm type is only known after reading the discriminant, so
// each union has a package-level DecodeX function instead.
type Decodable interface {
	DecodeFrom(d *Decoder) error
}

// Marshal encodes v to its XDR byte representation.
func Marshal(v Encodable) ([]byte, error) {
	e := NewEncoder()
	if err := v.EncodeTo(e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes data into v. The value must consume the entire
// input; trailing bytes fail with [MalformedEncodingError].
func Unmarshal(data []byte, v Decodable) error {
	d := NewDecoder(data)
	if err := v.DecodeFrom(d); err != nil {
		return err
	}
	return d.finish()
}

// MarshalBase64 encodes v and returns the standard-alphabet base64
// string conventionally used to pass XDR through JSON APIs and CLI
// arguments.
func MarshalBase64(v Encodable) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// UnmarshalBase64 decodes a base64 string into v.
func UnmarshalBase64(s string, v Decodable) error {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return &MalformedEncodingError{Reason: "invalid base64: " + err.Error()}
	}
	return Unmarshal(data, v)
}
