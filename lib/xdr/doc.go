// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package xdr implements the ledger's binary interchange format, an
// RFC 4506-style XDR encoding: big-endian, 4-byte aligned, with
// uint32-length-prefixed variable data and uint32 union discriminants.
// Every ledger entity — accounts, assets, transactions, ledger keys,
// smart-contract values — is expressed through this encoding, and the
// byte layout must match the reference network implementation exactly;
// any deviation breaks signature verification on the wire.
//
// The package has two layers:
//
//   - [Encoder] and [Decoder] are the primitive byte sink and source.
//     They handle scalars (32-bit through 256-bit integers, booleans),
//     fixed and variable-length opaque data, strings, presence flags,
//     and length prefixes. A Decoder consumes its input strictly in
//     order through an internal cursor and fails with [UnderflowError]
//     when the input is exhausted.
//
//   - The ledger types ([Transaction], [Asset], [Memo], [SCVal], ...)
//     encode and decode themselves field by field in declaration
//     order. Discriminated unions are modeled as Go interfaces with
//     one concrete type per arm, so a value holds exactly one arm and
//     a stale, no-longer-selected arm cannot leak into the output.
//     Decoding a union reads the discriminant and fails with
//     [UnknownDiscriminantError] for values outside the type's closed
//     set — forward compatibility is the caller's responsibility, not
//     implicit leniency here.
//
// Top-level entry points are [Marshal] and [Unmarshal] (and their
// base64 variants, since the network's tooling conventionally passes
// XDR around as base64 strings). Unmarshal requires the value to
// consume the entire input; trailing bytes are an error.
//
// Every decode error is immediately fatal to that call. There is no
// partial decode and no coercion to defaults: a malformed or
// adversarial payload must never yield a plausible-but-wrong value.
//
// Encoder and Decoder instances are not safe for concurrent use.
// Encoding and decoding are pure in-memory transformations with no
// I/O, so the usual pattern is one private instance per operation.
package xdr
