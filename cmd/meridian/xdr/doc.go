// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package xdr implements the "meridian xdr" command group: decoding
// binary XDR values to JSON, listing the known type names, and reading
// framed record streams such as ledger history files.
package xdr
