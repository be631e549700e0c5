// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Meridian is the unified CLI for the ledger's binary data formats.
// It provides subcommands for decoding XDR values and record streams
// to JSON (xdr) and for converting ledger keys between their
// checksummed text form and raw payload bytes (strkey).
package main
