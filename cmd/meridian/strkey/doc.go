// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package strkey implements the "meridian strkey" command group:
// converting between the checksummed text form of ledger keys and
// their raw payload bytes.
package strkey
