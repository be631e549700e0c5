// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for Meridian packages.
//
// [LoadVectors] reads a YAML test-vector file from a package's
// testdata directory into a caller-defined slice of vector structs.
// Cross-implementation vectors (StrKey strings, wire encodings) live
// in YAML rather than Go literals so they can be diffed against the
// canonical network's published vectors directly.
//
// [MustDecodeHex] decodes a hex string or fails the test, keeping
// byte-literal noise out of test tables.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil

import (
	"encoding/hex"
	"os"

	"gopkg.in/yaml.v3"
)

// TB is the subset of testing.TB the helpers need. Taking an
// interface keeps this package free of a testing import in its API.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// LoadVectors reads the YAML file at path into out, which must be a
// pointer to a slice of the caller's vector struct type.
func LoadVectors(t TB, path string, out any) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading vector file %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		t.Fatalf("parsing vector file %s: %v", path, err)
	}
}

// MustDecodeHex decodes a hex string, failing the test on invalid
// input.
func MustDecodeHex(t TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex %q: %v", s, err)
	}
	return b
}
