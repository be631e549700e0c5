// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package strkey

import (
	"strings"
	"testing"
)

// The names accepted by --kind must match what decode prints, so the
// output of one command feeds the other.
func TestKindNamesMatchVersionByteStrings(t *testing.T) {
	for name, version := range kindByName {
		if got := version.String(); got != name {
			t.Errorf("kind %q maps to version byte with name %q", name, got)
		}
	}
}

func TestKindNamesListing(t *testing.T) {
	listing := kindNames()
	for name := range kindByName {
		if !strings.Contains(listing, name) {
			t.Errorf("kindNames() missing %q: %s", name, listing)
		}
	}
	if !strings.HasPrefix(listing, "account") {
		t.Errorf("kindNames() not sorted: %s", listing)
	}
}

func TestReadHexArgumentStripsWhitespace(t *testing.T) {
	got, err := readHexArgument([]string{"3f0c 34bf\n93ad"})
	if err != nil {
		t.Fatalf("readHexArgument: %v", err)
	}
	if got != "3f0c34bf93ad" {
		t.Errorf("readHexArgument = %q", got)
	}

	if _, err := readHexArgument([]string{"aa", "bb"}); err == nil {
		t.Error("readHexArgument accepted two arguments")
	}
}
