// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"os"

	"github.com/goccy/go-json"
)

// WriteJSON marshals value as indented JSON and writes it to stdout.
func WriteJSON(value any) error {
	return EncodeJSON(os.Stdout, value, false)
}

// EncodeJSON writes value as JSON to w, followed by a newline. With
// compact set, output is a single line; otherwise it is indented with
// two spaces.
func EncodeJSON(w io.Writer, value any, compact bool) error {
	encoder := json.NewEncoder(w)
	if !compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(value)
}
