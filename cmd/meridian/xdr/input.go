// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"unicode"
)

// inputFormat names how the raw input bytes are to be interpreted.
// The zero value is not valid; parseInputFormat produces the only
// accepted values.
type inputFormat int

const (
	formatBase64 inputFormat = iota + 1
	formatHex
	formatBinary
)

func parseInputFormat(name string) (inputFormat, error) {
	switch name {
	case "base64":
		return formatBase64, nil
	case "hex":
		return formatHex, nil
	case "binary":
		return formatBinary, nil
	default:
		return 0, fmt.Errorf("unknown input format %q (want base64, hex, or binary)", name)
	}
}

// readInput resolves input data from either a file (the last element
// of args, if it names a regular file on disk) or stdin, then applies
// the text decoding the format calls for. Whitespace is stripped from
// base64 and hex input so values pasted with line breaks work.
//
// Returns the input bytes and the args with any consumed file path
// removed.
func readInput(args []string, format inputFormat) ([]byte, []string, error) {
	var data []byte
	remainingArgs := args

	if length := len(args); length > 0 {
		candidate := args[length-1]
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			data, err = os.ReadFile(candidate)
			if err != nil {
				return nil, nil, fmt.Errorf("read %s: %w", candidate, err)
			}
			remainingArgs = args[:length-1]
		}
	}

	if data == nil {
		var err error
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	switch format {
	case formatBase64:
		decoded, err := base64.StdEncoding.DecodeString(string(stripSpace(data)))
		if err != nil {
			return nil, nil, fmt.Errorf("decode base64 input: %w", err)
		}
		data = decoded
	case formatHex:
		decoded, err := hex.DecodeString(string(stripSpace(data)))
		if err != nil {
			return nil, nil, fmt.Errorf("decode hex input: %w", err)
		}
		data = decoded
	case formatBinary:
		// Raw bytes, used as-is.
	}

	if len(data) == 0 {
		return nil, nil, fmt.Errorf("empty input")
	}
	return data, remainingArgs, nil
}

func stripSpace(data []byte) []byte {
	return bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)
}
