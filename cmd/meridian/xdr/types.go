// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

import (
	"fmt"

	"github.com/meridian-foundation/meridian/cmd/meridian/cli"
)

func typesCommand() *cli.Command {
	return &cli.Command{
		Name:    "types",
		Summary: "List the type names decode understands",
		Usage:   "meridian xdr types",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("types takes no arguments, got %q", args[0])
			}
			for _, name := range typeNames() {
				fmt.Println(name)
			}
			return nil
		},
	}
}
