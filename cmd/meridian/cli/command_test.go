// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "meridian",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(args []string) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "xdr",
				Run: func(args []string) error {
					called = "xdr"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"xdr"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "xdr" {
		t.Errorf("dispatched to %q, want %q", called, "xdr")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "meridian",
		Subcommands: []*Command{
			{
				Name: "strkey",
				Subcommands: []*Command{
					{
						Name: "decode",
						Run: func(args []string) error {
							called = "strkey decode"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"strkey", "decode", "extra-arg"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "strkey decode" {
		t.Errorf("dispatched to %q, want %q", called, "strkey decode")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra-arg" {
		t.Errorf("args = %v, want [extra-arg]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var typeName string
	var target string

	command := &Command{
		Name: "decode",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			flagSet.StringVar(&typeName, "type", "", "type name")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--type", "Memo", "input.xdr"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if typeName != "Memo" {
		t.Errorf("typeName = %q, want %q", typeName, "Memo")
	}
	if target != "input.xdr" {
		t.Errorf("target = %q, want %q", target, "input.xdr")
	}
}

func TestCommand_Execute_UnknownCommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "meridian",
		Subcommands: []*Command{
			{Name: "strkey", Run: func(args []string) error { return nil }},
			{Name: "xdr", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute([]string{"strkye"})
	if err == nil {
		t.Fatal("Execute() accepted an unknown command")
	}
	if !strings.Contains(err.Error(), `"strkey"`) {
		t.Errorf("error %q does not suggest strkey", err)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "decode",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			flagSet.Bool("compact", false, "compact output")
			flagSet.String("type", "", "type name")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--compadt"})
	if err == nil {
		t.Fatal("Execute() accepted an unknown flag")
	}
	if !strings.Contains(err.Error(), "--compact") {
		t.Errorf("error %q does not suggest --compact", err)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name: "meridian",
		Subcommands: []*Command{
			{Name: "xdr", Run: func(args []string) error { return nil }},
		},
	}

	if err := root.Execute(nil); err == nil {
		t.Fatal("Execute() with no args and no Run succeeded")
	}
}

func TestCommand_PrintHelp_ListsSubcommandsAndExamples(t *testing.T) {
	root := &Command{
		Name:    "meridian",
		Summary: "ledger data tools",
		Subcommands: []*Command{
			{Name: "xdr", Summary: "decode XDR"},
			{Name: "strkey", Summary: "convert keys"},
		},
		Examples: []Example{
			{Description: "Decode an envelope", Command: "meridian xdr decode --type TransactionEnvelope"},
		},
	}

	var out bytes.Buffer
	root.PrintHelp(&out)

	help := out.String()
	for _, want := range []string{"xdr", "strkey", "decode XDR", "Decode an envelope"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "decode"},
		{Name: "encode"},
		{Name: "types"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{input: "decoed", want: "decode"},
		{input: "encde", want: "encode"},
		{input: "type", want: "types"},
		{input: "completely-wrong", want: ""},
	}
	for _, tt := range tests {
		if got := suggestCommand(tt.input, commands); got != tt.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"decode", "decoed", 2},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
