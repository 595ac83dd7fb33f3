// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the xattrsum command tree: one
// subcommand per operating mode, sharing the worker-pool wiring and
// the common flag set.
package commands

import (
	"fmt"

	"github.com/xattrsum/xattrsum/cmd/xattrsum/cli"
	"github.com/xattrsum/xattrsum/lib/version"
)

// Root returns the top-level xattrsum command.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "xattrsum",
		Summary: "Store, verify, and manage file digests in extended attributes",
		Description: `Xattrsum computes cryptographic digests of file contents and stores
them in the file's own extended attributes (user.hash.<algorithm>),
so the recorded digest travels with the file across renames and
copies within a filesystem. Later runs verify the contents against
the stored digests to detect silent modification or corruption.`,
		Subcommands: []*cli.Command{
			applyCommand(),
			checkCommand(),
			printCommand(),
			resetCommand(),
			hasHashCommand(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Record digests for every file under the current directory",
				Command:     "xattrsum apply -r",
			},
			{
				Description: "Verify two files against their stored sha512 digests",
				Command:     "xattrsum check -a sha512 a.txt b.txt",
			},
			{
				Description: "List files missing any of the default digests",
				Command:     "xattrsum has-hash -r /srv/archive",
			},
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print the xattrsum version",
		Run: func(args []string) error {
			fmt.Printf("xattrsum %s\n", version.Info())
			return nil
		},
	}
}
