// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/spf13/pflag"

	"github.com/xattrsum/xattrsum/cmd/xattrsum/cli"
	"github.com/xattrsum/xattrsum/lib/ops"
)

// modeCommand builds one operating-mode subcommand. All five modes
// share the same flags and runner wiring and differ only in the
// operation applied per file.
func modeCommand(name, summary, description string, examples []cli.Example, pick func(*ops.Ops) ops.Func) *cli.Command {
	params := &runParams{}
	return &cli.Command{
		Name:        name,
		Summary:     summary,
		Description: description,
		Usage:       "xattrsum " + name + " [flags] [path ...]",
		Examples:    examples,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
			params.addFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			return params.execute(args, pick)
		},
	}
}

func applyCommand() *cli.Command {
	return modeCommand(
		"apply",
		"Compute digests and store them in each file's attributes",
		`Compute the requested digests of each file's contents in one read
pass and store them as extended attributes. Files that already carry
a digest for an algorithm are skipped for that algorithm and counted
as errors; apply never overwrites an existing slot.`,
		[]cli.Example{
			{
				Description: "Hash a file with the default algorithms",
				Command:     "xattrsum apply a.txt",
			},
			{
				Description: "Hash a whole tree with sha512 using 8 workers",
				Command:     "xattrsum apply -r -a sha512 -j 8 /srv/archive",
			},
		},
		func(o *ops.Ops) ops.Func { return o.Apply },
	)
}

func checkCommand() *cli.Command {
	return modeCommand(
		"check",
		"Verify file contents against the stored digests",
		`Recompute the requested digests of each file's contents and compare
them against the stored attributes. A disagreement is a mismatch; a
file without a stored digest for a requested algorithm is an error
and nothing is computed for that algorithm.`,
		[]cli.Example{
			{
				Description: "Verify a tree and fail the run on any mismatch",
				Command:     "xattrsum check -r /srv/archive",
			},
			{
				Description: "Also fail on missing digests and permission errors",
				Command:     "xattrsum check -e -r /srv/archive",
			},
		},
		func(o *ops.Ops) ops.Func { return o.Check },
	)
}

func printCommand() *cli.Command {
	return modeCommand(
		"print",
		"Print the stored digests without recomputing anything",
		`Print each file's stored digests in checksum-file form
("<hex>  <path>"). Contents are never read; a file without a stored
digest for a requested algorithm is an error.`,
		[]cli.Example{
			{
				Description: "Emit a checksum listing for two files",
				Command:     "xattrsum print a.txt b.txt",
			},
		},
		func(o *ops.Ops) ops.Func { return o.Print },
	)
}

func resetCommand() *cli.Command {
	return modeCommand(
		"reset",
		"Remove the stored digests from each file's attributes",
		`Remove the attribute slot for every requested algorithm. Removal is
idempotent: resetting a file that never had a digest succeeds.`,
		[]cli.Example{
			{
				Description: "Drop all default-algorithm digests under a tree",
				Command:     "xattrsum reset -r /srv/archive",
			},
		},
		func(o *ops.Ops) ops.Func { return o.Reset },
	)
}

func hasHashCommand() *cli.Command {
	return modeCommand(
		"has-hash",
		"List files missing any of the requested digests",
		`Check attribute presence only, computing nothing. Each file missing
at least one requested algorithm is printed once and counted as a
mismatch, so the exit status reflects incomplete coverage.`,
		[]cli.Example{
			{
				Description: "Find files not yet hashed with blake3",
				Command:     "xattrsum has-hash -a blake3 -r /srv/archive",
			},
		},
		func(o *ops.Ops) ops.Func { return o.HasHash },
	)
}
