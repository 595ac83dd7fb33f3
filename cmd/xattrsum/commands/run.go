// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/xattrsum/xattrsum/cmd/xattrsum/cli"
	"github.com/xattrsum/xattrsum/lib/config"
	"github.com/xattrsum/xattrsum/lib/digest"
	"github.com/xattrsum/xattrsum/lib/ops"
	"github.com/xattrsum/xattrsum/lib/pathsource"
	"github.com/xattrsum/xattrsum/lib/runner"
)

// runParams are the flags shared by every operating mode.
type runParams struct {
	algorithms []string
	jobs       int
	allCores   bool
	recursive  bool
	allErrors  bool
	verbose    bool
	configPath string
}

func (p *runParams) addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringSliceVarP(&p.algorithms, "algorithm", "a", nil,
		"digest algorithm, repeatable (default from config, else sha256,blake3)")
	flagSet.IntVarP(&p.jobs, "jobs", "j", 0,
		"number of worker threads (0 = one per CPU core)")
	flagSet.BoolVarP(&p.allCores, "all-cores", "T", false,
		"use one worker per CPU core (the default)")
	flagSet.BoolVarP(&p.recursive, "recursive", "r", false,
		"treat arguments as directories and process every regular file under them")
	flagSet.BoolVarP(&p.allErrors, "all-errors", "e", false,
		"exit non-zero on any per-file error, not just digest mismatches")
	flagSet.BoolVarP(&p.verbose, "verbose", "v", false,
		"enable debug logging")
	flagSet.StringVar(&p.configPath, "config", "",
		"config file path (default: $"+config.EnvVar+")")
}

// execute wires the shared machinery for one mode: config
// resolution, source construction, worker pool, and exit-code
// mapping. pick selects the mode's operation from the Ops value.
func (p *runParams) execute(args []string, pick func(*ops.Ops) ops.Func) error {
	cfg := config.Default()
	configPath := p.configPath
	if configPath == "" {
		configPath = os.Getenv(config.EnvVar)
	}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	algorithms := p.algorithms
	if len(algorithms) == 0 {
		algorithms = cfg.Algorithms
	}
	for _, name := range algorithms {
		if !digest.Known(name) {
			return fmt.Errorf("unknown digest algorithm %q (known: %v)", name, digest.Names())
		}
	}

	jobs := p.jobs
	if jobs == 0 {
		jobs = cfg.Jobs
	}
	if jobs == 0 || p.allCores {
		jobs = runtime.NumCPU()
	}
	if jobs < 1 {
		return fmt.Errorf("jobs is %d, must be positive", jobs)
	}

	level := slog.LevelInfo
	if p.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	sink := ops.NewSink(os.Stdout, os.Stderr)
	operations := &ops.Ops{Sink: sink, Log: logger}

	// Fatal conditions end the process immediately, without draining
	// the other workers. The diagnostic goes through the sink so it
	// cannot interleave with result lines.
	onFatal := func(err error) {
		sink.Errf("fatal: %v", err)
		os.Exit(2)
	}

	var source pathsource.Source
	if p.recursive {
		roots := args
		if len(roots) == 0 {
			roots = []string{"."}
		}
		walker, err := pathsource.NewWalker(roots, onFatal)
		if err != nil {
			// Root validation failed: the whole operation fails
			// before any worker is dispatched.
			return err
		}
		source = walker
	} else {
		source = pathsource.NewList(args)
	}

	pool := &runner.Runner{Workers: jobs, OnFatal: onFatal}
	logger.Debug("starting run",
		"workers", jobs, "algorithms", algorithms, "recursive", p.recursive)
	aggregate := pool.Run(source, pick(operations), algorithms)

	if code := aggregate.ExitCode(p.allErrors || cfg.AllErrors); code != 0 {
		return &cli.ExitError{Code: code}
	}
	return nil
}
