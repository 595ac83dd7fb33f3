// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

// Package runner distributes paths from a source across a pool of
// workers and folds their per-file outcomes into one aggregate
// status for the run.
package runner

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/xattrsum/xattrsum/lib/ops"
	"github.com/xattrsum/xattrsum/lib/pathsource"
)

// Runner executes one operation over every path a source yields.
type Runner struct {
	// Workers is the total worker count, including the calling
	// goroutine. Must be positive; the CLI validates this before
	// constructing a Runner, so a non-positive value is a
	// programming error.
	Workers int

	// OnFatal is invoked when an operation returns an error. Fatal
	// conditions end the whole run: the default handler prints a
	// diagnostic naming the failing operation and exits the process.
	// Tests inject a recorder instead; a returning OnFatal stops
	// only the worker that hit the error.
	OnFatal func(error)
}

// Run claims paths from source until exhaustion, applying operation
// to each and OR-ing the returned status bits into the aggregate.
// Workers-1 goroutines are spawned; the calling goroutine is the
// final worker. All spawned workers are joined before the aggregate
// is returned. Paths are claimed exactly once each, in no particular
// order across workers.
func (r *Runner) Run(source pathsource.Source, operation ops.Func, algorithms []string) ops.Status {
	if r.Workers < 1 {
		panic(fmt.Sprintf("runner: worker count %d, must be positive", r.Workers))
	}

	var aggregate atomic.Uint32
	work := func() {
		for {
			path := source.Next()
			if path == "" {
				return
			}
			status, err := operation(path, algorithms)
			aggregate.Or(uint32(status))
			if err != nil {
				r.fatal(err)
				return
			}
		}
	}

	var wg sync.WaitGroup
	for range r.Workers - 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work()
		}()
	}
	work()
	wg.Wait()

	return ops.Status(aggregate.Load())
}

func (r *Runner) fatal(err error) {
	if r.OnFatal != nil {
		r.OnFatal(err)
		return
	}
	fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
	os.Exit(2)
}
