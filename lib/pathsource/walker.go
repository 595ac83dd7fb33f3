// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package pathsource

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// walkerBuffer bounds the channel between the traversal goroutine
// and the consuming workers, so discovery can run ahead of hashing
// without holding an unbounded path list in memory.
const walkerBuffer = 256

// Walker streams regular-file paths discovered by a physical
// (non-symlink-following) depth-first walk of a set of root
// directories. The traversal runs in a background goroutine; Next
// blocks until the next discovered path and returns "" once the walk
// has completed and all pending paths are consumed.
type Walker struct {
	paths   chan string
	onFatal func(error)
}

// NewWalker validates that every root is a directory and starts the
// traversal. Validation failure means no worker should be dispatched
// at all: the returned error covers the whole operation, before any
// partial work happens.
//
// onFatal is invoked for traversal errors encountered after the walk
// has started (unreadable directory, vanished subtree). It must not
// return if the process should stop; a returning onFatal (tests)
// aborts the walk and closes the stream.
func NewWalker(roots []string, onFatal func(error)) (*Walker, error) {
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", root)
		}
	}

	w := &Walker{
		paths:   make(chan string, walkerBuffer),
		onFatal: onFatal,
	}
	go w.walk(roots)
	return w, nil
}

// Next returns the next discovered regular-file path, or "" when the
// producer has closed the stream. Receiving from the closed channel
// yields the zero value, which is exactly the exhaustion sentinel.
func (w *Walker) Next() string {
	return <-w.paths
}

func (w *Walker) walk(roots []string) {
	defer close(w.paths)
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("walking %s: %w", path, err)
			}
			// entry.Type() is the lstat file mode: symlinks to
			// regular files are not regular and are skipped, which
			// keeps the traversal physical.
			if !entry.Type().IsRegular() {
				return nil
			}
			w.paths <- path
			return nil
		})
		if err != nil {
			w.onFatal(err)
			return
		}
	}
}
