// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package pathsource

import (
	"sync/atomic"
)

// Source yields candidate file paths to workers. Next blocks until a
// path is available and returns "" once the source is exhausted.
// Implementations are safe for concurrent use.
type Source interface {
	Next() string
}

// List serves a pre-existing ordered sequence of paths, typically
// command-line arguments. Claims go through a compare-and-swap loop
// over a shared cursor, so no two workers ever receive the same
// element and no element is skipped. There is no ordering guarantee
// among the claims of concurrent workers.
type List struct {
	paths  []string
	cursor atomic.Int64
}

// NewList wraps paths. The slice is not copied; callers must not
// mutate it after handing it over.
func NewList(paths []string) *List {
	return &List{paths: paths}
}

// Next claims the next unclaimed path, or returns "" when the list
// is exhausted.
func (l *List) Next() string {
	for {
		index := l.cursor.Load()
		if index >= int64(len(l.paths)) {
			return ""
		}
		if l.cursor.CompareAndSwap(index, index+1) {
			return l.paths[index]
		}
	}
}
