// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package ops

import (
	"fmt"
	"io"
	"sync"
)

// Sink serializes output lines from concurrent workers. One Sink is
// shared by every worker of a run, passed explicitly rather than
// hidden in a global, so concatenated output from concurrent workers
// is never interleaved within one line.
type Sink struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

// NewSink returns a Sink writing result lines to out and error/skip
// lines to errOut.
func NewSink(out, errOut io.Writer) *Sink {
	return &Sink{out: out, err: errOut}
}

// Outf writes one result line, atomically, to the output stream.
// A trailing newline is appended.
func (s *Sink) Outf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format+"\n", args...)
}

// Errf writes one diagnostic line, atomically, to the error stream.
// A trailing newline is appended.
func (s *Sink) Errf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.err, format+"\n", args...)
}
