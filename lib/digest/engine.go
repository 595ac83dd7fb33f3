// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"fmt"
	"hash"
	"io"
	"os"
)

// copyBufferSize is the chunk size for streaming file contents
// through the accumulators. Large enough to keep syscall overhead
// negligible on multi-gigabyte files without materializing them.
const copyBufferSize = 4 << 20

// Sum computes one digest per requested algorithm from a single
// sequential pass over r. Duplicate names in algorithms are collapsed;
// the result map has one entry per distinct name. An unknown name
// fails before any byte is read.
//
// A zero-length source yields each algorithm's digest-of-empty-input.
func Sum(r io.Reader, algorithmNames []string) (map[string]Digest, error) {
	if len(algorithmNames) == 0 {
		return nil, fmt.Errorf("no digest algorithms requested")
	}

	accumulators := make(map[string]hash.Hash, len(algorithmNames))
	writers := make([]io.Writer, 0, len(algorithmNames))
	for _, name := range algorithmNames {
		if _, ok := accumulators[name]; ok {
			continue
		}
		accumulator, err := New(name)
		if err != nil {
			return nil, err
		}
		accumulators[name] = accumulator
		writers = append(writers, accumulator)
	}

	buffer := make([]byte, copyBufferSize)
	if _, err := io.CopyBuffer(io.MultiWriter(writers...), r, buffer); err != nil {
		return nil, fmt.Errorf("reading contents: %w", err)
	}

	digests := make(map[string]Digest, len(accumulators))
	for name, accumulator := range accumulators {
		digests[name] = accumulator.Sum(nil)
	}
	return digests, nil
}

// SumFile streams the file at path through [Sum]. The file is read
// exactly once regardless of how many algorithms are requested, and
// never retained in memory beyond the copy buffer.
func SumFile(path string, algorithmNames []string) (map[string]Digest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	digests, err := Sum(file, algorithmNames)
	if err != nil {
		return nil, fmt.Errorf("hashing %s: %w", path, err)
	}
	return digests, nil
}
