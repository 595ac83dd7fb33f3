// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

// Package pathsource produces the stream of file paths that workers
// claim and process. Two variants exist behind the [Source]
// interface: a fixed in-memory list claimed lock-free via an atomic
// cursor, and a streaming walker that discovers regular files from a
// background directory traversal while workers consume concurrently.
//
// Next returning the empty string is the single, unambiguous
// end-of-input signal; no valid path is ever empty. Both variants are
// safe for arbitrarily many concurrent consumers, and every path is
// delivered to exactly one of them.
package pathsource
