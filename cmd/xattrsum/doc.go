// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

// Xattrsum stores, verifies, prints, and clears cryptographic file
// digests kept in each file's extended attributes, distributing the
// work across a pool of worker threads.
//
// Exit codes:
//
//	0  every file processed cleanly
//	1  at least one digest mismatch
//	2  per-file errors (with --all-errors), usage errors, and fatal
//	   conditions; 3 when mismatches and errors are both reported
package main
