// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest resolves algorithm names to streaming hash
// accumulators and computes one digest per requested algorithm in a
// single sequential pass over file contents.
//
// The registry covers the SHA-2 family (stdlib crypto), SHA3-256 and
// BLAKE2b-256 (golang.org/x/crypto), and BLAKE3 (github.com/zeebo/blake3).
// An unknown algorithm name is a configuration mistake, never a
// per-file condition: callers must treat it as fatal.
package digest
