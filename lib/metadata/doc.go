// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

// Package metadata persists digests as extended attributes attached
// directly to files, so a recorded digest travels with its file across
// renames and copies within the same filesystem.
//
// Each (file, algorithm) pair maps to one attribute in the reserved
// user.hash. namespace; the value is the raw digest bytes, never
// hex-encoded. Results are tri-state: present, absent, or permission
// denied. Permission failures are expected in batch operation over
// files the invoking user does not own and are reported with
// [ErrPermission]; any other syscall failure is wrapped in a
// [FatalError], which callers must treat as run-ending.
package metadata
