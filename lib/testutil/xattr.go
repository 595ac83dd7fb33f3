// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

// XattrDir creates a temporary directory and verifies that its
// filesystem supports user extended attributes, skipping the test
// otherwise. tmpfs without user_xattr and some CI overlay filesystems
// reject the user namespace with ENOTSUP; tests that exercise real
// attribute storage cannot run there.
func XattrDir(t *testing.T) string {
	t.Helper()

	directory := t.TempDir()
	probe := filepath.Join(directory, "xattr-probe")
	if err := os.WriteFile(probe, []byte("probe"), 0o644); err != nil {
		t.Fatalf("creating xattr probe file: %v", err)
	}
	err := unix.Setxattr(probe, "user.hash.probe", []byte{1}, 0)
	if errors.Is(err, unix.ENOTSUP) {
		t.Skipf("filesystem at %s does not support user xattrs", directory)
	}
	if err != nil {
		t.Fatalf("probing xattr support: %v", err)
	}
	if err := os.Remove(probe); err != nil {
		t.Fatalf("removing xattr probe file: %v", err)
	}
	return directory
}
