// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/xattrsum/xattrsum/lib/testutil"
)

func TestAttrName(t *testing.T) {
	if got, want := AttrName("sha512"), "user.hash.sha512"; got != want {
		t.Errorf("AttrName(sha512) = %q, want %q", got, want)
	}
}

func testFile(t *testing.T, directory string) string {
	t.Helper()
	path := filepath.Join(directory, "file")
	if err := os.WriteFile(path, []byte("contents"), 0o644); err != nil {
		t.Fatalf("creating test file: %v", err)
	}
	return path
}

func TestSetGetRoundTrip(t *testing.T) {
	path := testFile(t, testutil.XattrDir(t))
	digest := []byte{0x01, 0x02, 0x03, 0xff}

	if err := Set(path, "sha256", digest); err != nil {
		t.Fatalf("Set: %v", err)
	}
	stored, found, err := Get(path, "sha256")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("Get found nothing after Set")
	}
	if !bytes.Equal(stored, digest) {
		t.Errorf("Get = %x, want %x", stored, digest)
	}
}

func TestGetAbsent(t *testing.T) {
	path := testFile(t, testutil.XattrDir(t))

	stored, found, err := Get(path, "sha256")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Errorf("Get found %x on a fresh file", stored)
	}
}

func TestSlotsAreKeyedByAlgorithm(t *testing.T) {
	path := testFile(t, testutil.XattrDir(t))

	if err := Set(path, "sha256", []byte{0xaa}); err != nil {
		t.Fatalf("Set sha256: %v", err)
	}
	if err := Set(path, "blake3", []byte{0xbb}); err != nil {
		t.Fatalf("Set blake3: %v", err)
	}

	_, found, err := Get(path, "sha512")
	if err != nil {
		t.Fatalf("Get sha512: %v", err)
	}
	if found {
		t.Error("sha512 slot present; algorithm slots must not collide")
	}
	stored, _, err := Get(path, "blake3")
	if err != nil {
		t.Fatalf("Get blake3: %v", err)
	}
	if !bytes.Equal(stored, []byte{0xbb}) {
		t.Errorf("blake3 slot = %x, want bb", stored)
	}
}

func TestZeroLengthSlotCountsAsAbsent(t *testing.T) {
	path := testFile(t, testutil.XattrDir(t))

	// Write a zero-length attribute behind the adapter's back. No
	// digest has zero length, so the adapter must report absence.
	if err := unix.Setxattr(path, AttrName("sha256"), nil, 0); err != nil {
		t.Fatalf("setxattr: %v", err)
	}
	_, found, err := Get(path, "sha256")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("zero-length slot reported as present")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	path := testFile(t, testutil.XattrDir(t))

	if err := Set(path, "sha256", []byte{0x42}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := Remove(path, "sha256"); err != nil {
		t.Fatalf("first Remove: %v", err)
	}
	if err := Remove(path, "sha256"); err != nil {
		t.Fatalf("second Remove of absent slot: %v", err)
	}
	_, found, err := Get(path, "sha256")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("slot still present after Remove")
	}
}

func TestGetMissingFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent")

	_, _, err := Get(path, "sha256")
	if err == nil {
		t.Fatal("Get succeeded on a missing file")
	}
	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Errorf("Get error %v is not a FatalError", err)
	}
}
