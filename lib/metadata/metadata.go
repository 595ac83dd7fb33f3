// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Prefix is the reserved attribute namespace. Deriving the attribute
// name deterministically from the algorithm name means two algorithms
// never collide and re-running with the same algorithm always targets
// the same slot.
const Prefix = "user.hash."

// ErrPermission marks a recoverable per-file condition: the invoking
// user may read or write the file's contents but not this attribute.
// Callers surface it as a per-file error and continue with other files.
var ErrPermission = errors.New("permission denied")

// FatalError wraps an unexpected storage-layer failure. Anything the
// adapter cannot classify as absent or permission-denied indicates a
// condition under which continuing would risk silent corruption, so
// callers must terminate the run.
type FatalError struct {
	Op   string
	Path string
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// AttrName returns the attribute name for an algorithm's slot.
func AttrName(algorithm string) string {
	return Prefix + algorithm
}

// Get reads the stored digest for (path, algorithm). The second
// return is false when no slot exists; a zero-length attribute also
// counts as absent, since no digest has zero length. Permission
// failures return [ErrPermission]; any other failure is a
// [*FatalError], including the attribute changing size between the
// probe and the read.
func Get(path, algorithm string) ([]byte, bool, error) {
	name := AttrName(algorithm)

	size, err := unix.Getxattr(path, name, nil)
	if err != nil {
		if errors.Is(err, unix.ENODATA) {
			return nil, false, nil
		}
		if isPermission(err) {
			return nil, false, fmt.Errorf("reading %s on %s: %w", name, path, ErrPermission)
		}
		return nil, false, &FatalError{Op: "getxattr", Path: path, Err: err}
	}
	if size == 0 {
		return nil, false, nil
	}

	value := make([]byte, size)
	read, err := unix.Getxattr(path, name, value)
	if err != nil {
		// The slot can legitimately vanish between the two calls.
		if errors.Is(err, unix.ENODATA) {
			return nil, false, nil
		}
		return nil, false, &FatalError{Op: "getxattr", Path: path, Err: err}
	}
	if read != size {
		return nil, false, &FatalError{
			Op:   "getxattr",
			Path: path,
			Err:  fmt.Errorf("attribute size changed between queries (was %d, now %d)", size, read),
		}
	}
	return value[:read], true, nil
}

// Set stores a digest in the slot for (path, algorithm), creating or
// replacing it. Returns [ErrPermission] when the user lacks write
// access to the attribute, a [*FatalError] for anything else.
func Set(path, algorithm string, value []byte) error {
	name := AttrName(algorithm)
	err := unix.Setxattr(path, name, value, 0)
	if err == nil {
		return nil
	}
	if isPermission(err) {
		return fmt.Errorf("writing %s on %s: %w", name, path, ErrPermission)
	}
	return &FatalError{Op: "setxattr", Path: path, Err: err}
}

// Remove destroys the slot for (path, algorithm). Removal is
// idempotent: an already-absent slot is success. Returns
// [ErrPermission] when the user lacks write access, a [*FatalError]
// for anything else.
func Remove(path, algorithm string) error {
	name := AttrName(algorithm)
	err := unix.Removexattr(path, name)
	if err == nil || errors.Is(err, unix.ENODATA) {
		return nil
	}
	if isPermission(err) {
		return fmt.Errorf("removing %s on %s: %w", name, path, ErrPermission)
	}
	return &FatalError{Op: "removexattr", Path: path, Err: err}
}

func isPermission(err error) bool {
	return errors.Is(err, unix.EACCES) || errors.Is(err, unix.EPERM)
}
